package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mvsnet/mvsd/domain/dagconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the test network"`
	Devnet             bool   `long:"devnet" description:"Use the development test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides network params (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideParamsConfig struct {
	TargetTimePerBlockInMilliSeconds *int64  `json:"targetTimePerBlockInMilliSeconds"`
	PubKeyHashAddrID                 *byte   `json:"pubKeyHashAddrId"`
	ScriptHashAddrID                 *byte   `json:"scriptHashAddrId"`
	StealthAddrID                    *byte   `json:"stealthAddrId"`
	TransactionVersion               *uint32 `json:"transactionVersion"`
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	params := dagconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		params = dagconfig.TestnetParams
	}
	if networkFlags.Devnet {
		numNets++
		params = dagconfig.DevnetParams
	}
	if numNets > 1 {
		err := errors.New("Multiple networks parameters (testnet, devnet) cannot be used " +
			"together. Please choose only one network")
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	// The package level params are copied so that overrides stay local.
	networkFlags.ActiveNetParams = &params
	return networkFlags.overrideParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("override-params-file is allowed only when using devnet")
	}

	overrideParamsFile, err := os.Open(networkFlags.OverrideParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideParamsFile.Close()

	decoder := json.NewDecoder(overrideParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "could not parse %s", networkFlags.OverrideParamsFile)
	}

	if config.TargetTimePerBlockInMilliSeconds != nil {
		if *config.TargetTimePerBlockInMilliSeconds < 1000 {
			return errors.Errorf("targetTimePerBlockInMilliSeconds must be at least 1000, got %d",
				*config.TargetTimePerBlockInMilliSeconds)
		}
		networkFlags.ActiveNetParams.TargetTimePerBlock = time.Duration(*config.TargetTimePerBlockInMilliSeconds) *
			time.Millisecond
	}

	if config.PubKeyHashAddrID != nil {
		networkFlags.ActiveNetParams.PubKeyHashAddrID = *config.PubKeyHashAddrID
	}

	if config.ScriptHashAddrID != nil {
		networkFlags.ActiveNetParams.ScriptHashAddrID = *config.ScriptHashAddrID
	}

	if config.StealthAddrID != nil {
		networkFlags.ActiveNetParams.StealthAddrID = *config.StealthAddrID
	}

	if config.TransactionVersion != nil {
		networkFlags.ActiveNetParams.TransactionVersion = *config.TransactionVersion
	}

	return nil
}
