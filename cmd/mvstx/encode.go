package main

import (
	"encoding/hex"
	"fmt"

	"github.com/mvsnet/mvsd/domain/chainstate"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensusserialization"
	"github.com/mvsnet/mvsd/domain/txbuilder"
)

func encode(conf *encodeConfig) error {
	request, err := newEncodeRequest(conf)
	if err != nil {
		return err
	}

	var snapshot chainstate.Snapshot
	if request.Deposit != nil {
		snapshot, err = chainSnapshot(conf)
		if err != nil {
			return err
		}
	}

	tx, err := txbuilder.New(conf.NetParams()).Build(request, snapshot)
	if err != nil {
		return err
	}
	serialized, err := consensusserialization.TransactionToBytes(tx)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(serialized))
	return nil
}

// newEncodeRequest turns the encode flags into a build request. Flags that
// are not given fall back to the active network's parameters.
func newEncodeRequest(conf *encodeConfig) (*txbuilder.Request, error) {
	request := txbuilder.NewRequest(conf.NetParams())
	if conf.ScriptVersion != nil {
		request.ScriptVersion = *conf.ScriptVersion
	}
	if conf.Version != nil {
		request.Version = *conf.Version
	}
	request.LockTime = conf.LockTime

	for _, input := range conf.Inputs {
		spec, err := txbuilder.ParseInputSpec(input)
		if err != nil {
			return nil, err
		}
		request.Inputs = append(request.Inputs, spec)
	}
	for _, output := range conf.Outputs {
		spec, err := txbuilder.ParseOutputSpec(output)
		if err != nil {
			return nil, err
		}
		request.Outputs = append(request.Outputs, spec)
	}

	err := attachPayloads(request.Outputs, conf.Transfers, conf.Messages)
	if err != nil {
		return nil, err
	}

	if conf.Deposit != "" {
		request.Deposit, err = txbuilder.ParseDepositSpec(conf.Deposit, conf.Period)
		if err != nil {
			return nil, err
		}
	}
	return request, nil
}

// chainSnapshot takes the chain snapshot from --height when given, and from
// the chain state database otherwise.
func chainSnapshot(conf *encodeConfig) (chainstate.Snapshot, error) {
	blockInterval := conf.NetParams().TargetTimePerBlock
	if conf.Height != nil {
		return chainstate.StaticProvider{Height: *conf.Height, BlockInterval: blockInterval}.Snapshot()
	}

	store, err := chainstate.Open(chainStateDir(conf.DataDir, &conf.NetworkFlags), blockInterval)
	if err != nil {
		return chainstate.Snapshot{}, err
	}
	defer store.Close()

	snapshot, err := store.Snapshot()
	if err != nil {
		return chainstate.Snapshot{}, err
	}
	log.Debugf("Using chain height %d from the chain state database", snapshot.Height)
	return snapshot, nil
}
