package dagconfig

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/mvsnet/mvsd/domain/consensus/utils/constants"
)

// Params defines a network by its parameters. These parameters are used to
// differentiate addresses intended for one network from those intended for
// another, and to convert time spans into block counts.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PubKeyHashAddrID is the version byte of pay-to-pubkey-hash addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the version byte of pay-to-script-hash addresses.
	ScriptHashAddrID byte

	// StealthAddrID is the version byte of stealth addresses.
	StealthAddrID byte

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// TransactionVersion is the version given to built transactions when
	// none is requested.
	TransactionVersion uint32
}

// ChainParams returns the address related subset of p as btcd chain
// parameters, so that btcutil addresses encode with this network's version
// bytes.
func (p *Params) ChainParams() *chaincfg.Params {
	return &chaincfg.Params{
		Name:             p.Name,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
	}
}

// WithScriptHashAddrID returns a copy of p using scriptHashAddrID as the
// pay-to-script-hash version byte.
func (p *Params) WithScriptHashAddrID(scriptHashAddrID byte) *Params {
	copied := *p
	copied.ScriptHashAddrID = scriptHashAddrID
	return &copied
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:               "mainnet",
	PubKeyHashAddrID:   0x32,
	ScriptHashAddrID:   constants.DefaultScriptHashVersion,
	StealthAddrID:      0x2a,
	TargetTimePerBlock: 24 * time.Second,
	TransactionVersion: constants.TransactionVersion,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:               "testnet",
	PubKeyHashAddrID:   0x7f,
	ScriptHashAddrID:   0xc4,
	StealthAddrID:      0x2b,
	TargetTimePerBlock: 24 * time.Second,
	TransactionVersion: constants.TransactionVersion,
}

// DevnetParams defines the network parameters for the development network.
// Its parameters may be overridden from a file.
var DevnetParams = Params{
	Name:               "devnet",
	PubKeyHashAddrID:   0x6f,
	ScriptHashAddrID:   0xc4,
	StealthAddrID:      0x2b,
	TargetTimePerBlock: 10 * time.Minute,
	TransactionVersion: constants.TransactionVersion,
}
