package txbuilder

import (
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/dagconfig"
)

// InputSpec references the previous output spent by a transaction input.
// A nil Sequence means the input is final.
type InputSpec struct {
	Outpoint externalapi.DomainOutpoint
	Sequence *uint32
}

// OutputSpec describes a transaction output by its target: a
// pay-to-pubkey-hash address, a pay-to-script-hash address, a hex encoded
// script or a stealth address. Seed is only used by stealth targets.
type OutputSpec struct {
	Target     string
	Amount     uint64
	Seed       []byte
	Attachment *attachment.Attachment
}

// DepositOutputSpec is an output whose funds are locked for PeriodDays.
type DepositOutputSpec struct {
	OutputSpec
	PeriodDays uint32
}

// Request is everything needed to build one unsigned transaction. A request
// is consumed by a single Build call.
type Request struct {
	Version  uint32
	LockTime uint32

	// ScriptVersion is the version byte of pay-to-script-hash targets.
	ScriptVersion byte

	Inputs  []*InputSpec
	Outputs []*OutputSpec
	Deposit *DepositOutputSpec
}

// NewRequest returns an empty request using the default transaction version
// and script version of params.
func NewRequest(params *dagconfig.Params) *Request {
	return &Request{
		Version:       params.TransactionVersion,
		ScriptVersion: params.ScriptHashAddrID,
	}
}
