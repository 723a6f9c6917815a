package constants

import "math"

const (
	// TransactionVersion is the default version of transactions built by
	// this node.
	TransactionVersion = 1

	// MinTransactionVersion is the lowest transaction version accepted.
	MinTransactionVersion = 1

	// SatoshiPerETP is the number of satoshi in one ETP.
	SatoshiPerETP = 100_000_000

	// MaxSatoshi is the maximum transaction amount allowed in satoshi.
	MaxSatoshi = 100_000_000 * SatoshiPerETP

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be. An input with this sequence is final
	// and disables the transaction lock time.
	MaxTxInSequenceNum uint32 = math.MaxUint32

	// AttachmentVersion is the current version of output attachments.
	AttachmentVersion = 1

	// SecondsPerDay is used to convert deposit periods into block counts.
	SecondsPerDay = 24 * 60 * 60

	// DefaultDepositPeriod is the deposit period, in days, used when none
	// is specified.
	DefaultDepositPeriod = 7

	// DefaultScriptHashVersion is the default version byte of
	// pay-to-script-hash addresses.
	DefaultScriptHashVersion = 5
)

// DepositPeriods are the only deposit periods, in days, that can be
// locked.
var DepositPeriods = [...]uint32{7, 30, 90, 182, 365}
