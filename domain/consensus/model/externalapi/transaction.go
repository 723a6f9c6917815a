package externalapi

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
)

// DomainTransaction represents an unsigned or signed transaction
type DomainTransaction struct {
	Version  uint32
	Inputs   []*DomainTransactionInput
	Outputs  []*DomainTransactionOutput
	LockTime uint32
}

// DomainTransactionInput represents a transaction input
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  []byte
	Sequence         uint32
}

// DomainOutpoint represents a transaction outpoint
type DomainOutpoint struct {
	TransactionID chainhash.Hash
	Index         uint32
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", op.TransactionID, op.Index)
}

// DomainTransactionOutput represents a transaction output. Outputs without
// typed metadata carry an attachment of type none; a nil Attachment is
// serialized the same way.
type DomainTransactionOutput struct {
	Value           uint64
	ScriptPublicKey []byte
	Attachment      *attachment.Attachment
}
