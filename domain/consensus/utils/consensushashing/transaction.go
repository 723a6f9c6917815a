package consensushashing

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensusserialization"
	"github.com/pkg/errors"
)

// TransactionID returns the double sha256 of the serialized transaction.
// Attachments are part of the serialization and therefore of the id.
func TransactionID(tx *externalapi.DomainTransaction) chainhash.Hash {
	writer := sha256.New()
	err := consensusserialization.SerializeTransaction(writer, tx)
	if err != nil {
		// Writing to a hash never fails, so the only error path is a
		// script or payload above the element size limits.
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	return chainhash.HashH(writer.Sum(nil))
}
