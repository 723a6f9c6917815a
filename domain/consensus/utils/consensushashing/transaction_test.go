package consensushashing

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensusserialization"
)

func TestTransactionID(t *testing.T) {
	tx := &externalapi.DomainTransaction{
		Version: 1,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: 2},
			SignatureScript:  []byte{1, 2},
			Sequence:         7,
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:           1564,
			ScriptPublicKey: []byte{1, 2, 3, 4, 5},
			Attachment:      attachment.New(nil),
		}},
	}

	serialized, err := consensusserialization.TransactionToBytes(tx)
	if err != nil {
		t.Fatalf("TransactionToBytes: %s", err)
	}
	id := TransactionID(tx)
	if id != chainhash.DoubleHashH(serialized) {
		t.Fatalf("TransactionID: got %s, want %s", id, chainhash.DoubleHashH(serialized))
	}

	tx.Outputs[0].Attachment = attachment.New(&attachment.Message{Content: "memo"})
	if TransactionID(tx) == id {
		t.Fatalf("TransactionID: the attachment does not change the id")
	}
}
