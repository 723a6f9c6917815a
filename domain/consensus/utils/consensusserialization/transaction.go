package consensusserialization

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

const (
	// minTxInPayload is the smallest possible serialized input: a 32 byte
	// transaction id, a 4 byte index, a 1 byte empty script length and a
	// 4 byte sequence.
	minTxInPayload = chainhash.HashSize + 4 + 1 + 4

	// minTxOutPayload is the smallest possible serialized output: an 8 byte
	// value, a 1 byte empty script length and an 8 byte attachment envelope.
	minTxOutPayload = 8 + 1 + 8

	maxTxInPerMessage  = wire.MaxMessagePayload / minTxInPayload
	maxTxOutPerMessage = wire.MaxMessagePayload / minTxOutPayload
)

// SerializeTransaction writes tx to w:
// version | varint n, inputs | varint n, outputs | lock time.
func SerializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := serialization.WriteElement(w, tx.Version)
	if err != nil {
		return err
	}

	err = wire.WriteVarInt(w, wire.ProtocolVersion, uint64(len(tx.Inputs)))
	if err != nil {
		return errors.WithStack(err)
	}
	for _, input := range tx.Inputs {
		err = serialization.WriteElements(w, &input.PreviousOutpoint.TransactionID,
			input.PreviousOutpoint.Index, input.SignatureScript, input.Sequence)
		if err != nil {
			return err
		}
	}

	err = wire.WriteVarInt(w, wire.ProtocolVersion, uint64(len(tx.Outputs)))
	if err != nil {
		return errors.WithStack(err)
	}
	for _, output := range tx.Outputs {
		err = serialization.WriteElements(w, output.Value, output.ScriptPublicKey)
		if err != nil {
			return err
		}
		err = outputAttachment(output).Serialize(w)
		if err != nil {
			return err
		}
	}

	return serialization.WriteElement(w, tx.LockTime)
}

// TransactionToBytes returns the serialized form of tx.
func TransactionToBytes(tx *externalapi.DomainTransaction) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, TransactionSerializeSize(tx)))
	err := SerializeTransaction(buf, tx)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TransactionSerializeSize returns the number of bytes SerializeTransaction
// writes for tx.
func TransactionSerializeSize(tx *externalapi.DomainTransaction) int {
	size := 4 + wire.VarIntSerializeSize(uint64(len(tx.Inputs))) +
		wire.VarIntSerializeSize(uint64(len(tx.Outputs))) + 4
	for _, input := range tx.Inputs {
		size += chainhash.HashSize + 4 + serialization.VarBytesSerializeSize(input.SignatureScript) + 4
	}
	for _, output := range tx.Outputs {
		size += 8 + serialization.VarBytesSerializeSize(output.ScriptPublicKey) +
			outputAttachment(output).SerializeSize()
	}
	return size
}

// DeserializeTransaction reads a transaction from r. Nothing is returned
// unless the whole transaction decodes.
func DeserializeTransaction(r io.Reader) (*externalapi.DomainTransaction, error) {
	tx := &externalapi.DomainTransaction{}
	err := serialization.ReadElement(r, &tx.Version)
	if err != nil {
		return nil, ruleerrors.NewErrMalformedTransaction(err)
	}

	inputCount, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		return nil, ruleerrors.NewErrMalformedTransaction(err)
	}
	if inputCount > maxTxInPerMessage {
		return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction,
			"too many inputs to fit into max message size [count %d, max %d]", inputCount, maxTxInPerMessage)
	}
	tx.Inputs = make([]*externalapi.DomainTransactionInput, 0, inputCount)
	for i := uint64(0); i < inputCount; i++ {
		input := &externalapi.DomainTransactionInput{}
		err = serialization.ReadElements(r, &input.PreviousOutpoint.TransactionID,
			&input.PreviousOutpoint.Index, &input.SignatureScript, &input.Sequence)
		if err != nil {
			return nil, ruleerrors.NewErrMalformedTransaction(err)
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	outputCount, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		return nil, ruleerrors.NewErrMalformedTransaction(err)
	}
	if outputCount > maxTxOutPerMessage {
		return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction,
			"too many outputs to fit into max message size [count %d, max %d]", outputCount, maxTxOutPerMessage)
	}
	tx.Outputs = make([]*externalapi.DomainTransactionOutput, 0, outputCount)
	for i := uint64(0); i < outputCount; i++ {
		output := &externalapi.DomainTransactionOutput{}
		err = serialization.ReadElements(r, &output.Value, &output.ScriptPublicKey)
		if err != nil {
			return nil, ruleerrors.NewErrMalformedTransaction(err)
		}
		output.Attachment, err = attachment.Deserialize(r)
		if err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, output)
	}

	err = serialization.ReadElement(r, &tx.LockTime)
	if err != nil {
		return nil, ruleerrors.NewErrMalformedTransaction(err)
	}

	return tx, nil
}

// TransactionFromBytes decodes a transaction that must span all of data.
func TransactionFromBytes(data []byte) (*externalapi.DomainTransaction, error) {
	r := bytes.NewReader(data)
	tx, err := DeserializeTransaction(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction,
			"%d trailing bytes after transaction", r.Len())
	}
	return tx, nil
}

func outputAttachment(output *externalapi.DomainTransactionOutput) *attachment.Attachment {
	if output.Attachment == nil {
		return attachment.New(nil)
	}
	return output.Attachment
}
