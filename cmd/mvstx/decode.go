package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensushashing"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensusserialization"
	"github.com/mvsnet/mvsd/domain/consensus/utils/txscript"
	"github.com/pkg/errors"
)

func decode(conf *decodeConfig) error {
	serialized, err := hex.DecodeString(strings.TrimSpace(conf.Transaction))
	if err != nil {
		return errors.Wrap(err, "the transaction is not hex encoded")
	}
	tx, err := consensusserialization.TransactionFromBytes(serialized)
	if err != nil {
		return err
	}
	printTransaction(os.Stdout, tx)
	return nil
}

func printTransaction(w io.Writer, tx *externalapi.DomainTransaction) {
	fmt.Fprintf(w, "id: %s\n", consensushashing.TransactionID(tx))
	fmt.Fprintf(w, "version: %d\n", tx.Version)
	fmt.Fprintf(w, "lock time: %d\n", tx.LockTime)
	for i, input := range tx.Inputs {
		fmt.Fprintf(w, "input %d: %s sequence %d\n", i, input.PreviousOutpoint, input.Sequence)
		if len(input.SignatureScript) > 0 {
			fmt.Fprintf(w, "    script: %s\n", txscript.Disassemble(input.SignatureScript))
		}
	}
	for i, output := range tx.Outputs {
		fmt.Fprintf(w, "output %d: value %d\n", i, output.Value)
		fmt.Fprintf(w, "    script: %s [%s]\n", txscript.Disassemble(output.ScriptPublicKey),
			txscript.ScriptClass(output.ScriptPublicKey))
		if height, ok := txscript.LockHeight(output.ScriptPublicKey); ok {
			fmt.Fprintf(w, "    locked until height: %d\n", height)
		}
		if output.Attachment != nil && output.Attachment.Payload != nil {
			fmt.Fprintf(w, "    attachment: %s\n", describeAttachment(output.Attachment))
		}
	}
}

func describeAttachment(a *attachment.Attachment) string {
	if stringer, ok := a.Payload.(fmt.Stringer); ok {
		return fmt.Sprintf("%s v%d %s", a.Type(), a.Version, stringer)
	}
	return fmt.Sprintf("%s v%d %+v", a.Type(), a.Version, a.Payload)
}
