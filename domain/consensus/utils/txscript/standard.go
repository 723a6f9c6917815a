// Package txscript builds the output script templates used by transaction
// assembly. It is a thin layer over btcd's script engine that adds the
// ledger specific templates.
package txscript

import (
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"
)

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr btcutil.Address) ([]byte, error) {
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not build a script paying to %s", addr)
	}
	return script, nil
}

// PayToPubKeyHashScript creates a pay-to-pubkey-hash script paying to the
// hash of the compressed form of key.
func PayToPubKeyHashScript(key *btcec.PublicKey, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(key.SerializeCompressed()), params)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return PayToAddrScript(addr)
}

// NullDataScript creates a provably prunable script carrying data.
func NullDataScript(data []byte) ([]byte, error) {
	script, err := txscript.NullDataScript(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return script, nil
}

// PayToLockHeightScript prefixes payScript with an absolute block height lock:
//
//	<lockHeight> OP_CHECKLOCKTIMEVERIFY OP_DROP <payScript>
//
// The output can not be spent by a transaction whose lock time is below
// lockHeight.
func PayToLockHeightScript(lockHeight uint64, payScript []byte) ([]byte, error) {
	if lockHeight > math.MaxUint32 {
		return nil, errors.Errorf("lock height %d can not be expressed as a transaction lock time", lockHeight)
	}
	if len(payScript) == 0 {
		return nil, errors.New("empty payment script")
	}
	script, err := txscript.NewScriptBuilder().
		AddInt64(int64(lockHeight)).
		AddOp(txscript.OP_CHECKLOCKTIMEVERIFY).
		AddOp(txscript.OP_DROP).
		AddOps(payScript).
		Script()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return script, nil
}

// LockHeight returns the height encoded by a script built with
// PayToLockHeightScript, and false for any other script.
func LockHeight(script []byte) (uint64, bool) {
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	if !tokenizer.Next() {
		return 0, false
	}
	height, ok := scriptNum(tokenizer.Opcode(), tokenizer.Data())
	if !ok {
		return 0, false
	}
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_CHECKLOCKTIMEVERIFY {
		return 0, false
	}
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_DROP {
		return 0, false
	}
	return height, tokenizer.Err() == nil
}

// Disassemble returns the human readable form of script. Unparseable scripts
// are disassembled up to the point of failure.
func Disassemble(script []byte) string {
	disassembled, err := txscript.DisasmString(script)
	if err != nil {
		return disassembled + " [error]"
	}
	return disassembled
}

// ScriptClass returns the name of the standard template script matches, e.g.
// "pubkeyhash" or "nulldata".
func ScriptClass(script []byte) string {
	if _, ok := LockHeight(script); ok {
		return "lockheight"
	}
	return txscript.GetScriptClass(script).String()
}

// scriptNum decodes a minimally encoded non-negative number push.
func scriptNum(opcode byte, data []byte) (uint64, bool) {
	switch {
	case opcode == txscript.OP_0:
		return 0, true
	case opcode >= txscript.OP_1 && opcode <= txscript.OP_16:
		return uint64(opcode-txscript.OP_1) + 1, true
	case opcode >= txscript.OP_DATA_1 && opcode <= txscript.OP_DATA_5:
	default:
		return 0, false
	}
	if data[len(data)-1]&0x80 != 0 {
		return 0, false
	}
	var value uint64
	for i, b := range data {
		value |= uint64(b) << (8 * uint(i))
	}
	return value, true
}
