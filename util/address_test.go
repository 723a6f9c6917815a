package util

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/mvsnet/mvsd/domain/dagconfig"
	"github.com/pkg/errors"
)

var testHash160 = []byte{
	0xad, 0x06, 0xdd, 0x6d, 0xde, 0xe5, 0x5c, 0xbc, 0xa9, 0xa9,
	0xe3, 0x71, 0x3b, 0xd7, 0x58, 0x75, 0x09, 0xa3, 0x05, 0x64,
}

func TestDecodePubKeyHashAddress(t *testing.T) {
	params := &dagconfig.MainnetParams
	encoded := base58.CheckEncode(testHash160, params.PubKeyHashAddrID)

	addr, err := DecodePubKeyHashAddress(encoded, params)
	if err != nil {
		t.Fatalf("DecodePubKeyHashAddress: %s", err)
	}
	if !bytes.Equal(addr.ScriptAddress(), testHash160) {
		t.Errorf("DecodePubKeyHashAddress: wrong hash %x", addr.ScriptAddress())
	}
	if addr.EncodeAddress() != encoded {
		t.Errorf("EncodeAddress: got %s, want %s", addr.EncodeAddress(), encoded)
	}

	_, err = DecodeScriptHashAddress(encoded, params)
	if !errors.Is(err, ErrUnknownAddressType) {
		t.Errorf("DecodeScriptHashAddress: expected ErrUnknownAddressType, got %v", err)
	}
}

func TestDecodeScriptHashAddress(t *testing.T) {
	params := dagconfig.MainnetParams.WithScriptHashAddrID(0x99)
	encoded := base58.CheckEncode(testHash160, 0x99)

	addr, err := DecodeScriptHashAddress(encoded, params)
	if err != nil {
		t.Fatalf("DecodeScriptHashAddress: %s", err)
	}
	if _, ok := interface{}(addr).(btcutil.Address); !ok {
		t.Fatalf("DecodeScriptHashAddress: result is not a btcutil.Address")
	}
	if !bytes.Equal(addr.ScriptAddress(), testHash160) {
		t.Errorf("DecodeScriptHashAddress: wrong hash %x", addr.ScriptAddress())
	}

	_, err = DecodeScriptHashAddress(encoded, &dagconfig.MainnetParams)
	if !errors.Is(err, ErrUnknownAddressType) {
		t.Errorf("DecodeScriptHashAddress with default version: expected ErrUnknownAddressType, got %v", err)
	}
}

func TestDecodeAddressErrors(t *testing.T) {
	params := &dagconfig.MainnetParams
	encoded := base58.CheckEncode(testHash160, params.PubKeyHashAddrID)
	corrupted := encoded[:len(encoded)-1] + "1"
	if corrupted == encoded {
		corrupted = encoded[:len(encoded)-1] + "2"
	}

	tests := []struct {
		name    string
		address string
	}{
		{"bad checksum", corrupted},
		{"not base58", "0OIl"},
		{"empty", ""},
		{"short payload", base58.CheckEncode(testHash160[:19], params.PubKeyHashAddrID)},
	}
	for _, test := range tests {
		_, err := DecodePubKeyHashAddress(test.address, params)
		if err == nil {
			t.Errorf("%s: DecodePubKeyHashAddress unexpectedly succeeded", test.name)
		}
	}
}
