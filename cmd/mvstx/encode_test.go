package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/attachment"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensushashing"
	"github.com/mvsnet/mvsd/domain/consensus/utils/consensusserialization"
	"github.com/mvsnet/mvsd/domain/txbuilder"
	"github.com/mvsnet/mvsd/infrastructure/config"
	"github.com/pkg/errors"
)

const testTxHash = "3ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e506f1b1f1b1f1b"

func testEncodeConfig(t *testing.T) *encodeConfig {
	conf := &encodeConfig{Period: 7}
	conf.NetworkFlags = config.NetworkFlags{Devnet: true}
	err := conf.ResolveNetwork(nil)
	if err != nil {
		t.Fatalf("ResolveNetwork: %s", err)
	}
	return conf
}

func testAddress(t *testing.T, conf *encodeConfig) string {
	address, err := btcutil.NewAddressPubKeyHash(bytes.Repeat([]byte{0x01}, 20), conf.NetParams().ChainParams())
	if err != nil {
		t.Fatalf("NewAddressPubKeyHash: %s", err)
	}
	return address.EncodeAddress()
}

func TestNewEncodeRequest(t *testing.T) {
	conf := testEncodeConfig(t)
	address := testAddress(t, conf)
	scriptVersion := uint8(0x05)
	conf.ScriptVersion = &scriptVersion
	conf.LockTime = 10
	conf.Inputs = []string{testTxHash + ":0:0"}
	conf.Outputs = []string{address + ":1000", "6a00:0"}
	conf.Transfers = []string{"0:MVS.ZGC:sender:recipient:5"}
	conf.Messages = []string{"1:hello: world"}
	conf.Deposit = address + ":2000"
	conf.Period = 30

	request, err := newEncodeRequest(conf)
	if err != nil {
		t.Fatalf("newEncodeRequest: %s", err)
	}
	if request.Version != conf.NetParams().TransactionVersion {
		t.Errorf("version %d does not fall back to the network's", request.Version)
	}
	if request.ScriptVersion != 0x05 || request.LockTime != 10 {
		t.Errorf("script version %d, lock time %d", request.ScriptVersion, request.LockTime)
	}
	if len(request.Inputs) != 1 || len(request.Outputs) != 2 {
		t.Fatalf("got %d inputs and %d outputs", len(request.Inputs), len(request.Outputs))
	}
	if transfer, ok := request.Outputs[0].Attachment.Payload.(*attachment.AssetTransfer); !ok || transfer.Quantity != 5 {
		t.Errorf("output 0 attachment: %v", request.Outputs[0].Attachment)
	}
	if message, ok := request.Outputs[1].Attachment.Payload.(*attachment.Message); !ok || message.Content != "hello: world" {
		t.Errorf("output 1 attachment: %v", request.Outputs[1].Attachment)
	}
	if request.Deposit == nil || request.Deposit.PeriodDays != 30 || request.Deposit.Amount != 2000 {
		t.Fatalf("deposit: %+v", request.Deposit)
	}

	height := uint64(500)
	conf.Height = &height
	snapshot, err := chainSnapshot(conf)
	if err != nil {
		t.Fatalf("chainSnapshot: %s", err)
	}
	if snapshot.Height != 500 || snapshot.BlockInterval != conf.NetParams().TargetTimePerBlock {
		t.Fatalf("chainSnapshot: got %+v", snapshot)
	}

	tx, err := txbuilder.New(conf.NetParams()).Build(request, snapshot)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	serialized, err := consensusserialization.TransactionToBytes(tx)
	if err != nil {
		t.Fatalf("TransactionToBytes: %s", err)
	}
	decoded, err := consensusserialization.TransactionFromBytes(serialized)
	if err != nil {
		t.Fatalf("TransactionFromBytes: %s", err)
	}

	var out bytes.Buffer
	printTransaction(&out, decoded)
	for _, expected := range []string{
		"id: " + consensushashing.TransactionID(tx).String(),
		"lock time: 10",
		"sequence 0",
		"output 0: value 1000",
		"asset-transfer v1",
		"message v1",
		"locked until height: 4820",
		"OP_CHECKLOCKTIMEVERIFY",
	} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("decoded output is missing %q:\n%s", expected, out.String())
		}
	}
	if hex.EncodeToString(serialized) == "" {
		t.Fatalf("empty encoding")
	}
}

func TestAttachPayloadsErrors(t *testing.T) {
	outputs := []*txbuilder.OutputSpec{{Target: "6a00"}}
	tests := []struct {
		name      string
		transfers []string
		messages  []string
	}{
		{name: "index past the outputs", messages: []string{"1:hello"}},
		{name: "empty message", messages: []string{"0:"}},
		{name: "bad index", messages: []string{"x:hello"}},
		{name: "short transfer", transfers: []string{"0:MVS:sender:5"}},
		{name: "bad quantity", transfers: []string{"0:MVS:sender:recipient:many"}},
		{name: "two attachments", transfers: []string{"0:MVS:a:b:1"}, messages: []string{"0:hello"}},
	}
	for _, test := range tests {
		outputs[0].Attachment = nil
		err := attachPayloads(outputs, test.transfers, test.messages)
		if !errors.Is(err, ruleerrors.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", test.name, err)
		}
	}
}
