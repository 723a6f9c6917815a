package attachment

import (
	"bytes"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

func testAssetTransfer() *AssetTransfer {
	return &AssetTransfer{
		Symbol:        "MVS.ZGC",
		Sender:        "MSCHL3unfVqzsZbRVCJ3yVp7RgAmXiuGN3",
		Recipient:     "MFhcmvPhDnctdwkQH1BdAjLbXdZbgNtSHx",
		Status:        2,
		MaximumSupply: 1_000_000_000,
		Quantity:      12_345,
		Timestamp:     1_514_764_800,
		Height:        1_048_576,
	}
}

func testPayloads() []Payload {
	return []Payload{
		testAssetTransfer(),
		&AssetTransfer{Symbol: "X"},
		&AssetTransfer{Quantity: 1},
		&AssetTransfer{Symbol: strings.Repeat("s", 300), Height: ^uint64(0)},
		&AssetIssue{
			Symbol:        "MVS.ZGC",
			MaximumSupply: 21_000_000,
			DecimalNumber: 8,
			Issuer:        "zgc",
			Address:       "MSCHL3unfVqzsZbRVCJ3yVp7RgAmXiuGN3",
			Description:   "ZGC token",
		},
		&Message{Content: "hello metaverse"},
		&Certificate{
			Symbol:   "MVS.ZGC",
			Owner:    "zgc",
			Address:  "MSCHL3unfVqzsZbRVCJ3yVp7RgAmXiuGN3",
			CertType: 1,
			Status:   1,
		},
	}
}

func TestAssetTransferWireLayout(t *testing.T) {
	transfer := &AssetTransfer{
		Symbol:        "AB",
		Sender:        "",
		Recipient:     "C",
		Status:        0x01020304,
		MaximumSupply: 1,
		Quantity:      2,
		Timestamp:     3,
		Height:        0x0102030405060708,
	}
	expected := []byte{
		0x02, 'A', 'B',
		0x00,
		0x01, 'C',
		0x04, 0x03, 0x02, 0x01,
		0x01, 0, 0, 0, 0, 0, 0, 0,
		0x02, 0, 0, 0, 0, 0, 0, 0,
		0x03, 0, 0, 0, 0, 0, 0, 0,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}

	serialized, err := PayloadToBytes(transfer)
	if err != nil {
		t.Fatalf("PayloadToBytes: %s", err)
	}
	if !bytes.Equal(serialized, expected) {
		t.Fatalf("PayloadToBytes: wrong encoding\n got: %x\nwant: %x", serialized, expected)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	for i, payload := range testPayloads() {
		serialized, err := PayloadToBytes(payload)
		if err != nil {
			t.Fatalf("test %d: PayloadToBytes: %s", i, err)
		}

		if payload.SerializeSize() != len(serialized) {
			t.Errorf("test %d: SerializeSize: got %d, want %d", i, payload.SerializeSize(), len(serialized))
		}

		decoded, err := newPayload(payload.Type())
		if err != nil {
			t.Fatalf("test %d: newPayload: %s", i, err)
		}
		err = PayloadFromBytes(decoded, serialized)
		if err != nil {
			t.Fatalf("test %d: PayloadFromBytes: %s", i, err)
		}
		if !reflect.DeepEqual(decoded, payload) {
			t.Errorf("test %d: round trip mismatch\n got: %s\nwant: %s", i,
				spew.Sdump(decoded), spew.Sdump(payload))
		}
	}
}

func TestAttachmentRoundTrip(t *testing.T) {
	attachments := []*Attachment{New(nil)}
	for _, payload := range testPayloads() {
		attachments = append(attachments, New(payload))
	}

	for i, attachment := range attachments {
		serialized, err := attachment.ToBytes()
		if err != nil {
			t.Fatalf("test %d: ToBytes: %s", i, err)
		}
		if attachment.SerializeSize() != len(serialized) {
			t.Errorf("test %d: SerializeSize: got %d, want %d", i, attachment.SerializeSize(), len(serialized))
		}

		fromBytes, err := FromBytes(serialized)
		if err != nil {
			t.Fatalf("test %d: FromBytes: %s", i, err)
		}
		fromReader, err := Deserialize(bytes.NewReader(serialized))
		if err != nil {
			t.Fatalf("test %d: Deserialize: %s", i, err)
		}
		if !reflect.DeepEqual(fromBytes, attachment) || !reflect.DeepEqual(fromReader, attachment) {
			t.Errorf("test %d: round trip mismatch\n got: %s\nwant: %s", i,
				spew.Sdump(fromBytes), spew.Sdump(attachment))
		}
		if fromBytes.Type() != attachment.Type() {
			t.Errorf("test %d: Type: got %s, want %s", i, fromBytes.Type(), attachment.Type())
		}
	}
}

func TestResetInvalidates(t *testing.T) {
	for i, payload := range testPayloads() {
		if !payload.IsValid() {
			t.Fatalf("test %d: payload unexpectedly invalid before reset", i)
		}
		payload.Reset()
		if payload.IsValid() {
			t.Errorf("test %d: payload still valid after reset: %s", i, spew.Sdump(payload))
		}
	}

	if (&AssetTransfer{}).IsValid() {
		t.Errorf("a zero AssetTransfer must be unset")
	}
	if !New(nil).IsValid() {
		t.Errorf("an attachment without payload must be valid")
	}
	if New(&AssetTransfer{}).IsValid() {
		t.Errorf("an attachment with an unset payload must be invalid")
	}
}

func TestTruncatedPayload(t *testing.T) {
	for i, payload := range testPayloads() {
		serialized, err := PayloadToBytes(payload)
		if err != nil {
			t.Fatalf("test %d: PayloadToBytes: %s", i, err)
		}

		for length := 0; length < len(serialized); length++ {
			decoded, _ := newPayload(payload.Type())
			err := PayloadFromBytes(decoded, serialized[:length])
			if err == nil {
				t.Fatalf("test %d: decoding %d of %d bytes unexpectedly succeeded", i, length, len(serialized))
			}
			if !errors.Is(err, ruleerrors.ErrMalformedAttachment) || !ruleerrors.IsFormatError(err) {
				t.Fatalf("test %d: decoding %d bytes returned wrong error: %s", i, length, err)
			}
			if decoded.IsValid() {
				t.Fatalf("test %d: decoding %d bytes left a partially populated payload: %s",
					i, length, spew.Sdump(decoded))
			}
		}
	}
}

func TestFailedDecodeLeavesReceiverUntouched(t *testing.T) {
	original := testAssetTransfer()
	serialized, err := PayloadToBytes(original)
	if err != nil {
		t.Fatalf("PayloadToBytes: %s", err)
	}

	other := &AssetTransfer{Symbol: "KEEP", Quantity: 7}
	err = PayloadFromBytes(other, serialized[:len(serialized)-1])
	if err == nil {
		t.Fatalf("PayloadFromBytes: unexpectedly succeeded on truncated data")
	}
	if !reflect.DeepEqual(other, &AssetTransfer{Symbol: "KEEP", Quantity: 7}) {
		t.Fatalf("PayloadFromBytes: receiver modified by failed decode: %s", spew.Sdump(other))
	}
}

func TestTruncatedAttachment(t *testing.T) {
	serialized, err := New(testAssetTransfer()).ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %s", err)
	}

	decoded, err := FromBytes(serialized[:len(serialized)-1])
	if err == nil {
		t.Fatalf("FromBytes: unexpectedly succeeded on truncated data")
	}
	if decoded != nil {
		t.Fatalf("FromBytes: returned a value alongside an error: %s", spew.Sdump(decoded))
	}
	if !ruleerrors.IsFormatError(err) {
		t.Fatalf("FromBytes: wrong error: %s", err)
	}

	_, err = FromBytes(nil)
	if !ruleerrors.IsFormatError(err) {
		t.Fatalf("FromBytes(nil): wrong error: %v", err)
	}
}

func TestUnknownAttachmentType(t *testing.T) {
	serialized := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x63, 0x00, 0x00, 0x00,
	}
	_, err := FromBytes(serialized)
	if !errors.Is(err, ruleerrors.ErrUnknownAttachmentType) {
		t.Fatalf("FromBytes: expected ErrUnknownAttachmentType, got %v", err)
	}
	if !ruleerrors.IsFormatError(err) {
		t.Fatalf("FromBytes: unknown type should be a format error")
	}
}

func TestConcurrentDecode(t *testing.T) {
	serialized, err := New(testAssetTransfer()).ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %s", err)
	}

	const workers = 64
	results := make([]*Attachment, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = FromBytes(serialized)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: FromBytes: %s", i, errs[i])
		}
		if !reflect.DeepEqual(results[i], results[0]) {
			t.Fatalf("worker %d: decoded a different value\n got: %s\nwant: %s", i,
				spew.Sdump(results[i]), spew.Sdump(results[0]))
		}
		reserialized, err := results[i].ToBytes()
		if err != nil {
			t.Fatalf("worker %d: ToBytes: %s", i, err)
		}
		if !bytes.Equal(reserialized, serialized) {
			t.Fatalf("worker %d: re-encoding differs", i)
		}
	}
}
