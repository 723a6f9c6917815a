package txbuilder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

const testTxHash = "3ba27aa200b1cecaad478d2b00432346c3f1f3986da1afd33e506f1b1f1b1f1b"

func TestParseInputSpec(t *testing.T) {
	spec, err := ParseInputSpec(testTxHash + ":3")
	if err != nil {
		t.Fatalf("ParseInputSpec: %s", err)
	}
	if spec.Outpoint.TransactionID.String() != testTxHash || spec.Outpoint.Index != 3 {
		t.Fatalf("ParseInputSpec: got outpoint %s", spec.Outpoint)
	}
	if spec.Sequence != nil {
		t.Fatalf("ParseInputSpec: sequence set without being given")
	}

	spec, err = ParseInputSpec(testTxHash + ":0:4294967294")
	if err != nil {
		t.Fatalf("ParseInputSpec: %s", err)
	}
	if spec.Sequence == nil || *spec.Sequence != 4294967294 {
		t.Fatalf("ParseInputSpec: wrong sequence %v", spec.Sequence)
	}

	invalid := []string{
		"",
		testTxHash,
		testTxHash + ":1:2:3",
		testTxHash[:62] + ":1",
		strings.Repeat("zz", 32) + ":1",
		testTxHash + ":-1",
		testTxHash + ":4294967296",
		testTxHash + ":1:sequence",
	}
	for _, text := range invalid {
		if _, err := ParseInputSpec(text); !errors.Is(err, ruleerrors.ErrInvalidInput) {
			t.Errorf("ParseInputSpec(%q): expected ErrInvalidInput, got %v", text, err)
		}
	}
}

func TestParseOutputSpec(t *testing.T) {
	spec, err := ParseOutputSpec("target:1000000")
	if err != nil {
		t.Fatalf("ParseOutputSpec: %s", err)
	}
	if spec.Target != "target" || spec.Amount != 1_000_000 || spec.Seed != nil {
		t.Fatalf("ParseOutputSpec: got %+v", spec)
	}

	spec, err = ParseOutputSpec("target:18446744073709551615:00ff")
	if err != nil {
		t.Fatalf("ParseOutputSpec: %s", err)
	}
	if spec.Amount != 18446744073709551615 || !bytes.Equal(spec.Seed, []byte{0x00, 0xff}) {
		t.Fatalf("ParseOutputSpec: got %+v", spec)
	}

	tests := []struct {
		text        string
		expectedErr error
	}{
		{"target", ruleerrors.ErrInvalidInput},
		{"target:1:2:3", ruleerrors.ErrInvalidInput},
		{"target:one", ruleerrors.ErrInvalidInput},
		{"target:-1", ruleerrors.ErrInvalidInput},
		{"target:1:xyz", ruleerrors.ErrInvalidInput},
		{":1", ruleerrors.ErrInvalidTarget},
		{"target:18446744073709551616", ruleerrors.ErrAmountOverflow},
	}
	for _, test := range tests {
		if _, err := ParseOutputSpec(test.text); !errors.Is(err, test.expectedErr) {
			t.Errorf("ParseOutputSpec(%q): expected %s, got %v", test.text, test.expectedErr, err)
		}
	}
}

func TestParseDepositSpec(t *testing.T) {
	spec, err := ParseDepositSpec("target:500", 90)
	if err != nil {
		t.Fatalf("ParseDepositSpec: %s", err)
	}
	if spec.Target != "target" || spec.Amount != 500 || spec.PeriodDays != 90 {
		t.Fatalf("ParseDepositSpec: got %+v", spec)
	}

	if _, err := ParseDepositSpec("target:500:00ff", 90); !errors.Is(err, ruleerrors.ErrInvalidInput) {
		t.Fatalf("ParseDepositSpec with a seed: expected ErrInvalidInput, got %v", err)
	}
}
