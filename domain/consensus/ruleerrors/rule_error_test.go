package ruleerrors

import (
	"io"
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

func TestNewErrMalformedAttachment(t *testing.T) {
	outer := NewErrMalformedAttachment(io.ErrUnexpectedEOF)
	expectedOuterErr := "ErrMalformedAttachment: unexpected EOF"

	if !errors.Is(outer, ErrMalformedAttachment) {
		t.Fatal("TestNewErrMalformedAttachment: Outer should match ErrMalformedAttachment")
	}
	if errors.Is(outer, ErrMalformedTransaction) {
		t.Fatal("TestNewErrMalformedAttachment: Outer should not match ErrMalformedTransaction")
	}
	if !errors.Is(outer, io.ErrUnexpectedEOF) {
		t.Fatal("TestNewErrMalformedAttachment: Outer should contain io.ErrUnexpectedEOF in it")
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrMalformedAttachment: Outer should contain RuleError in it")
	}
	if rule.message != "ErrMalformedAttachment" {
		t.Fatalf("TestNewErrMalformedAttachment: Expected message = 'ErrMalformedAttachment', found: '%s'", rule.message)
	}
	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMalformedAttachment: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestWrappedRuleErrorMatches(t *testing.T) {
	err := errors.Wrapf(ErrInvalidPeriod, "period %d is not allowed", 31)
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("TestWrappedRuleErrorMatches: %s should match ErrInvalidPeriod", err)
	}
	if errors.Is(err, ErrLocktimeConflict) {
		t.Fatalf("TestWrappedRuleErrorMatches: %s should not match ErrLocktimeConflict", err)
	}
}

func TestIsFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"unexpected EOF", errors.WithStack(io.ErrUnexpectedEOF), true},
		{"EOF", io.EOF, true},
		{"wire message error", &wire.MessageError{Func: "ReadVarInt", Description: "non-canonical varint"}, true},
		{"malformed transaction", NewErrMalformedTransaction(io.EOF), true},
		{"unknown attachment type", errors.Wrapf(ErrUnknownAttachmentType, "type %d", 9), true},
		{"invalid target", errors.Wrap(ErrInvalidTarget, "nope"), false},
		{"plain error", errors.New("plain"), false},
	}
	for _, test := range tests {
		if got := IsFormatError(test.err); got != test.expected {
			t.Errorf("%s: IsFormatError: expected %t, got %t", test.name, test.expected, got)
		}
	}
}
