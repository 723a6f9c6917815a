package ruleerrors

import (
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrMalformedAttachment indicates attachment bytes are truncated or
	// otherwise cannot be decoded into a payload.
	ErrMalformedAttachment = newRuleError("ErrMalformedAttachment")

	// ErrUnknownAttachmentType indicates an attachment carries a type tag
	// that matches none of the known payload variants.
	ErrUnknownAttachmentType = newRuleError("ErrUnknownAttachmentType")

	// ErrMalformedTransaction indicates serialized transaction bytes are
	// truncated or carry trailing garbage.
	ErrMalformedTransaction = newRuleError("ErrMalformedTransaction")

	// ErrInvalidAttachment indicates an output attachment whose payload is
	// unset, i.e. every payload field holds its default value.
	ErrInvalidAttachment = newRuleError("ErrInvalidAttachment")

	// ErrInvalidTarget indicates an output target is neither an address,
	// a script-hash address, a hex script nor a stealth address.
	ErrInvalidTarget = newRuleError("ErrInvalidTarget")

	// ErrMissingStealthSeed indicates a stealth target was given without
	// the seed needed to derive its ephemeral key.
	ErrMissingStealthSeed = newRuleError("ErrMissingStealthSeed")

	// ErrDuplicateStealthSeed indicates the same stealth seed was used for
	// more than one output of a single transaction.
	ErrDuplicateStealthSeed = newRuleError("ErrDuplicateStealthSeed")

	// ErrAmountOverflow indicates an output amount, or the sum of all
	// output amounts, exceeds the maximum money supply.
	ErrAmountOverflow = newRuleError("ErrAmountOverflow")

	// ErrInvalidPeriod indicates a deposit period that is not one of the
	// allowed number of days.
	ErrInvalidPeriod = newRuleError("ErrInvalidPeriod")

	// ErrLocktimeConflict indicates a non-zero lock time that can never take
	// effect because all input sequences are set to the maximum value.
	ErrLocktimeConflict = newRuleError("ErrLocktimeConflict")

	// ErrInvalidVersion indicates a transaction version below 1.
	ErrInvalidVersion = newRuleError("ErrInvalidVersion")

	// ErrInvalidInput indicates an input or output descriptor that does not
	// follow its textual grammar.
	ErrInvalidInput = newRuleError("ErrInvalidInput")
)

// RuleError identifies a rule violation. It is used to indicate that
// decoding an attachment or building a transaction failed due to one of the
// format or assembly rules. The caller can use errors.Is to determine which
// rule was violated.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is matches any RuleError carrying the same rule, regardless of its inner
// cause, so that errors.Is(err, ErrX) holds for wrapped rule errors.
func (e RuleError) Is(target error) bool {
	other, ok := target.(RuleError)
	return ok && other.message == e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// NewErrMalformedAttachment wraps a low level decoding failure into an
// ErrMalformedAttachment rule error, keeping the original cause reachable.
func NewErrMalformedAttachment(cause error) error {
	return errors.WithStack(RuleError{
		message: ErrMalformedAttachment.message,
		inner:   cause,
	})
}

// NewErrMalformedTransaction wraps a low level decoding failure into an
// ErrMalformedTransaction rule error.
func NewErrMalformedTransaction(cause error) error {
	return errors.WithStack(RuleError{
		message: ErrMalformedTransaction.message,
		inner:   cause,
	})
}

// IsFormatError returns whether the error indicates malformed or truncated
// serialized data.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrMalformedAttachment) ||
		errors.Is(err, ErrUnknownAttachmentType) ||
		errors.Is(err, ErrMalformedTransaction) ||
		IsMalformedDataError(err)
}

// IsMalformedDataError returns whether err was produced by a reader that ran
// out of data or by the wire primitives rejecting a non-canonical or oversized
// length prefix.
func IsMalformedDataError(err error) bool {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var messageErr *wire.MessageError
	return errors.As(err, &messageErr)
}
