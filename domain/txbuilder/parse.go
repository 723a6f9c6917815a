package txbuilder

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// ParseInputSpec parses an input encoded as TXHASH:INDEX[:SEQUENCE].
func ParseInputSpec(text string) (*InputSpec, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "input %q is not TXHASH:INDEX[:SEQUENCE]", text)
	}

	if len(fields[0]) != chainhash.MaxHashStringSize {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "transaction hash %q is not %d hex characters",
			fields[0], chainhash.MaxHashStringSize)
	}
	txID, err := chainhash.NewHashFromStr(fields[0])
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "transaction hash %q: %s", fields[0], err)
	}

	index, err := parseUint32(fields[1], "index")
	if err != nil {
		return nil, err
	}

	spec := &InputSpec{
		Outpoint: externalapi.DomainOutpoint{TransactionID: *txID, Index: index},
	}
	if len(fields) == 3 {
		sequence, err := parseUint32(fields[2], "sequence")
		if err != nil {
			return nil, err
		}
		spec.Sequence = &sequence
	}
	return spec, nil
}

// ParseOutputSpec parses an output encoded as TARGET:AMOUNT[:SEED], where
// SEED is hex encoded.
func ParseOutputSpec(text string) (*OutputSpec, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "output %q is not TARGET:AMOUNT[:SEED]", text)
	}
	spec, err := parseTargetAmount(fields[0], fields[1])
	if err != nil {
		return nil, err
	}
	if len(fields) == 3 {
		spec.Seed, err = hex.DecodeString(fields[2])
		if err != nil {
			return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "seed %q is not hex: %s", fields[2], err)
		}
	}
	return spec, nil
}

// ParseDepositSpec parses a deposit output encoded as TARGET:AMOUNT that
// locks its funds for periodDays.
func ParseDepositSpec(text string, periodDays uint32) (*DepositOutputSpec, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 2 {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "deposit %q is not TARGET:AMOUNT", text)
	}
	spec, err := parseTargetAmount(fields[0], fields[1])
	if err != nil {
		return nil, err
	}
	return &DepositOutputSpec{OutputSpec: *spec, PeriodDays: periodDays}, nil
}

func parseTargetAmount(target, amountText string) (*OutputSpec, error) {
	if target == "" {
		return nil, errors.Wrap(ruleerrors.ErrInvalidTarget, "empty target")
	}
	amount, err := strconv.ParseUint(amountText, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ruleerrors.ErrAmountOverflow, "amount %s", amountText)
		}
		return nil, errors.Wrapf(ruleerrors.ErrInvalidInput, "amount %q is not a number", amountText)
	}
	return &OutputSpec{Target: target, Amount: amount}, nil
}

func parseUint32(text string, name string) (uint32, error) {
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ruleerrors.ErrInvalidInput, "%s %q is not an unsigned 32 bit number", name, text)
	}
	return uint32(value), nil
}
