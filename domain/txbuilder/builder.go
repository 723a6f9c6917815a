// Package txbuilder assembles unsigned transactions from declarative input
// and output specifications.
package txbuilder

import (
	"github.com/mvsnet/mvsd/domain/chainstate"
	"github.com/mvsnet/mvsd/domain/consensus/model/externalapi"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/constants"
	"github.com/mvsnet/mvsd/domain/consensus/utils/txscript"
	"github.com/mvsnet/mvsd/domain/dagconfig"
	"github.com/mvsnet/mvsd/infrastructure/logger"
	"github.com/pkg/errors"
)

// Builder builds unsigned transactions for one network. A Builder holds no
// state between builds and is safe for concurrent use.
type Builder struct {
	params *dagconfig.Params
}

// New returns a Builder for the network described by params.
func New(params *dagconfig.Params) *Builder {
	return &Builder{params: params}
}

// Build assembles the transaction described by request. snapshot is only
// consulted by deposit outputs. Either the transaction or an error is
// returned, never both.
func (b *Builder) Build(request *Request, snapshot chainstate.Snapshot) (*externalapi.DomainTransaction, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "Build")
	defer onEnd()

	if request.Version < constants.MinTransactionVersion {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidVersion, "transaction version %d", request.Version)
	}

	var depositResolver *DepositPeriodResolver
	if request.Deposit != nil {
		err := ValidatePeriod(request.Deposit.PeriodDays)
		if err != nil {
			return nil, err
		}
		depositResolver, err = NewDepositPeriodResolver(snapshot)
		if err != nil {
			return nil, err
		}
	}

	inputs := buildInputs(request.Inputs)
	if request.LockTime != 0 && allInputsFinal(inputs) {
		return nil, errors.Wrapf(ruleerrors.ErrLocktimeConflict, "lock time %d is set but every input "+
			"sequence is %d", request.LockTime, constants.MaxTxInSequenceNum)
	}

	resolver := newOutputResolver(b.params, request.ScriptVersion)
	outputs := make([]*externalapi.DomainTransactionOutput, 0, len(request.Outputs)+1)
	for _, spec := range request.Outputs {
		resolved, err := resolver.resolve(spec)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, resolved...)
	}

	if request.Deposit != nil {
		resolved, err := b.depositOutputs(resolver, depositResolver, request.Deposit)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, resolved...)
	}

	err := checkTotalValue(outputs)
	if err != nil {
		return nil, err
	}

	tx := &externalapi.DomainTransaction{
		Version:  request.Version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: request.LockTime,
	}
	log.Debugf("Built transaction version %d with %d inputs and %d outputs", tx.Version,
		len(tx.Inputs), len(tx.Outputs))
	return tx, nil
}

func (b *Builder) depositOutputs(resolver *outputResolver, depositResolver *DepositPeriodResolver,
	deposit *DepositOutputSpec) ([]*externalapi.DomainTransactionOutput, error) {

	unlockHeight, err := depositResolver.UnlockHeight(deposit.PeriodDays)
	if err != nil {
		return nil, err
	}
	resolved, err := resolver.resolve(&deposit.OutputSpec)
	if err != nil {
		return nil, err
	}

	payment := resolved[len(resolved)-1]
	lockedScript, err := txscript.PayToLockHeightScript(unlockHeight, payment.ScriptPublicKey)
	if err != nil {
		return nil, err
	}
	payment.ScriptPublicKey = lockedScript
	log.Debugf("Deposit of %d days locked until height %d", deposit.PeriodDays, unlockHeight)
	return resolved, nil
}

func buildInputs(specs []*InputSpec) []*externalapi.DomainTransactionInput {
	inputs := make([]*externalapi.DomainTransactionInput, len(specs))
	for i, spec := range specs {
		sequence := constants.MaxTxInSequenceNum
		if spec.Sequence != nil {
			sequence = *spec.Sequence
		}
		inputs[i] = &externalapi.DomainTransactionInput{
			PreviousOutpoint: spec.Outpoint,
			SignatureScript:  []byte{},
			Sequence:         sequence,
		}
	}
	return inputs
}

// allInputsFinal returns whether no input can enable the lock time. This
// holds vacuously for a transaction without inputs.
func allInputsFinal(inputs []*externalapi.DomainTransactionInput) bool {
	for _, input := range inputs {
		if input.Sequence != constants.MaxTxInSequenceNum {
			return false
		}
	}
	return true
}

func checkTotalValue(outputs []*externalapi.DomainTransactionOutput) error {
	var total uint64
	for _, output := range outputs {
		total += output.Value
		if total > constants.MaxSatoshi {
			return errors.Wrapf(ruleerrors.ErrAmountOverflow, "total output value is above the maximum of %d",
				uint64(constants.MaxSatoshi))
		}
	}
	return nil
}
