package txbuilder

import (
	"time"

	"github.com/mvsnet/mvsd/domain/chainstate"
	"github.com/mvsnet/mvsd/domain/consensus/ruleerrors"
	"github.com/mvsnet/mvsd/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// ValidatePeriod returns ErrInvalidPeriod unless days is one of the allowed
// deposit periods.
func ValidatePeriod(days uint32) error {
	for _, period := range constants.DepositPeriods {
		if days == period {
			return nil
		}
	}
	return errors.Wrapf(ruleerrors.ErrInvalidPeriod, "deposit period of %d days, allowed periods are %v",
		days, constants.DepositPeriods)
}

// DepositPeriodResolver converts deposit periods into lock heights against a
// single chain snapshot.
type DepositPeriodResolver struct {
	snapshot chainstate.Snapshot
}

// NewDepositPeriodResolver returns a resolver working on snapshot.
func NewDepositPeriodResolver(snapshot chainstate.Snapshot) (*DepositPeriodResolver, error) {
	err := snapshot.Validate()
	if err != nil {
		return nil, err
	}
	return &DepositPeriodResolver{snapshot: snapshot}, nil
}

// LockBlocks returns the number of blocks produced during a deposit period
// of days at the snapshot's block interval.
func (r *DepositPeriodResolver) LockBlocks(days uint32) (uint64, error) {
	err := ValidatePeriod(days)
	if err != nil {
		return 0, err
	}
	intervalSeconds := uint64(r.snapshot.BlockInterval / time.Second)
	return uint64(days) * constants.SecondsPerDay / intervalSeconds, nil
}

// UnlockHeight returns the first height at which a deposit of days made at
// the snapshot's height can be spent.
func (r *DepositPeriodResolver) UnlockHeight(days uint32) (uint64, error) {
	lockBlocks, err := r.LockBlocks(days)
	if err != nil {
		return 0, err
	}
	return r.snapshot.Height + lockBlocks, nil
}
