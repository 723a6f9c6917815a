// Package chainstate provides the read-only view of the chain that
// transaction assembly needs: the current tip height and the average block
// interval.
package chainstate

import (
	"time"

	"github.com/pkg/errors"
)

// Snapshot is an immutable view of the chain taken once per build.
type Snapshot struct {
	Height        uint64
	BlockInterval time.Duration
}

// Validate returns an error if the snapshot can not be used to convert time
// spans into block counts.
func (s Snapshot) Validate() error {
	if s.BlockInterval < time.Second {
		return errors.Errorf("block interval %s is below one second", s.BlockInterval)
	}
	return nil
}

// Provider supplies chain snapshots.
type Provider interface {
	Snapshot() (Snapshot, error)
}

// StaticProvider always returns the same snapshot.
type StaticProvider Snapshot

// Snapshot returns p as a Snapshot.
func (p StaticProvider) Snapshot() (Snapshot, error) {
	return Snapshot(p), nil
}
