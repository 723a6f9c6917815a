package chainstate

import (
	"bytes"
	"time"

	"github.com/mvsnet/mvsd/infrastructure/db/ldb"
	"github.com/mvsnet/mvsd/util/binaryserializer"
	"github.com/pkg/errors"
)

var tipHeightKey = []byte("tip-height")

// Store keeps the chain tip height in a leveldb database. It implements
// Provider.
type Store struct {
	db            *ldb.LevelDB
	blockInterval time.Duration
}

// Open opens or creates the chain state database at path.
func Open(path string, blockInterval time.Duration) (*Store, error) {
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Opened chain state at %s", path)
	return &Store{db: db, blockInterval: blockInterval}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// TipHeight returns the stored chain tip height. A store that never had a
// height set reports height 0.
func (s *Store) TipHeight() (uint64, error) {
	serialized, err := s.db.Get(tipHeightKey)
	if ldb.IsNotFoundError(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(serialized) != 8 {
		return 0, errors.Errorf("stored tip height is %d bytes long, expected 8", len(serialized))
	}
	return binaryserializer.Uint64(bytes.NewReader(serialized))
}

// SetTipHeight records height as the chain tip height.
func (s *Store) SetTipHeight(height uint64) error {
	var buf bytes.Buffer
	err := binaryserializer.PutUint64(&buf, height)
	if err != nil {
		return err
	}
	err = s.db.Put(tipHeightKey, buf.Bytes())
	if err != nil {
		return err
	}
	log.Infof("Chain tip height set to %d", height)
	return nil
}

// Snapshot returns the stored tip height together with the block interval
// the store was opened with.
func (s *Store) Snapshot() (Snapshot, error) {
	height, err := s.TipHeight()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Height: height, BlockInterval: s.blockInterval}, nil
}
