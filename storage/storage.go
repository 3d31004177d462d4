// Package storage persists the artifacts of the analysis pipeline in a
// prefixed key-value store and exposes a queue abstraction for datasets
// waiting to be analyzed. The following prefixes are used:
//   - 'd/' for pending datasets (queued)
//   - 'dr/' for dataset reservations
//   - 'r/' for completed analysis runs
package storage

import (
	"errors"
	"sync"

	"go.vocdoni.io/dvote/db"
)

var (
	// Prefixes for the keys in the database.
	datasetPrefix       = []byte("d/")
	datasetReservPrefix = []byte("dr/")
	runPrefix           = []byte("r/")
)

const (
	// maxKeySize is the number of bytes kept from the sha256 hash of an
	// artifact when deriving its storage key.
	maxKeySize = 12
)

var (
	// ErrNotFound is returned when the requested artifact does not exist.
	ErrNotFound = errors.New("artifact not found")
	// ErrNoMoreElements is returned by queue operations when every element
	// is either consumed or reserved.
	ErrNoMoreElements = errors.New("no more elements")
)

// Storage wraps the key-value database with artifact and queue operations.
type Storage struct {
	db         db.Database
	globalLock sync.Mutex
}

// New creates a new Storage instance on top of the given database.
func New(db db.Database) *Storage {
	return &Storage{db: db}
}

// Close closes the underlying database.
func (s *Storage) Close() {
	s.db.Close()
}
