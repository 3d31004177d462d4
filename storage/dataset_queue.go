package storage

import (
	"errors"
	"fmt"

	"github.com/vocdoni/macirla-analysis/types"
	"go.vocdoni.io/dvote/db/prefixeddb"
)

// PushDataset stores a new dataset into the pending queue and returns its
// queue key.
func (s *Storage) PushDataset(d *Dataset) ([]byte, error) {
	if d == nil || len(d.Records) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}
	val, err := encodeArtifact(d)
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), datasetPrefix)
	key := hashKey(val)
	if err := wTx.Set(key, val); err != nil {
		wTx.Discard()
		return nil, err
	}
	if err := wTx.Commit(); err != nil {
		return nil, err
	}
	return key, nil
}

// NextDataset returns the next non-reserved pending dataset, creates a
// reservation for it, and returns it along with its queue key. The key is
// used to mark the dataset as done after analysis. If every dataset is
// consumed or reserved, returns ErrNoMoreElements.
func (s *Storage) NextDataset() (*Dataset, []byte, error) {
	s.globalLock.Lock()
	defer s.globalLock.Unlock()

	pr := prefixeddb.NewPrefixedReader(s.db, datasetPrefix)
	var chosenKey, chosenVal []byte
	if err := pr.Iterate(nil, func(k, v []byte) bool {
		if s.isReserved(datasetReservPrefix, k) {
			return true
		}
		chosenKey = make([]byte, len(k))
		copy(chosenKey, k)
		chosenVal = make([]byte, len(v))
		copy(chosenVal, v)
		return false
	}); err != nil {
		return nil, nil, fmt.Errorf("iterate datasets: %w", err)
	}
	if chosenVal == nil {
		return nil, nil, ErrNoMoreElements
	}

	var d Dataset
	if err := decodeArtifact(chosenVal, &d); err != nil {
		return nil, nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := s.setReservation(datasetReservPrefix, chosenKey); err != nil {
		return nil, nil, ErrNoMoreElements
	}
	return &d, chosenKey, nil
}

// MarkDatasetDone removes a processed dataset from the queue and stores the
// resulting analysis run.
func (s *Storage) MarkDatasetDone(k []byte, run *types.AnalysisRun) error {
	s.globalLock.Lock()
	defer s.globalLock.Unlock()

	if err := s.deleteArtifact(datasetReservPrefix, k); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if err := s.deleteArtifact(datasetPrefix, k); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete pending dataset: %w", err)
	}
	return s.setRunLocked(run)
}

// ReleaseDataset drops the reservation of a dataset so a later NextDataset
// can pick it up again, e.g. after an interrupted analysis.
func (s *Storage) ReleaseDataset(k []byte) error {
	s.globalLock.Lock()
	defer s.globalLock.Unlock()

	if err := s.deleteArtifact(datasetReservPrefix, k); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
