package storage

import (
	"fmt"

	"github.com/vocdoni/macirla-analysis/types"
)

// SetRun stores a completed analysis run, keyed by its ID.
func (s *Storage) SetRun(run *types.AnalysisRun) error {
	s.globalLock.Lock()
	defer s.globalLock.Unlock()
	return s.setRunLocked(run)
}

func (s *Storage) setRunLocked(run *types.AnalysisRun) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("run without ID")
	}
	return s.setArtifact(runPrefix, []byte(run.ID), run)
}

// Run retrieves an analysis run from the storage. It returns ErrNotFound if
// no run exists with the given ID.
func (s *Storage) Run(id string) (*types.AnalysisRun, error) {
	run := &types.AnalysisRun{}
	if err := s.getArtifact(runPrefix, []byte(id), run); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the IDs of every stored analysis run.
func (s *Storage) ListRuns() ([]string, error) {
	keys, err := s.listKeys(runPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = string(k)
	}
	return ids, nil
}

// DeleteRun removes a stored analysis run. It returns ErrNotFound if the
// run does not exist.
func (s *Storage) DeleteRun(id string) error {
	s.globalLock.Lock()
	defer s.globalLock.Unlock()
	return s.deleteArtifact(runPrefix, []byte(id))
}
