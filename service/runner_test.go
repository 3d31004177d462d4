package service

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/arbo/memdb"
	"github.com/vocdoni/macirla-analysis/storage"
	"github.com/vocdoni/macirla-analysis/types"
)

func TestRunnerService(t *testing.T) {
	c := qt.New(t)

	store := storage.New(memdb.New())
	defer store.Close()

	ds := &storage.Dataset{
		ID:   "run-1",
		Name: "queued",
		Records: []*types.DecisionRecord{
			{ID: "d1", Voters: 1000, ConsensusRate: 0.9},
		},
	}
	_, err := store.PushDataset(ds)
	c.Assert(err, qt.IsNil)

	runner := NewRunner(store, 50*time.Millisecond)
	ctx := context.Background()
	c.Assert(runner.Start(ctx), qt.IsNil)
	defer runner.Stop()

	// Wait for the runner to pick up the dataset and store the run.
	var run *types.AnalysisRun
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		run, err = store.Run("run-1")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	c.Assert(err, qt.IsNil)
	c.Assert(run.ID, qt.Equals, "run-1")
	c.Assert(run.Name, qt.Equals, "queued")
	c.Assert(run.Summary.Count, qt.Equals, 1)
	c.Assert(run.Results[0].PMSamples, qt.Equals, uint64(8))

	// The queue is drained.
	_, _, err = store.NextDataset()
	c.Assert(err, qt.Equals, storage.ErrNoMoreElements)

	// Starting an already running runner fails.
	err = runner.Start(ctx)
	c.Assert(err, qt.ErrorMatches, "runner service already running")
}
