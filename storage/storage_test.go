package storage

import (
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/macirla-analysis/types"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	database, err := metadb.New(db.TypePebble, filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatal(err)
	}
	st := New(database)
	t.Cleanup(st.Close)
	return st
}

func testRun(id string) *types.AnalysisRun {
	return &types.AnalysisRun{
		ID:        id,
		Name:      "testset",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
		Params:    types.DefaultAnalysisParams(),
		Results: []*types.AnalysisResult{
			{ID: "d1", Voters: 1000, Margin: 800, FullGas: 304_243_818, RLAGas: 14_012_728},
		},
		Summary: &types.SummaryStatistics{Count: 1, TotalFullGas: 304_243_818, TotalRLAGas: 14_012_728},
	}
}

func TestRunStore(t *testing.T) {
	c := qt.New(t)
	st := newTestStorage(t)

	// Get non-existent run
	_, err := st.Run("missing")
	c.Assert(err, qt.Equals, ErrNotFound)

	// Set and get
	run := testRun("run-1")
	c.Assert(st.SetRun(run), qt.IsNil)
	got, err := st.Run("run-1")
	c.Assert(err, qt.IsNil)
	c.Assert(got.ID, qt.Equals, run.ID)
	c.Assert(got.Name, qt.Equals, run.Name)
	c.Assert(got.CreatedAt.Unix(), qt.Equals, run.CreatedAt.Unix())
	c.Assert(got.Params, qt.DeepEquals, run.Params)
	c.Assert(got.Results, qt.DeepEquals, run.Results)
	c.Assert(got.Summary, qt.DeepEquals, run.Summary)

	// List
	c.Assert(st.SetRun(testRun("run-2")), qt.IsNil)
	ids, err := st.ListRuns()
	c.Assert(err, qt.IsNil)
	c.Assert(ids, qt.HasLen, 2)

	// Delete
	c.Assert(st.DeleteRun("run-1"), qt.IsNil)
	_, err = st.Run("run-1")
	c.Assert(err, qt.Equals, ErrNotFound)
	c.Assert(st.DeleteRun("run-1"), qt.Equals, ErrNotFound)

	// Runs without ID are rejected
	c.Assert(st.SetRun(&types.AnalysisRun{}), qt.ErrorMatches, "run without ID")
}

func TestDatasetQueue(t *testing.T) {
	c := qt.New(t)
	st := newTestStorage(t)

	// Empty queue
	_, _, err := st.NextDataset()
	c.Assert(err, qt.Equals, ErrNoMoreElements)

	// Empty datasets are rejected
	_, err = st.PushDataset(&Dataset{Name: "empty"})
	c.Assert(err, qt.ErrorMatches, "empty dataset")

	ds := &Dataset{
		Name: "testset",
		Records: []*types.DecisionRecord{
			{ID: "d1", Voters: 100, ConsensusRate: 0.8},
		},
	}
	key, err := st.PushDataset(ds)
	c.Assert(err, qt.IsNil)
	c.Assert(key, qt.HasLen, maxKeySize)

	// Pull it: reserved until marked done or released
	got, gotKey, err := st.NextDataset()
	c.Assert(err, qt.IsNil)
	c.Assert(gotKey, qt.DeepEquals, key)
	c.Assert(got, qt.DeepEquals, ds)

	_, _, err = st.NextDataset()
	c.Assert(err, qt.Equals, ErrNoMoreElements)

	// Release puts it back
	c.Assert(st.ReleaseDataset(key), qt.IsNil)
	_, gotKey, err = st.NextDataset()
	c.Assert(err, qt.IsNil)
	c.Assert(gotKey, qt.DeepEquals, key)

	// Mark done: queue drains, run is stored
	c.Assert(st.MarkDatasetDone(key, testRun("run-1")), qt.IsNil)
	_, _, err = st.NextDataset()
	c.Assert(err, qt.Equals, ErrNoMoreElements)
	run, err := st.Run("run-1")
	c.Assert(err, qt.IsNil)
	c.Assert(run.Name, qt.Equals, "testset")
}
