package loader

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestJSONLoader(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "records.json")
	data := `[
		{"id": "d1", "voters": 100, "consensus_rate": 0.9, "meta": {"num_appeals": "2"}},
		{"id": "d2", "voters": 0, "consensus_rate": 1},
		{"id": "bad", "voters": 10, "consensus_rate": 1.5}
	]`
	c.Assert(os.WriteFile(path, []byte(data), 0o644), qt.IsNil)

	l := &JSONLoader{Path: path}
	records, err := l.Load()
	c.Assert(err, qt.IsNil)
	c.Assert(records, qt.HasLen, 2)
	c.Assert(records[0].ID, qt.Equals, "d1")
	c.Assert(records[0].Meta["num_appeals"], qt.Equals, "2")
	c.Assert(records[1].ID, qt.Equals, "d2")

	l.SkipZeroVoters = true
	records, err = l.Load()
	c.Assert(err, qt.IsNil)
	c.Assert(records, qt.HasLen, 1)
	c.Assert(records[0].ID, qt.Equals, "d1")
}

func TestJSONLoaderMissingFile(t *testing.T) {
	c := qt.New(t)
	l := &JSONLoader{Path: filepath.Join(t.TempDir(), "nope.json")}
	_, err := l.Load()
	c.Assert(err, qt.IsNotNil)
}

func TestGridLoader(t *testing.T) {
	c := qt.New(t)

	g := &GridLoader{
		Voters:         []uint64{10, 100},
		ConsensusRates: []float64{0.5, 0.9, 1.0},
	}
	records, err := g.Load()
	c.Assert(err, qt.IsNil)
	c.Assert(records, qt.HasLen, 6)
	c.Assert(records[0].ID, qt.Equals, "grid-10-0.5")
	c.Assert(records[5].ID, qt.Equals, "grid-100-1")

	g.ConsensusRates = []float64{1.1}
	_, err = g.Load()
	c.Assert(err, qt.ErrorMatches, "consensus rate out of range: 1.1")
}

func TestDefaultGrid(t *testing.T) {
	c := qt.New(t)
	records, err := DefaultGrid().Load()
	c.Assert(err, qt.IsNil)
	c.Assert(records, qt.HasLen, 56)
}
