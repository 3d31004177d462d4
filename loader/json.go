package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vocdoni/macirla-analysis/log"
	"github.com/vocdoni/macirla-analysis/types"
)

// JSONLoader reads decision records from a JSON array file, the decoded form
// of a dispute dataset export. Malformed records (consensus rate outside
// [0,1] or NaN) are dropped. With SkipZeroVoters set, records without votes
// are dropped as well, as the reference does for the Kleros dataset.
type JSONLoader struct {
	Path           string
	SkipZeroVoters bool
}

func (l *JSONLoader) Load() ([]*types.DecisionRecord, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	var raw []*types.DecisionRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode records file %s: %w", l.Path, err)
	}

	records := make([]*types.DecisionRecord, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		if !validRecord(r) || (l.SkipZeroVoters && r.Voters == 0) {
			dropped++
			continue
		}
		records = append(records, r)
	}
	log.Debugw("records loaded", "path", l.Path, "count", len(records), "dropped", dropped)
	return records, nil
}
