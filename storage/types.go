package storage

import "github.com/vocdoni/macirla-analysis/types"

// Dataset is a set of decision records queued for analysis. ID, when set,
// becomes the ID of the resulting analysis run, so the producer can look the
// run up once the queue drains. Params may override the runner defaults;
// when nil the runner's own parameters apply.
type Dataset struct {
	ID      string                  `json:"id,omitempty"     cbor:"0,keyasint,omitempty"`
	Name    string                  `json:"name,omitempty"   cbor:"1,keyasint,omitempty"`
	Records []*types.DecisionRecord `json:"records"          cbor:"2,keyasint,omitempty"`
	Params  *types.AnalysisParams   `json:"params,omitempty" cbor:"3,keyasint,omitempty"`
}
