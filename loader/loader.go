// Package loader supplies decision records to the analysis pipeline.
// Loaders own input validation: records that reach the core are well-typed
// and within domain. Raw columnar dataset formats are decoded upstream; the
// JSON loader consumes the decoded export.
package loader

import (
	"math"

	"github.com/vocdoni/macirla-analysis/types"
)

// Loader supplies a full set of decision records.
type Loader interface {
	Load() ([]*types.DecisionRecord, error)
}

// validRecord reports whether a record is usable by the core: a consensus
// rate inside [0,1] and not NaN.
func validRecord(r *types.DecisionRecord) bool {
	if r == nil {
		return false
	}
	if math.IsNaN(r.ConsensusRate) {
		return false
	}
	return r.ConsensusRate >= 0 && r.ConsensusRate <= 1
}
