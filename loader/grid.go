package loader

import (
	"fmt"

	"github.com/vocdoni/macirla-analysis/types"
)

// GridLoader generates a synthetic cartesian sweep of voter counts and
// consensus rates, for scenario analysis without a real dataset.
type GridLoader struct {
	Voters         []uint64
	ConsensusRates []float64
}

// DefaultGrid returns the sweep used when no dataset is supplied: voter
// counts across four orders of magnitude and consensus rates from a tie to
// unanimity.
func DefaultGrid() *GridLoader {
	return &GridLoader{
		Voters:         []uint64{10, 50, 100, 500, 1000, 5000, 10000},
		ConsensusRates: []float64{0.5, 0.55, 0.6, 0.7, 0.8, 0.9, 0.95, 1.0},
	}
}

func (g *GridLoader) Load() ([]*types.DecisionRecord, error) {
	records := make([]*types.DecisionRecord, 0, len(g.Voters)*len(g.ConsensusRates))
	for _, v := range g.Voters {
		for _, rate := range g.ConsensusRates {
			if rate < 0 || rate > 1 {
				return nil, fmt.Errorf("consensus rate out of range: %g", rate)
			}
			records = append(records, &types.DecisionRecord{
				ID:            fmt.Sprintf("grid-%d-%g", v, rate),
				Voters:        v,
				ConsensusRate: rate,
			})
		}
	}
	return records, nil
}
