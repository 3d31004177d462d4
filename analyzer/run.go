package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vocdoni/macirla-analysis/aggregator"
	"github.com/vocdoni/macirla-analysis/log"
	"github.com/vocdoni/macirla-analysis/types"
)

// Run executes the whole pipeline over a record set and assembles the output
// document: per-dispute results, summary statistics and the margin and
// savings distributions. If name is empty a random identifier is used for
// both ID and name.
func (a *Analyzer) Run(ctx context.Context, name string, records []*types.DecisionRecord) (*types.AnalysisRun, error) {
	results, err := a.AnalyzeAll(ctx, records)
	if err != nil {
		return nil, err
	}
	summary := aggregator.Summarize(results, a.params)
	id := uuid.New().String()
	if name == "" {
		name = id
	}
	run := &types.AnalysisRun{
		ID:                  id,
		Name:                name,
		CreatedAt:           time.Now().UTC(),
		Params:              a.params,
		Results:             results,
		Summary:             summary,
		MarginDistribution:  aggregator.BuildHistogram(results, aggregator.MarginPct, aggregator.DefaultMarginBuckets()),
		SavingsDistribution: aggregator.BuildHistogram(results, aggregator.SavingsPct, aggregator.DefaultSavingsBuckets()),
	}
	log.Debugw("analysis run completed",
		"id", run.ID,
		"disputes", summary.Count,
		"aggregateSavingsPct", summary.AggregateSavingsPct,
	)
	return run, nil
}
