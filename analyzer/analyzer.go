// Package analyzer computes the per-dispute cost comparison between full
// MACI proof verification and MaciRLA sampled verification.
package analyzer

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/vocdoni/macirla-analysis/cost"
	"github.com/vocdoni/macirla-analysis/rla"
	"github.com/vocdoni/macirla-analysis/types"
)

// Analyzer evaluates decision records against a fixed set of cost
// parameters. Analyze is a pure function of its arguments, so a single
// Analyzer is safe for concurrent use.
type Analyzer struct {
	params *types.AnalysisParams
}

// New creates an Analyzer. A nil params uses the reference defaults.
func New(params *types.AnalysisParams) (*Analyzer, error) {
	if params == nil {
		params = types.DefaultAnalysisParams()
	}
	if params.PMBatchSize == 0 || params.TVBatchSize == 0 {
		return nil, fmt.Errorf("batch sizes must be positive")
	}
	return &Analyzer{params: params}, nil
}

// Params returns the parameters the analyzer was built with.
func (a *Analyzer) Params() *types.AnalysisParams {
	return a.params
}

// Analyze computes the full cost analysis for a single decision record.
// A zero-voter record carries no decision and yields an all-zero result.
func (a *Analyzer) Analyze(rec *types.DecisionRecord) *types.AnalysisResult {
	if rec.Voters == 0 {
		return &types.AnalysisResult{
			ID:            rec.ID,
			ConsensusRate: rec.ConsensusRate,
			Meta:          rec.Meta,
		}
	}

	// Reconstruct the vote split from the consensus rate. Exact halves
	// round to even, matching the dataset tooling that produced the gas
	// measurements.
	yesVotes := uint64(math.RoundToEven(float64(rec.Voters) * rec.ConsensusRate))
	if yesVotes > rec.Voters {
		yesVotes = rec.Voters
	}
	noVotes := rec.Voters - yesVotes
	margin := yesVotes - noVotes
	if noVotes > yesVotes {
		margin = noVotes - yesVotes
	}
	marginPct := float64(margin) / float64(rec.Voters) * 100

	pm := types.BatchConfig{
		BatchSize:  a.params.PMBatchSize,
		BatchCount: rla.CeilDiv(rec.Voters, a.params.PMBatchSize),
	}
	tv := types.BatchConfig{
		BatchSize: a.params.TVBatchSize,
		// one extra state tree leaf pads the tally batches
		BatchCount: rla.CeilDiv(rec.Voters+1, a.params.TVBatchSize),
	}

	samples := rla.CalcSampleCounts(margin, rec.Voters, pm, tv, a.params.ConfidenceX1000)

	fullGas := pm.BatchCount*a.params.PMProofGas + tv.BatchCount*a.params.TVProofGas + a.params.FullFixedGas
	rlaGas := samples.PMSamples*a.params.PMProofGas + samples.TVSamples*a.params.TVProofGas + a.params.RLAFixedGas
	savingsGas := int64(fullGas) - int64(rlaGas)
	var savingsPct float64
	if fullGas > 0 {
		savingsPct = float64(savingsGas) / float64(fullGas) * 100
	}

	fullUSD := cost.GasToUSD(fullGas, a.params.GasPriceGwei, a.params.ETHPriceUSD)
	rlaUSD := cost.GasToUSD(rlaGas, a.params.GasPriceGwei, a.params.ETHPriceUSD)

	return &types.AnalysisResult{
		ID:            rec.ID,
		Voters:        rec.Voters,
		YesVotes:      yesVotes,
		NoVotes:       noVotes,
		Margin:        margin,
		MarginPct:     marginPct,
		ConsensusRate: rec.ConsensusRate,
		PMBatches:     pm.BatchCount,
		TVBatches:     tv.BatchCount,
		PMSamples:     samples.PMSamples,
		TVSamples:     samples.TVSamples,
		TotalBatches:  pm.BatchCount + tv.BatchCount,
		TotalSamples:  samples.PMSamples + samples.TVSamples,
		FullGas:       fullGas,
		RLAGas:        rlaGas,
		SavingsGas:    savingsGas,
		SavingsPct:    savingsPct,
		FullUSD:       fullUSD,
		RLAUSD:        rlaUSD,
		SavingsUSD:    fullUSD - rlaUSD,
		Meta:          rec.Meta,
	}
}

// AnalyzeAll analyzes every record using a bounded worker pool, preserving
// the input order. It returns early with the context error if the context
// is canceled before all records are dispatched.
func (a *Analyzer) AnalyzeAll(ctx context.Context, records []*types.DecisionRecord) ([]*types.AnalysisResult, error) {
	results := make([]*types.AnalysisResult, len(records))
	if len(records) == 0 {
		return results, nil
	}

	workers := min(runtime.NumCPU(), len(records))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.Analyze(records[i])
			}
		}()
	}

	for i := range records {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return results, nil
}
