// Package aggregator reduces collections of analysis results into summary
// statistics and bucketed distributions.
package aggregator

import (
	"sort"

	"github.com/vocdoni/macirla-analysis/cost"
	"github.com/vocdoni/macirla-analysis/types"
)

// FieldSelector extracts one numeric metric from an analysis result.
type FieldSelector func(*types.AnalysisResult) float64

var (
	// Voters selects the voter count.
	Voters FieldSelector = func(r *types.AnalysisResult) float64 { return float64(r.Voters) }
	// MarginPct selects the margin percentage.
	MarginPct FieldSelector = func(r *types.AnalysisResult) float64 { return r.MarginPct }
	// SavingsPct selects the savings percentage.
	SavingsPct FieldSelector = func(r *types.AnalysisResult) float64 { return r.SavingsPct }
)

// Summarize reduces a result set into summary statistics. The aggregate
// savings percentage comes from the gas totals, not from averaging the
// per-dispute percentages. An empty set yields the zero value.
func Summarize(results []*types.AnalysisResult, params *types.AnalysisParams) *types.SummaryStatistics {
	s := &types.SummaryStatistics{}
	if len(results) == 0 {
		return s
	}
	if params == nil {
		params = types.DefaultAnalysisParams()
	}

	voters := make([]uint64, len(results))
	margins := make([]float64, len(results))
	savings := make([]float64, len(results))
	for i, r := range results {
		voters[i] = r.Voters
		margins[i] = r.MarginPct
		savings[i] = r.SavingsPct
		s.TotalFullGas += r.FullGas
		s.TotalRLAGas += r.RLAGas
	}

	s.Count = len(results)
	s.Voters = voterStats(voters)
	s.MarginPct = metricStats(margins)
	s.SavingsPct = metricStats(savings)
	s.TotalSavingsGas = int64(s.TotalFullGas) - int64(s.TotalRLAGas)
	if s.TotalFullGas > 0 {
		s.AggregateSavingsPct = float64(s.TotalSavingsGas) / float64(s.TotalFullGas) * 100
	}
	s.TotalFullUSD = cost.GasToUSD(s.TotalFullGas, params.GasPriceGwei, params.ETHPriceUSD)
	s.TotalRLAUSD = cost.GasToUSD(s.TotalRLAGas, params.GasPriceGwei, params.ETHPriceUSD)
	s.TotalSavingsUSD = s.TotalFullUSD - s.TotalRLAUSD
	return s
}

func voterStats(values []uint64) types.VoterStats {
	sorted := append([]uint64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var sum uint64
	for _, v := range values {
		sum += v
	}
	return types.VoterStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   float64(sum) / float64(len(values)),
		Median: sorted[len(sorted)/2],
	}
}

func metricStats(values []float64) types.MetricStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var sum float64
	for _, v := range values {
		sum += v
	}
	return types.MetricStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(values)),
		Median: sorted[len(sorted)/2],
	}
}

// BuildHistogram counts the records whose metric falls in each half-open
// bucket. Records outside every bucket are not counted; every bucket label
// is present in the result even when its count is zero.
func BuildHistogram(results []*types.AnalysisResult, field FieldSelector, buckets []types.Bucket) types.Histogram {
	h := make(types.Histogram, len(buckets))
	for _, b := range buckets {
		count := 0
		for _, r := range results {
			if b.Contains(field(r)) {
				count++
			}
		}
		h[b.Label()] = count
	}
	return h
}

// DefaultMarginBuckets returns the margin percentage distribution buckets
// used by the reference reports.
func DefaultMarginBuckets() []types.Bucket {
	return []types.Bucket{
		{Lo: 0, Hi: 10}, {Lo: 10, Hi: 30}, {Lo: 30, Hi: 50},
		{Lo: 50, Hi: 70}, {Lo: 70, Hi: 90}, {Lo: 90, Hi: 101},
	}
}

// DefaultSavingsBuckets returns the savings percentage distribution buckets
// used by the reference reports.
func DefaultSavingsBuckets() []types.Bucket {
	return []types.Bucket{
		{Lo: 0, Hi: 20}, {Lo: 20, Hi: 40}, {Lo: 40, Hi: 60},
		{Lo: 60, Hi: 80}, {Lo: 80, Hi: 100}, {Lo: 100, Hi: 101},
	}
}
