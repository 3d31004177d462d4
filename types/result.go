package types

import (
	"encoding/json"
	"time"
)

// AnalysisResult is the per-dispute outcome of the cost analysis: the
// reconstructed vote split, both batch structures, the sample counts required
// to reach the target confidence, and the gas and USD figures of the full
// verification scheme against the sampled one. SavingsPct is always derived
// from the two gas totals.
type AnalysisResult struct {
	ID            string          `json:"dispute_id,omitempty" cbor:"0,keyasint,omitempty"`
	Voters        uint64          `json:"voters"               cbor:"1,keyasint,omitempty"`
	YesVotes      uint64          `json:"yes_votes"            cbor:"2,keyasint,omitempty"`
	NoVotes       uint64          `json:"no_votes"             cbor:"3,keyasint,omitempty"`
	Margin        uint64          `json:"margin"               cbor:"4,keyasint,omitempty"`
	MarginPct     float64         `json:"margin_pct"           cbor:"5,keyasint,omitempty"`
	ConsensusRate float64         `json:"consensus_rate"       cbor:"6,keyasint,omitempty"`
	PMBatches     uint64          `json:"pm_batches"           cbor:"7,keyasint,omitempty"`
	TVBatches     uint64          `json:"tv_batches"           cbor:"8,keyasint,omitempty"`
	PMSamples     uint64          `json:"pm_samples"           cbor:"9,keyasint,omitempty"`
	TVSamples     uint64          `json:"tv_samples"           cbor:"10,keyasint,omitempty"`
	TotalBatches  uint64          `json:"total_batches"        cbor:"11,keyasint,omitempty"`
	TotalSamples  uint64          `json:"total_samples"        cbor:"12,keyasint,omitempty"`
	FullGas       uint64          `json:"full_maci_gas"        cbor:"13,keyasint,omitempty"`
	RLAGas        uint64          `json:"macirla_gas"          cbor:"14,keyasint,omitempty"`
	SavingsGas    int64           `json:"savings_gas"          cbor:"15,keyasint,omitempty"`
	SavingsPct    float64         `json:"savings_pct"          cbor:"16,keyasint,omitempty"`
	FullUSD       float64         `json:"full_usd"             cbor:"17,keyasint,omitempty"`
	RLAUSD        float64         `json:"rla_usd"              cbor:"18,keyasint,omitempty"`
	SavingsUSD    float64         `json:"savings_usd"          cbor:"19,keyasint,omitempty"`
	Meta          GenericMetadata `json:"meta,omitempty"       cbor:"20,keyasint,omitempty"`
}

func (r *AnalysisResult) String() string {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(data)
}

// VoterStats aggregates the voter counts of a result set.
type VoterStats struct {
	Min    uint64  `json:"min"    cbor:"0,keyasint,omitempty"`
	Max    uint64  `json:"max"    cbor:"1,keyasint,omitempty"`
	Mean   float64 `json:"mean"   cbor:"2,keyasint,omitempty"`
	Median uint64  `json:"median" cbor:"3,keyasint,omitempty"`
}

// MetricStats aggregates one real-valued metric of a result set. Median is
// the upper median: the value at index floor(n/2) of the sorted values.
type MetricStats struct {
	Min    float64 `json:"min"    cbor:"0,keyasint,omitempty"`
	Max    float64 `json:"max"    cbor:"1,keyasint,omitempty"`
	Mean   float64 `json:"mean"   cbor:"2,keyasint,omitempty"`
	Median float64 `json:"median" cbor:"3,keyasint,omitempty"`
}

// SummaryStatistics is the reduction of a result set. AggregateSavingsPct is
// computed from gas totals, which differs from the mean of the per-dispute
// savings percentages.
type SummaryStatistics struct {
	Count               int         `json:"dispute_count"         cbor:"0,keyasint,omitempty"`
	Voters              VoterStats  `json:"voter_stats"           cbor:"1,keyasint,omitempty"`
	MarginPct           MetricStats `json:"margin_stats"          cbor:"2,keyasint,omitempty"`
	SavingsPct          MetricStats `json:"savings_stats"         cbor:"3,keyasint,omitempty"`
	TotalFullGas        uint64      `json:"total_full_gas"        cbor:"4,keyasint,omitempty"`
	TotalRLAGas         uint64      `json:"total_rla_gas"         cbor:"5,keyasint,omitempty"`
	TotalSavingsGas     int64       `json:"total_savings_gas"     cbor:"6,keyasint,omitempty"`
	AggregateSavingsPct float64     `json:"aggregate_savings_pct" cbor:"7,keyasint,omitempty"`
	TotalFullUSD        float64     `json:"total_full_usd"        cbor:"8,keyasint,omitempty"`
	TotalRLAUSD         float64     `json:"total_rla_usd"         cbor:"9,keyasint,omitempty"`
	TotalSavingsUSD     float64     `json:"total_savings_usd"     cbor:"10,keyasint,omitempty"`
}

// AnalysisRun is the complete output document of one analysis: parameters,
// per-dispute results, summary and metric distributions. Serializable as a
// single nested key-value document.
type AnalysisRun struct {
	ID                  string             `json:"id"                   cbor:"0,keyasint,omitempty"`
	Name                string             `json:"name,omitempty"       cbor:"1,keyasint,omitempty"`
	CreatedAt           time.Time          `json:"created_at"           cbor:"2,keyasint,omitempty"`
	Params              *AnalysisParams    `json:"parameters"           cbor:"3,keyasint,omitempty"`
	Results             []*AnalysisResult  `json:"disputes"             cbor:"4,keyasint,omitempty"`
	Summary             *SummaryStatistics `json:"summary"              cbor:"5,keyasint,omitempty"`
	MarginDistribution  Histogram          `json:"margin_distribution"  cbor:"6,keyasint,omitempty"`
	SavingsDistribution Histogram          `json:"savings_distribution" cbor:"7,keyasint,omitempty"`
}
