package api

import "github.com/vocdoni/macirla-analysis/types"

// AnalysisRequest is the body of POST /analyses and POST /analyses/sync.
// Params, when present, overrides the server defaults for this dataset only.
type AnalysisRequest struct {
	Name    string                  `json:"name,omitempty"`
	Records []*types.DecisionRecord `json:"records"`
	Params  *types.AnalysisParams   `json:"params,omitempty"`
}

// AnalysisAccepted is the response of POST /analyses. The analysis run will
// be retrievable under the returned ID once the queue drains.
type AnalysisAccepted struct {
	AnalysisID string `json:"analysisId"`
}

// AnalysisList is the response of GET /analyses.
type AnalysisList struct {
	Analyses []string `json:"analyses"`
}
