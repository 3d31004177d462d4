package api

const (
	// PingEndpoint is the endpoint for checking the API status
	PingEndpoint = "/ping"
	// AnalysesEndpoint is the endpoint for enqueueing a dataset and for
	// listing completed analysis runs
	AnalysesEndpoint = "/analyses"
	// AnalysisURLParam is the URL parameter carrying the analysis run ID
	AnalysisURLParam = "analysisId"
	// AnalysisEndpoint is the endpoint to get one analysis run
	AnalysisEndpoint = "/analyses/{" + AnalysisURLParam + "}"
	// SyncAnalysisEndpoint runs the analysis inline and returns the full
	// run document in the response
	SyncAnalysisEndpoint = "/analyses/sync"
)
