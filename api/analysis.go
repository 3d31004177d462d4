package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vocdoni/macirla-analysis/analyzer"
	"github.com/vocdoni/macirla-analysis/log"
	stg "github.com/vocdoni/macirla-analysis/storage"
)

// enqueueAnalysis queues a dataset for analysis
// POST /analyses
func (a *API) enqueueAnalysis(w http.ResponseWriter, r *http.Request) {
	req := &AnalysisRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	if len(req.Records) == 0 {
		ErrEmptyDataset.Write(w)
		return
	}

	ds := &stg.Dataset{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Records: req.Records,
		Params:  req.Params,
	}
	if _, err := a.storage.PushDataset(ds); err != nil {
		ErrGenericInternalServerError.Withf("could not enqueue dataset: %v", err).Write(w)
		return
	}

	log.Infow("dataset enqueued", "analysisId", ds.ID, "name", ds.Name, "records", len(ds.Records))
	httpWriteJSON(w, &AnalysisAccepted{AnalysisID: ds.ID})
}

// analysis returns one completed analysis run
// GET /analyses/{analysisId}
func (a *API) analysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, AnalysisURLParam)
	if id == "" {
		ErrMalformedAnalysisID.Write(w)
		return
	}
	run, err := a.storage.Run(id)
	if err != nil {
		if errors.Is(err, stg.ErrNotFound) {
			ErrAnalysisNotFound.Write(w)
			return
		}
		ErrGenericInternalServerError.Withf("could not retrieve analysis: %v", err).Write(w)
		return
	}
	httpWriteJSON(w, run)
}

// analysisList returns the IDs of every completed analysis run
// GET /analyses
func (a *API) analysisList(w http.ResponseWriter, r *http.Request) {
	ids, err := a.storage.ListRuns()
	if err != nil {
		ErrGenericInternalServerError.Withf("could not list analyses: %v", err).Write(w)
		return
	}
	httpWriteJSON(w, &AnalysisList{Analyses: ids})
}

// syncAnalysis runs the analysis inline, stores the run and returns it
// POST /analyses/sync
func (a *API) syncAnalysis(w http.ResponseWriter, r *http.Request) {
	req := &AnalysisRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	if len(req.Records) == 0 {
		ErrEmptyDataset.Write(w)
		return
	}

	params := req.Params
	if params == nil {
		params = a.params
	}
	an, err := analyzer.New(params)
	if err != nil {
		ErrInvalidParams.WithErr(err).Write(w)
		return
	}
	run, err := an.Run(r.Context(), req.Name, req.Records)
	if err != nil {
		ErrGenericInternalServerError.Withf("analysis failed: %v", err).Write(w)
		return
	}
	if err := a.storage.SetRun(run); err != nil {
		ErrGenericInternalServerError.Withf("could not store analysis run: %v", err).Write(w)
		return
	}

	log.Infow("analysis completed", "analysisId", run.ID,
		"disputes", run.Summary.Count, "aggregateSavingsPct", run.Summary.AggregateSavingsPct)
	httpWriteJSON(w, run)
}
