package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/arbo/memdb"
	stg "github.com/vocdoni/macirla-analysis/storage"
	"github.com/vocdoni/macirla-analysis/types"
)

func newTestServer(t *testing.T) (*API, *httptest.Server) {
	t.Helper()
	store := stg.New(memdb.New())
	t.Cleanup(store.Close)

	a, err := New(&APIConfig{Host: "127.0.0.1", Port: 0, Storage: store})
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return a, srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestPing(t *testing.T) {
	c := qt.New(t)
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + PingEndpoint)
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
}

func TestSyncAnalysis(t *testing.T) {
	c := qt.New(t)
	_, srv := newTestServer(t)

	req := &AnalysisRequest{
		Name: "testset",
		Records: []*types.DecisionRecord{
			{ID: "d1", Voters: 1000, ConsensusRate: 0.9},
		},
	}
	resp := postJSON(t, srv.URL+SyncAnalysisEndpoint, req)
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	var run types.AnalysisRun
	c.Assert(json.NewDecoder(resp.Body).Decode(&run), qt.IsNil)
	c.Assert(run.ID, qt.Not(qt.Equals), "")
	c.Assert(run.Summary.Count, qt.Equals, 1)
	c.Assert(run.Results[0].PMSamples, qt.Equals, uint64(8))
	c.Assert(run.Results[0].TVSamples, qt.Equals, uint64(8))

	// The stored run is retrievable and listed.
	getResp, err := http.Get(srv.URL + AnalysesEndpoint + "/" + run.ID)
	c.Assert(err, qt.IsNil)
	defer getResp.Body.Close()
	c.Assert(getResp.StatusCode, qt.Equals, http.StatusOK)

	listResp, err := http.Get(srv.URL + AnalysesEndpoint)
	c.Assert(err, qt.IsNil)
	defer listResp.Body.Close()
	var list AnalysisList
	c.Assert(json.NewDecoder(listResp.Body).Decode(&list), qt.IsNil)
	c.Assert(list.Analyses, qt.DeepEquals, []string{run.ID})
}

func TestEnqueueAnalysis(t *testing.T) {
	c := qt.New(t)
	a, srv := newTestServer(t)

	req := &AnalysisRequest{
		Records: []*types.DecisionRecord{
			{ID: "d1", Voters: 50, ConsensusRate: 0.8},
		},
	}
	resp := postJSON(t, srv.URL+AnalysesEndpoint, req)
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	var accepted AnalysisAccepted
	c.Assert(json.NewDecoder(resp.Body).Decode(&accepted), qt.IsNil)
	c.Assert(accepted.AnalysisID, qt.Not(qt.Equals), "")

	// Not analyzed yet: the run does not exist until a runner drains the queue.
	getResp, err := http.Get(srv.URL + AnalysesEndpoint + "/" + accepted.AnalysisID)
	c.Assert(err, qt.IsNil)
	defer getResp.Body.Close()
	c.Assert(getResp.StatusCode, qt.Equals, http.StatusNotFound)

	// The dataset is waiting in the queue.
	ds, _, err := a.storage.NextDataset()
	c.Assert(err, qt.IsNil)
	c.Assert(ds.ID, qt.Equals, accepted.AnalysisID)
}

func TestUnknownRoute(t *testing.T) {
	c := qt.New(t)
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/nope")
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusNotFound)

	var apiErr struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	c.Assert(json.NewDecoder(resp.Body).Decode(&apiErr), qt.IsNil)
	c.Assert(apiErr.Code, qt.Equals, ErrResourceNotFound.Code)
}

func TestEnqueueAnalysisEmpty(t *testing.T) {
	c := qt.New(t)
	_, srv := newTestServer(t)

	resp := postJSON(t, srv.URL+AnalysesEndpoint, &AnalysisRequest{})
	defer resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
}

func TestShutdown(t *testing.T) {
	c := qt.New(t)
	store := stg.New(memdb.New())
	t.Cleanup(store.Close)

	a, err := New(&APIConfig{Host: "127.0.0.1", Port: 0, Storage: store})
	c.Assert(err, qt.IsNil)

	resp, err := http.Get("http://" + a.Addr() + PingEndpoint)
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.Assert(a.Shutdown(ctx), qt.IsNil)

	// The listener is closed, new connections must fail.
	_, err = http.Get("http://" + a.Addr() + PingEndpoint)
	c.Assert(err, qt.IsNotNil)
}
