package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vocdoni/macirla-analysis/api"
	"github.com/vocdoni/macirla-analysis/log"
	"github.com/vocdoni/macirla-analysis/storage"
	"github.com/vocdoni/macirla-analysis/types"
)

// APIService represents a service that manages the HTTP API server.
type APIService struct {
	storage *storage.Storage
	api     *api.API
	mu      sync.Mutex
	cancel  context.CancelFunc
	host    string
	port    int
	params  *types.AnalysisParams
}

// NewAPI creates a new APIService instance. If params is nil the default
// analysis parameters are used for synchronous requests.
func NewAPI(storage *storage.Storage, host string, port int, params *types.AnalysisParams) *APIService {
	return &APIService{
		storage: storage,
		host:    host,
		port:    port,
		params:  params,
	}
}

// Start begins the API server. It returns an error if the service
// is already running or if it fails to start.
func (as *APIService) Start(ctx context.Context) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.cancel != nil {
		return fmt.Errorf("service already running")
	}

	_, as.cancel = context.WithCancel(ctx)

	// Create API instance with existing storage
	var err error
	as.api, err = api.New(&api.APIConfig{
		Host:    as.host,
		Port:    as.port,
		Storage: as.storage,
		Params:  as.params,
	})
	if err != nil {
		as.cancel = nil
		return fmt.Errorf("failed to start API server: %w", err)
	}

	return nil
}

// Stop halts the API server, waiting for in-flight requests to finish.
func (as *APIService) Stop() {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.cancel != nil {
		as.cancel()
		as.cancel = nil
	}
	if as.api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := as.api.Shutdown(ctx); err != nil {
			log.Warnw("failed to shut down API server", "error", err)
		}
		as.api = nil
	}
	as.storage.Close()
}

// HostPort returns the host and port of the API server.
func (as *APIService) HostPort() (string, int) {
	return as.host, as.port
}
