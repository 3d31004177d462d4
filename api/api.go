package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vocdoni/macirla-analysis/log"
	stg "github.com/vocdoni/macirla-analysis/storage"
	"github.com/vocdoni/macirla-analysis/types"
)

// APIConfig type represents the configuration for the API HTTP server.
// It includes the host, port, the storage instance and the default analysis
// parameters used when a request does not supply its own.
type APIConfig struct {
	Host    string
	Port    int
	Storage *stg.Storage
	Params  *types.AnalysisParams
}

// API type represents the analysis API HTTP server.
type API struct {
	router  *chi.Mux
	storage *stg.Storage
	params  *types.AnalysisParams
	srv     *http.Server
	addr    net.Addr
}

// New creates a new API instance with the given configuration and starts the
// HTTP server.
func New(conf *APIConfig) (*API, error) {
	if conf == nil {
		return nil, fmt.Errorf("missing API configuration")
	}
	if conf.Storage == nil {
		return nil, fmt.Errorf("missing storage instance")
	}
	a := &API{
		storage: conf.Storage,
		params:  conf.Params,
	}
	if a.params == nil {
		a.params = types.DefaultAnalysisParams()
	}

	a.initRouter()
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", conf.Host, conf.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s:%d: %w", conf.Host, conf.Port, err)
	}
	a.addr = ln.Addr()
	a.srv = &http.Server{Handler: a.router}
	go func() {
		log.Infow("starting API server", "address", a.addr.String())
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
	return a, nil
}

// Router returns the chi router for testing purposes
func (a *API) Router() *chi.Mux {
	return a.router
}

// Addr returns the address the server is listening on.
func (a *API) Addr() string {
	return a.addr.String()
}

// Shutdown gracefully stops the HTTP server, closing the listener and
// waiting for in-flight requests up to the context deadline.
func (a *API) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// registerHandlers registers all the API handlers.
func (a *API) registerHandlers() {
	log.Infow("register handler", "endpoint", PingEndpoint, "method", "GET")
	a.router.Get(PingEndpoint, func(w http.ResponseWriter, r *http.Request) {
		httpWriteOK(w)
	})
	log.Infow("register handler", "endpoint", AnalysesEndpoint, "method", "POST")
	a.router.Post(AnalysesEndpoint, a.enqueueAnalysis)
	log.Infow("register handler", "endpoint", AnalysesEndpoint, "method", "GET")
	a.router.Get(AnalysesEndpoint, a.analysisList)
	log.Infow("register handler", "endpoint", AnalysisEndpoint, "method", "GET")
	a.router.Get(AnalysisEndpoint, a.analysis)
	log.Infow("register handler", "endpoint", SyncAnalysisEndpoint, "method", "POST")
	a.router.Post(SyncAnalysisEndpoint, a.syncAnalysis)
	a.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		ErrResourceNotFound.Write(w)
	})
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() {
	a.router = chi.NewRouter()
	a.router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Throttle(100))
	a.router.Use(middleware.ThrottleBacklog(5000, 40000, 60*time.Second))
	a.router.Use(middleware.Timeout(45 * time.Second))
	a.registerHandlers()
}
