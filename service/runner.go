package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vocdoni/macirla-analysis/analyzer"
	"github.com/vocdoni/macirla-analysis/log"
	"github.com/vocdoni/macirla-analysis/storage"
)

// RunnerService drains the dataset queue in the background, analyzing
// each queued dataset and storing the resulting run document.
type RunnerService struct {
	stg      *storage.Storage
	interval time.Duration
	mu       sync.Mutex
	cancel   context.CancelFunc
}

// NewRunner creates a new RunnerService instance. The interval controls
// how often the queue is polled when it is empty.
func NewRunner(stg *storage.Storage, interval time.Duration) *RunnerService {
	if interval <= 0 {
		interval = time.Second
	}
	return &RunnerService{
		stg:      stg,
		interval: interval,
	}
}

// Start begins the background runner. It returns an error if the service
// is already running.
func (rs *RunnerService) Start(ctx context.Context) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.cancel != nil {
		return fmt.Errorf("runner service already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	rs.cancel = cancel

	ticker := time.NewTicker(rs.interval)
	go func() {
		defer ticker.Stop()
		for {
			// Try to fetch the next queued dataset.
			ds, key, err := rs.stg.NextDataset()
			if err != nil {
				// Log errors other than "no work".
				if err != storage.ErrNoMoreElements {
					log.Errorw(err, "failed to get next dataset")
				} else {
					// If no dataset is available, wait for the next tick
					// or context cancellation.
					select {
					case <-ticker.C:
					case <-ctx.Done():
						return
					}
				}
				continue
			}

			log.Debugw("new dataset to analyze", "dataset", ds.ID, "records", len(ds.Records))
			startTime := time.Now()

			if err := rs.processDataset(ctx, ds, key); err != nil {
				if ctx.Err() != nil {
					// Shutting down, return the dataset to the queue.
					if rerr := rs.stg.ReleaseDataset(key); rerr != nil {
						log.Errorw(rerr, "failed to release dataset")
					}
					return
				}
				log.Warnw("discarding dataset", "dataset", ds.ID, "error", err.Error())
				if rerr := rs.stg.ReleaseDataset(key); rerr != nil {
					log.Errorw(rerr, "failed to release dataset")
				}
				continue
			}

			log.Debugw("dataset analyzed", "dataset", ds.ID, "took", time.Since(startTime).String())
		}
	}()
	return nil
}

// processDataset analyzes a dataset and stores the resulting run under
// the identifier assigned when the dataset was enqueued.
func (rs *RunnerService) processDataset(ctx context.Context, ds *storage.Dataset, key []byte) error {
	an, err := analyzer.New(ds.Params)
	if err != nil {
		return fmt.Errorf("invalid analysis parameters: %w", err)
	}
	run, err := an.Run(ctx, ds.Name, ds.Records)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	// Clients look up the run by the identifier they got at enqueue time.
	run.ID = ds.ID
	if err := rs.stg.MarkDatasetDone(key, run); err != nil {
		return fmt.Errorf("failed to mark dataset done: %w", err)
	}
	return nil
}

// Stop halts the background runner.
func (rs *RunnerService) Stop() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.cancel == nil {
		return
	}
	rs.cancel()
	rs.cancel = nil
}
