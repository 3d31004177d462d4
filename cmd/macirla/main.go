package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/vocdoni/macirla-analysis/analyzer"
	"github.com/vocdoni/macirla-analysis/loader"
	"github.com/vocdoni/macirla-analysis/log"
	"github.com/vocdoni/macirla-analysis/service"
	"github.com/vocdoni/macirla-analysis/storage"
	"github.com/vocdoni/macirla-analysis/types"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
)

func main() {
	records := flag.String("records", "", "JSON file with decision records (default: built-in parameter grid)")
	name := flag.String("name", "", "name of the analysis run")
	out := flag.String("out", "", "write the run document to this file instead of stdout")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of a one-shot analysis")
	host := flag.String("host", "0.0.0.0", "API server host")
	port := flag.Int("port", 8080, "API server port")
	dataDir := flag.String("dataDir", filepath.Join(os.TempDir(), "macirla"), "data directory for the API server database")
	logLevel := flag.String("logLevel", "info", "log level (debug, info, warn, error)")

	confidence := flag.Uint64("confidence", types.DefaultConfidenceX1000, "confidence constant, scaled by 1000")
	pmBatchSize := flag.Uint64("pmBatchSize", types.DefaultPMBatchSize, "messages per processing batch")
	tvBatchSize := flag.Uint64("tvBatchSize", types.DefaultTVBatchSize, "leaves per tally batch")
	pmProofGas := flag.Uint64("pmProofGas", types.DefaultPMProofGas, "gas per processing proof verification")
	tvProofGas := flag.Uint64("tvProofGas", types.DefaultTVProofGas, "gas per tally proof verification")
	fullFixedGas := flag.Uint64("fullFixedGas", types.DefaultFullFixedGas, "fixed gas of the full pipeline")
	rlaFixedGas := flag.Uint64("rlaFixedGas", types.DefaultRLAFixedGas, "fixed gas of the sampled pipeline")
	gasPrice := flag.Float64("gasPrice", types.DefaultGasPriceGwei, "gas price in gwei")
	ethPrice := flag.Float64("ethPrice", types.DefaultETHPriceUSD, "ETH price in USD")

	flag.Parse()
	log.Init(*logLevel, "stdout", nil)

	params := &types.AnalysisParams{
		ConfidenceX1000: *confidence,
		PMBatchSize:     *pmBatchSize,
		TVBatchSize:     *tvBatchSize,
		PMProofGas:      *pmProofGas,
		TVProofGas:      *tvProofGas,
		FullFixedGas:    *fullFixedGas,
		RLAFixedGas:     *rlaFixedGas,
		GasPriceGwei:    *gasPrice,
		ETHPriceUSD:     *ethPrice,
	}

	if *serve {
		runServer(*dataDir, *host, *port, params)
		return
	}

	var src loader.Loader
	if *records != "" {
		src = &loader.JSONLoader{Path: *records, SkipZeroVoters: true}
	} else {
		src = loader.DefaultGrid()
	}
	recs, err := src.Load()
	if err != nil {
		log.Fatalf("failed to load records: %v", err)
	}

	an, err := analyzer.New(params)
	if err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}
	run, err := an.Run(context.Background(), *name, recs)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	log.Infow("analysis complete",
		"disputes", run.Summary.Count,
		"fullGas", run.Summary.TotalFullGas,
		"rlaGas", run.Summary.TotalRLAGas,
		"savingsPct", fmt.Sprintf("%.2f", run.Summary.AggregateSavingsPct),
		"savingsUSD", fmt.Sprintf("%.2f", run.Summary.TotalSavingsUSD))

	if *out != "" {
		if err := writeToFile(*out, run); err != nil {
			log.Fatalf("failed to write run document: %v", err)
		}
		log.Infow("run document written", "path", *out)
		return
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(run); err != nil {
		log.Fatalf("failed to encode run document: %v", err)
	}
}

// runServer starts the API and the background runner on a persistent
// database, blocking until an interrupt or termination signal.
func runServer(dataDir, host string, port int, params *types.AnalysisParams) {
	database, err := metadb.New(db.TypePebble, filepath.Join(dataDir, "db"))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	store := storage.New(database)

	ctx := context.Background()

	apiService := service.NewAPI(store, host, port, params)
	if err := apiService.Start(ctx); err != nil {
		log.Fatalf("failed to start API service: %v", err)
	}

	runner := service.NewRunner(store, time.Second)
	if err := runner.Start(ctx); err != nil {
		log.Fatalf("failed to start runner service: %v", err)
	}
	log.Infow("services started", "host", host, "port", port, "dataDir", dataDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info("shutting down")
	runner.Stop()
	apiService.Stop()
}

func writeToFile(filename string, data any) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}

	return nil
}
