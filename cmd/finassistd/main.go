// Finassistd is the LendKraft financial assistant daemon.
//
// It answers banking and loan questions through a tiered pipeline:
// curated dataset lookup first, knowledge-base grounded generation
// second, plain model generation last. Every tier is guarded by the
// same safety checks and every answer carries the tier that produced
// it.
//
// Usage:
//
//	# Start with defaults (config.yaml in the working directory, if present)
//	finassistd
//
//	# Explicit config file
//	finassistd -config /etc/finassist/config.yaml
//
//	# Configure via environment
//	FINASSIST_SERVER_PORT=9000 finassistd
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lendkraft/finassist/internal/assistant"
	"github.com/lendkraft/finassist/internal/config"
	"github.com/lendkraft/finassist/internal/httpapi"
	"github.com/lendkraft/finassist/internal/logging"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  finassistd           Start the assistant daemon\n")
			fmt.Fprintf(os.Stderr, "  finassistd version   Show version information\n")
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "finassistd: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("finassistd by LendKraft\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run wires the pipeline and blocks until the context is cancelled.
//
//  1. Loads and validates configuration
//  2. Initializes the logger
//  3. Builds the pipeline (embeddings, corpora, matcher, retriever, generator)
//  4. Starts the HTTP server
//  5. Performs graceful shutdown on context cancellation
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting finassistd",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.String("dataset", cfg.Dataset.Path),
		zap.String("knowledge_dir", cfg.Knowledge.Dir))

	router, err := assistant.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	info := router.GetAssistantInfo()
	logger.Info("pipeline ready",
		zap.Int("dataset_samples", info.DatasetStats.TotalSamples),
		zap.Int("knowledge_documents", info.RAGStats.TotalDocuments))

	srv, err := httpapi.NewServer(router, logger.Named("http"), httpapi.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return fmt.Errorf("creating http server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
