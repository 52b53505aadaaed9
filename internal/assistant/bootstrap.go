package assistant

import (
	"context"
	"fmt"

	"github.com/lendkraft/finassist/internal/config"
	"github.com/lendkraft/finassist/internal/dataset"
	"github.com/lendkraft/finassist/internal/embeddings"
	"github.com/lendkraft/finassist/internal/generate"
	"github.com/lendkraft/finassist/internal/guardrails"
	"github.com/lendkraft/finassist/internal/knowledge"
	"github.com/lendkraft/finassist/internal/logging"
)

// Build constructs the full pipeline from configuration: embedding
// provider, corpora, matcher, retriever, generator and router.
//
// Construction is fail-fast: a missing dataset, an empty corpus or an
// unreachable embedding provider aborts startup. The returned router is
// immutable and safe for concurrent queries for the process lifetime.
func Build(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Router, error) {
	embedder, err := embeddings.NewService(embeddings.Config{
		BaseURL: cfg.Embeddings.BaseURL,
		Model:   cfg.Embeddings.Model,
		APIKey:  cfg.Embeddings.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("building embedding service: %w", err)
	}

	entries, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	matcher, err := dataset.NewMatcher(ctx, embedder, entries, cfg.Dataset.SimilarityThreshold, logger.Named("matcher"))
	if err != nil {
		return nil, fmt.Errorf("building dataset matcher: %w", err)
	}

	docs, err := knowledge.Ensure(cfg.Knowledge.Dir)
	if err != nil {
		return nil, fmt.Errorf("preparing knowledge base: %w", err)
	}

	retriever, err := knowledge.NewRetriever(ctx, embedder, docs, cfg.Knowledge.RelevanceThreshold, cfg.Knowledge.TopK, logger.Named("retriever"))
	if err != nil {
		return nil, fmt.Errorf("building knowledge retriever: %w", err)
	}

	generator, err := generate.NewService(generate.Config{
		BaseURL:           cfg.Generation.BaseURL,
		Model:             cfg.Generation.Model,
		APIKey:            cfg.Generation.APIKey,
		RequestsPerSecond: cfg.Generation.RequestsPerSecond,
		Burst:             cfg.Generation.Burst,
	}, logger.Named("generator"))
	if err != nil {
		return nil, fmt.Errorf("building generation service: %w", err)
	}

	guard := guardrails.New(guardrails.Config{
		MinQueryLength: cfg.Safety.MinQueryLength,
		DenyList:       cfg.Safety.DenyList,
	})

	return NewRouter(guard, matcher, retriever, generator, cfg.Safety.MaxResponseLength, logger.Named("router")), nil
}
