package knowledge

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lendkraft/finassist/internal/logging"
	"github.com/lendkraft/finassist/internal/simindex"
)

// Retriever finds knowledge documents relevant to a query, for use as
// grounding context. Immutable after construction, safe for concurrent use.
type Retriever struct {
	index     *simindex.Index[Document]
	docs      []Document
	threshold float64
	topK      int
	logger    *logging.Logger
}

// NewRetriever embeds every document's content and builds the retriever.
// threshold and topK are the defaults used by Retrieve when callers pass
// zero values.
func NewRetriever(ctx context.Context, embedder simindex.Embedder, docs []Document, threshold float64, topK int, logger *logging.Logger) (*Retriever, error) {
	corpus := make([]simindex.Entry[Document], len(docs))
	for i, d := range docs {
		corpus[i] = simindex.Entry[Document]{Text: d.Content, Payload: d}
	}

	index, err := simindex.New(ctx, embedder, corpus)
	if err != nil {
		return nil, err
	}

	logger.Info("knowledge retriever ready",
		zap.Int("documents", len(docs)),
		zap.Int("dimensions", index.Dimension()),
		zap.Float64("threshold", threshold),
	)

	return &Retriever{
		index:     index,
		docs:      docs,
		threshold: threshold,
		topK:      topK,
		logger:    logger,
	}, nil
}

// Retrieve returns at most topK documents scoring at or above threshold,
// ordered by descending relevance. Zero topK/threshold use the configured
// defaults. An empty result is not an error; it means generation should
// proceed ungrounded.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int, threshold float64) ([]ScoredDocument, error) {
	if topK <= 0 {
		topK = r.topK
	}
	if threshold <= 0 {
		threshold = r.threshold
	}

	matches, err := r.index.Query(ctx, query, topK)
	if err != nil {
		return nil, err
	}

	docs := make([]ScoredDocument, 0, len(matches))
	for _, m := range matches {
		if m.Score < threshold {
			continue
		}
		docs = append(docs, ScoredDocument{Document: m.Payload, RelevanceScore: m.Score})
		r.logger.Debug("retrieved knowledge document",
			zap.String("id", m.Payload.ID),
			zap.Float64("score", m.Score),
		)
	}
	return docs, nil
}

// SearchByCategory returns documents whose category matches exactly,
// case-insensitively, in corpus insertion order.
func (r *Retriever) SearchByCategory(category string) []Document {
	var out []Document
	for _, d := range r.docs {
		if strings.EqualFold(d.Category, category) {
			out = append(out, d)
		}
	}
	return out
}

// Stats summarizes the knowledge corpus.
type Stats struct {
	TotalDocuments      int            `json:"total_documents"`
	Categories          map[string]int `json:"categories"`
	EmbeddingDimensions int            `json:"embedding_dimensions"`
}

// Stats computes corpus statistics for dashboards.
func (r *Retriever) Stats() Stats {
	categories := make(map[string]int)
	for _, d := range r.docs {
		categories[d.Category]++
	}
	return Stats{
		TotalDocuments:      len(r.docs),
		Categories:          categories,
		EmbeddingDimensions: r.index.Dimension(),
	}
}
