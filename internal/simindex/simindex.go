// Package simindex provides an in-memory nearest-neighbor index over a
// fixed corpus of (text, payload) pairs.
//
// The corpus is embedded once at construction and never mutated, so an
// Index is safe for concurrent queries without locking. Ranking uses
// cosine similarity with ties broken by corpus insertion order.
package simindex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for index operations.
var (
	// ErrEmptyCorpus is returned when constructing an index over no entries.
	ErrEmptyCorpus = errors.New("similarity index requires a non-empty corpus")

	// ErrEmbeddingFailed indicates the embedding provider failed.
	ErrEmbeddingFailed = errors.New("failed to generate embeddings")

	// ErrDimensionMismatch indicates the provider returned vectors of
	// inconsistent dimensions.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Embedder generates vector embeddings from text.
//
// Implementations must be safe for concurrent use; the index issues one
// EmbedQuery call per query with no internal synchronization.
type Embedder interface {
	// EmbedDocuments generates embeddings for multiple texts, one per input.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery generates an embedding for a single query. Some models
	// encode queries differently from documents.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Entry is one corpus item: the text that gets embedded and the payload
// returned on a match.
type Entry[T any] struct {
	Text    string
	Payload T
}

// Match is a scored query result.
type Match[T any] struct {
	Payload T
	// Score is cosine similarity against the query, nominally in [-1,1]
	// but in practice in [0,1] for natural-language embeddings.
	Score float64
}

// Index holds the embedded corpus. Immutable after construction.
type Index[T any] struct {
	embedder  Embedder
	entries   []Entry[T]
	vectors   [][]float32
	norms     []float64
	dimension int
}

// New embeds every corpus entry in order and builds the index.
// Returns ErrEmptyCorpus for an empty corpus and ErrDimensionMismatch if
// the provider produces vectors of differing lengths.
func New[T any](ctx context.Context, embedder Embedder, entries []Entry[T]) (*Index[T], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	vectors, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(vectors) != len(entries) {
		return nil, fmt.Errorf("%w: got %d vectors for %d entries", ErrEmbeddingFailed, len(vectors), len(entries))
	}

	dimension := len(vectors[0])
	norms := make([]float64, len(vectors))
	for i, v := range vectors {
		if len(v) != dimension {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, expected %d", ErrDimensionMismatch, i, len(v), dimension)
		}
		norms[i] = norm(v)
	}

	return &Index[T]{
		embedder:  embedder,
		entries:   entries,
		vectors:   vectors,
		norms:     norms,
		dimension: dimension,
	}, nil
}

// Query returns up to topK matches ordered by descending cosine similarity.
// Equal scores keep corpus insertion order.
func (ix *Index[T]) Query(ctx context.Context, text string, topK int) ([]Match[T], error) {
	if topK <= 0 {
		topK = len(ix.entries)
	}

	queryVec, err := ix.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(queryVec) != ix.dimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, corpus has %d", ErrDimensionMismatch, len(queryVec), ix.dimension)
	}

	queryNorm := norm(queryVec)
	scores := make([]float64, len(ix.entries))
	order := make([]int, len(ix.entries))
	for i := range ix.entries {
		scores[i] = cosine(queryVec, queryNorm, ix.vectors[i], ix.norms[i])
		order[i] = i
	}

	// Stable sort keeps insertion order on ties.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topK > len(order) {
		topK = len(order)
	}
	matches := make([]Match[T], topK)
	for i := 0; i < topK; i++ {
		idx := order[i]
		matches[i] = Match[T]{Payload: ix.entries[idx].Payload, Score: scores[idx]}
	}
	return matches, nil
}

// BestMatch returns the top result when its score clears threshold,
// otherwise nil. The best score is always returned for diagnostics.
func (ix *Index[T]) BestMatch(ctx context.Context, text string, threshold float64) (*Match[T], float64, error) {
	matches, err := ix.Query(ctx, text, 1)
	if err != nil {
		return nil, 0, err
	}

	best := matches[0]
	if best.Score < threshold {
		return nil, best.Score, nil
	}
	return &best, best.Score, nil
}

// Len returns the number of corpus entries.
func (ix *Index[T]) Len() int {
	return len(ix.entries)
}

// Dimension returns the embedding dimension of the corpus.
func (ix *Index[T]) Dimension() int {
	return ix.dimension
}

// cosine computes cosine similarity given precomputed norms.
// Zero-norm vectors score 0 rather than NaN.
func cosine(a []float32, aNorm float64, b []float32, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
