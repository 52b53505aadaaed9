package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendkraft/finassist/internal/logging"
	"github.com/lendkraft/finassist/internal/simindex"
)

// fakeEmbedder maps known texts to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectors[t]
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return f.vectors[text], nil
}

var testEntries = []Entry{
	{Instruction: "What is the interest rate for a personal loan?", Output: "Personal loan rates start at 8.5% p.a. for excellent credit."},
	{Instruction: "How do I check my application status?", Output: "Log in to the portal and open My Applications."},
	{Instruction: "Can I prepay my loan early?", Output: "Yes. Prepayment after 6 months carries no charge."},
}

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	emb := &fakeEmbedder{vectors: map[string][]float32{
		testEntries[0].Instruction: {1, 0, 0},
		testEntries[1].Instruction: {0, 1, 0},
		testEntries[2].Instruction: {0, 0, 1},
		// Queries.
		"interest rate query": {0.95, 0.05, 0},
		"something unrelated": {0.4, 0.4, 0.4},
		"prepayment question": {0, 0.1, 0.99},
	}}
	m, err := NewMatcher(context.Background(), emb, testEntries, 0.75, logging.NewNop())
	require.NoError(t, err)
	return m
}

func TestNewMatcherEmptyCorpus(t *testing.T) {
	_, err := NewMatcher(context.Background(), &fakeEmbedder{}, nil, 0.75, logging.NewNop())
	assert.ErrorIs(t, err, simindex.ErrEmptyCorpus)
}

func TestFindMatchExactInstruction(t *testing.T) {
	m := newTestMatcher(t)

	match, score, err := m.FindMatch(context.Background(), testEntries[0].Instruction)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, testEntries[0].Output, match.Entry.Output)
}

func TestFindMatchAboveThreshold(t *testing.T) {
	m := newTestMatcher(t)

	match, score, err := m.FindMatch(context.Background(), "interest rate query")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.GreaterOrEqual(t, score, 0.75)
	assert.Equal(t, testEntries[0].Instruction, match.Entry.Instruction)
}

func TestFindMatchBelowThresholdReportsScore(t *testing.T) {
	m := newTestMatcher(t)

	match, score, err := m.FindMatch(context.Background(), "something unrelated")
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 0.75)
}

func TestTopMatches(t *testing.T) {
	m := newTestMatcher(t)

	matches, err := m.TopMatches(context.Background(), "prepayment question", 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, testEntries[2].Instruction, matches[0].Entry.Instruction)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestStats(t *testing.T) {
	m := newTestMatcher(t)

	stats := m.Stats()
	assert.Equal(t, len(testEntries), stats.TotalSamples)
	assert.Equal(t, 3, stats.EmbeddingDimensions)
	assert.Greater(t, stats.AvgInstructionLength, 0.0)
	assert.Greater(t, stats.AvgOutputLength, 0.0)

	total := 0
	for _, count := range stats.Categories {
		total += count
	}
	assert.Equal(t, len(testEntries), total)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		want        string
	}{
		{
			name:        "eligibility beats application",
			instruction: "What are the eligibility criteria to apply?",
			want:        "loan_eligibility",
		},
		{
			name:        "payment lands in emi before transaction",
			instruction: "What if I miss a payment?",
			want:        "emi",
		},
		{
			name:        "interest rate",
			instruction: "Current interest rate slabs",
			want:        "interest",
		},
		{
			name:        "prepayment keyword",
			instruction: "Rules for prepaying before tenure end",
			want:        "prepayment",
		},
		{
			name:        "support keywords",
			instruction: "How to reset my password",
			want:        "support",
		},
		{
			name:        "no keyword falls to other",
			instruction: "Tell me a general fact",
			want:        "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.instruction))
		})
	}
}
