package dataset

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lendkraft/finassist/internal/logging"
	"github.com/lendkraft/finassist/internal/simindex"
)

// Match is a scored corpus hit.
type Match struct {
	Entry Entry
	Score float64
}

// Matcher answers queries verbatim from the curated corpus when the
// query's similarity to a known instruction clears the threshold.
// Immutable after construction, safe for concurrent queries.
type Matcher struct {
	index     *simindex.Index[Entry]
	threshold float64
	entries   []Entry
	logger    *logging.Logger
}

// NewMatcher embeds every corpus instruction and builds the matcher.
func NewMatcher(ctx context.Context, embedder simindex.Embedder, entries []Entry, threshold float64, logger *logging.Logger) (*Matcher, error) {
	corpus := make([]simindex.Entry[Entry], len(entries))
	for i, e := range entries {
		corpus[i] = simindex.Entry[Entry]{Text: e.Instruction, Payload: e}
	}

	index, err := simindex.New(ctx, embedder, corpus)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset matcher ready",
		zap.Int("samples", len(entries)),
		zap.Int("dimensions", index.Dimension()),
		zap.Float64("threshold", threshold),
	)

	return &Matcher{
		index:     index,
		threshold: threshold,
		entries:   entries,
		logger:    logger,
	}, nil
}

// FindMatch returns the best corpus entry when its similarity clears the
// threshold, otherwise nil. The best score is always returned so callers
// can explain why tier 1 did or did not fire.
func (m *Matcher) FindMatch(ctx context.Context, query string) (*Match, float64, error) {
	best, score, err := m.index.BestMatch(ctx, query, m.threshold)
	if err != nil {
		return nil, 0, err
	}
	if best == nil {
		m.logger.Debug("no dataset match above threshold",
			zap.Float64("best_score", score),
			zap.Float64("threshold", m.threshold),
		)
		return nil, score, nil
	}

	m.logger.Debug("dataset match found",
		zap.Float64("score", score),
		zap.String("instruction", best.Payload.Instruction),
	)
	return &Match{Entry: best.Payload, Score: score}, score, nil
}

// TopMatches returns up to k matches ordered by descending similarity,
// regardless of threshold. Diagnostic surface.
func (m *Matcher) TopMatches(ctx context.Context, query string, k int) ([]Match, error) {
	results, err := m.index.Query(ctx, query, k)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Entry: r.Payload, Score: r.Score}
	}
	return matches, nil
}

// Threshold returns the configured similarity threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Stats summarizes the loaded corpus.
type Stats struct {
	TotalSamples         int            `json:"total_samples"`
	Categories           map[string]int `json:"categories"`
	AvgInstructionLength float64        `json:"avg_instruction_length"`
	AvgOutputLength      float64        `json:"avg_output_length"`
	EmbeddingDimensions  int            `json:"embedding_dimensions"`
}

// categoryRule assigns instructions to a reporting bucket on keyword hit.
type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules is a priority list, not a classifier: an instruction lands
// in the first rule with a case-insensitive substring hit, else "other".
// Order is behaviorally significant for the stats output.
var categoryRules = []categoryRule{
	{name: "loan_eligibility", keywords: []string{"eligibility", "criteria", "qualify"}},
	{name: "application", keywords: []string{"application", "apply", "document"}},
	{name: "emi", keywords: []string{"emi", "payment", "installment"}},
	{name: "interest", keywords: []string{"interest", "rate", "p.a"}},
	{name: "account", keywords: []string{"account", "profile", "update"}},
	{name: "prepayment", keywords: []string{"prepay", "close", "early"}},
	{name: "transaction", keywords: []string{"transaction", "payment", "history"}},
	{name: "support", keywords: []string{"support", "help", "reset", "contact"}},
}

// Stats computes corpus statistics, including the keyword-rule category
// distribution used by dashboards.
func (m *Matcher) Stats() Stats {
	categories := make(map[string]int)
	var instructionLen, outputLen int

	for _, e := range m.entries {
		categories[categorize(e.Instruction)]++
		instructionLen += len(e.Instruction)
		outputLen += len(e.Output)
	}

	n := float64(len(m.entries))
	return Stats{
		TotalSamples:         len(m.entries),
		Categories:           categories,
		AvgInstructionLength: float64(instructionLen) / n,
		AvgOutputLength:      float64(outputLen) / n,
		EmbeddingDimensions:  m.index.Dimension(),
	}
}

func categorize(instruction string) string {
	lower := strings.ToLower(instruction)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name
			}
		}
	}
	return "other"
}
