// Package guardrails enforces input and output safety policy.
//
// The input check rejects queries that are too short to be meaningful or
// that contain deny-listed vocabulary. The output side truncates oversized
// responses and appends the regulatory disclaimer to generated answers.
// All methods are pure; the struct only carries policy configuration.
package guardrails

import (
	"fmt"
	"strings"
)

// Tier identifies which response strategy produced an answer. Compliance
// policy keys off the tier: curated dataset answers are already reviewed,
// generated answers are not.
type Tier string

const (
	// TierDatasetMatch is a verbatim answer from the curated corpus.
	TierDatasetMatch Tier = "dataset_match"
	// TierRAGRetrieval is a generated answer grounded in retrieved documents.
	TierRAGRetrieval Tier = "rag_retrieval"
	// TierSLMGeneration is an ungrounded generated answer.
	TierSLMGeneration Tier = "slm_generation"
	// TierError marks a failure envelope.
	TierError Tier = "error"
)

// Generative reports whether the tier's answer came out of a language
// model rather than the curated corpus.
func (t Tier) Generative() bool {
	return t == TierRAGRetrieval || t == TierSLMGeneration
}

// Disclaimer is appended to every generative answer. The leading marker
// doubles as the idempotency check in AddComplianceDisclaimer.
const Disclaimer = "\n\nNote: This is general information, not financial advice. " +
	"Rates, charges and eligibility are subject to assessment and may change per RBI guidelines. " +
	"Please verify details with a customer support executive before acting."

// ellipsis marks a truncated response.
const ellipsis = "..."

// Config holds guardrail policy. Values come from configuration, not code.
type Config struct {
	// MinQueryLength is the minimum meaningful query size in characters.
	MinQueryLength int
	// DenyList terms reject a query on case-insensitive substring match.
	DenyList []string
}

// Guardrails applies safety policy to queries and responses.
type Guardrails struct {
	minQueryLength int
	denyList       []string
}

// New creates Guardrails from policy config. Deny-list terms are
// lowercased once here so per-query checks only lowercase the query.
func New(cfg Config) *Guardrails {
	terms := make([]string, 0, len(cfg.DenyList))
	for _, t := range cfg.DenyList {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return &Guardrails{
		minQueryLength: cfg.MinQueryLength,
		denyList:       terms,
	}
}

// CheckSafety validates a query against input policy. It returns false and
// the first violated rule's reason, or true and an empty reason.
func (g *Guardrails) CheckSafety(query string) (bool, string) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < g.minQueryLength {
		return false, fmt.Sprintf("query too short: please provide at least %d characters", g.minQueryLength)
	}

	lower := strings.ToLower(trimmed)
	for _, term := range g.denyList {
		if strings.Contains(lower, term) {
			return false, fmt.Sprintf("query contains restricted term %q and cannot be processed", term)
		}
	}

	return true, ""
}

// SanitizeResponse truncates text to maxLength characters, appending an
// ellipsis marker when truncation happened. Unmodified text passes through.
func (g *Guardrails) SanitizeResponse(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + ellipsis
}

// AddComplianceDisclaimer appends the regulatory disclaimer to generative
// answers. Curated and error responses are returned unchanged. Idempotent:
// a response already carrying the disclaimer is not modified again.
func (g *Guardrails) AddComplianceDisclaimer(text string, tier Tier) string {
	if !tier.Generative() {
		return text
	}
	if strings.HasSuffix(text, Disclaimer) {
		return text
	}
	return text + Disclaimer
}
