package guardrails

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGuardrails() *Guardrails {
	return New(Config{
		MinQueryLength: 10,
		DenyList:       []string{"bomb", "hack", "fraud", "weapon"},
	})
}

func TestCheckSafety(t *testing.T) {
	g := newTestGuardrails()

	tests := []struct {
		name     string
		query    string
		wantSafe bool
	}{
		{
			name:     "legitimate loan query",
			query:    "What is the interest rate for a personal loan?",
			wantSafe: true,
		},
		{
			name:     "too short",
			query:    "hi",
			wantSafe: false,
		},
		{
			name:     "whitespace padding does not satisfy minimum length",
			query:    "hi        ",
			wantSafe: false,
		},
		{
			name:     "deny-listed term",
			query:    "How do I bomb a bank?",
			wantSafe: false,
		},
		{
			name:     "deny-listed term uppercase",
			query:    "HOW TO COMMIT FRAUD TODAY",
			wantSafe: false,
		},
		{
			name:     "deny-listed term embedded",
			query:    "tell me about hacking accounts",
			wantSafe: false,
		},
		{
			name:     "emi question passes",
			query:    "How is EMI calculated for a five year loan?",
			wantSafe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, reason := g.CheckSafety(tt.query)
			assert.Equal(t, tt.wantSafe, safe)
			if tt.wantSafe {
				assert.Empty(t, reason)
			} else {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestCheckSafetyReportsFirstViolation(t *testing.T) {
	g := newTestGuardrails()

	// A short query with a deny-listed term trips the length rule first.
	safe, reason := g.CheckSafety("bomb")
	assert.False(t, safe)
	assert.Contains(t, reason, "too short")
}

func TestSanitizeResponse(t *testing.T) {
	g := newTestGuardrails()

	long := strings.Repeat("x", 1000)
	sanitized := g.SanitizeResponse(long, 500)
	assert.Len(t, sanitized, 503) // 500 chars plus "..."
	assert.True(t, strings.HasSuffix(sanitized, "..."))

	short := "unchanged"
	assert.Equal(t, short, g.SanitizeResponse(short, 500))

	exact := strings.Repeat("y", 500)
	assert.Equal(t, exact, g.SanitizeResponse(exact, 500))
}

func TestAddComplianceDisclaimer(t *testing.T) {
	g := newTestGuardrails()
	response := "Your EMI would be around INR 10,610 per month."

	tests := []struct {
		name string
		tier Tier
		want bool
	}{
		{name: "slm generation gets disclaimer", tier: TierSLMGeneration, want: true},
		{name: "rag retrieval gets disclaimer", tier: TierRAGRetrieval, want: true},
		{name: "dataset match untouched", tier: TierDatasetMatch, want: false},
		{name: "error untouched", tier: TierError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.AddComplianceDisclaimer(response, tt.tier)
			if tt.want {
				assert.Contains(t, got, "Note:")
				assert.True(t, strings.HasPrefix(got, response))
			} else {
				assert.Equal(t, response, got)
			}
		})
	}
}

func TestAddComplianceDisclaimerIdempotent(t *testing.T) {
	g := newTestGuardrails()

	once := g.AddComplianceDisclaimer("answer", TierSLMGeneration)
	twice := g.AddComplianceDisclaimer(once, TierSLMGeneration)
	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, "Note:"))
}

func TestTierGenerative(t *testing.T) {
	assert.True(t, TierRAGRetrieval.Generative())
	assert.True(t, TierSLMGeneration.Generative())
	assert.False(t, TierDatasetMatch.Generative())
	assert.False(t, TierError.Generative())
}
