package assistant

import (
	"github.com/lendkraft/finassist/internal/dataset"
	"github.com/lendkraft/finassist/internal/knowledge"
)

// Version is the assistant version reported by Info. Overridable via ldflags.
var Version = "1.0.0"

// Info is the read-only introspection surface for dashboards and CLIs.
type Info struct {
	System       string          `json:"system"`
	Version      string          `json:"version"`
	Compliance   []string        `json:"compliance"`
	DatasetStats dataset.Stats   `json:"dataset_stats"`
	RAGStats     knowledge.Stats `json:"rag_stats"`
	Tiers        []string        `json:"tiers"`
}

// GetAssistantInfo reports system metadata and corpus statistics.
// Read-only, no side effects.
func (r *Router) GetAssistantInfo() Info {
	return Info{
		System:       "LendKraft Financial Assistant",
		Version:      Version,
		Compliance: []string{
			"RBI guidelines adherence",
			"Automatic disclaimers on generated answers",
			"Content safety filters",
		},
		DatasetStats: r.matcher.Stats(),
		RAGStats:     r.retriever.Stats(),
		Tiers: []string{
			string(TierDatasetMatch),
			string(TierRAGRetrieval),
			string(TierSLMGeneration),
		},
	}
}
