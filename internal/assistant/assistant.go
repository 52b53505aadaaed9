// Package assistant orchestrates the tiered query pipeline: safety check,
// curated dataset match, knowledge-grounded generation, plain generation.
//
// Every query produces an Envelope. Failures of any stage are converted to
// error envelopes here; no error escapes ProcessQuery, so presentation
// layers never handle pipeline failures themselves.
package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendkraft/finassist/internal/dataset"
	"github.com/lendkraft/finassist/internal/guardrails"
	"github.com/lendkraft/finassist/internal/knowledge"
	"github.com/lendkraft/finassist/internal/logging"
)

// Tier re-exports the guardrails tier taxonomy as the envelope's tier type.
type Tier = guardrails.Tier

// Tier values, in order of attempt.
const (
	TierDatasetMatch  = guardrails.TierDatasetMatch
	TierRAGRetrieval  = guardrails.TierRAGRetrieval
	TierSLMGeneration = guardrails.TierSLMGeneration
	TierError         = guardrails.TierError
)

// Fixed tier-level confidence for generative answers. Grounded generation
// ranks above plain generation; dataset matches carry their similarity
// score instead.
const (
	ragConfidence = 0.85
	slmConfidence = 0.7
)

// Envelope is the uniform result returned for every query.
type Envelope struct {
	QueryID            string   `json:"query_id"`
	Response           string   `json:"response"`
	Tier               Tier     `json:"tier"`
	Confidence         float64  `json:"confidence"`
	Source             string   `json:"source"`
	Success            bool     `json:"success"`
	Explanation        string   `json:"explanation,omitempty"`
	MatchedInstruction string   `json:"matched_instruction,omitempty"`
	RAGSources         []string `json:"rag_sources,omitempty"`
	Error              string   `json:"error,omitempty"`
}

// Matcher is the tier-1 curated corpus lookup.
type Matcher interface {
	FindMatch(ctx context.Context, query string) (*dataset.Match, float64, error)
	TopMatches(ctx context.Context, query string, k int) ([]dataset.Match, error)
	Threshold() float64
	Stats() dataset.Stats
}

// Retriever supplies grounding documents for generation.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int, threshold float64) ([]knowledge.ScoredDocument, error)
	SearchByCategory(category string) []knowledge.Document
	Stats() knowledge.Stats
}

// Generator is the last-resort generative provider.
type Generator interface {
	Generate(ctx context.Context, query string, docs []knowledge.ScoredDocument) (string, error)
}

// Router runs queries through the tier pipeline.
type Router struct {
	guard             *guardrails.Guardrails
	matcher           Matcher
	retriever         Retriever
	generator         Generator
	maxResponseLength int
	logger            *logging.Logger
}

// NewRouter wires the pipeline. All dependencies are constructed by the
// caller and owned for the process lifetime; the router holds no other state.
func NewRouter(guard *guardrails.Guardrails, matcher Matcher, retriever Retriever, generator Generator, maxResponseLength int, logger *logging.Logger) *Router {
	return &Router{
		guard:             guard,
		matcher:           matcher,
		retriever:         retriever,
		generator:         generator,
		maxResponseLength: maxResponseLength,
		logger:            logger,
	}
}

// ProcessQuery routes a query through the tiers and returns its envelope.
// Terminal on first success. Never returns an error: safety rejections and
// provider failures all come back as error envelopes with success=false.
func (r *Router) ProcessQuery(ctx context.Context, query string, explainTier bool) Envelope {
	queryID := uuid.NewString()
	log := r.logger.With(zap.String("query_id", queryID))

	// Input safety gate.
	if safe, reason := r.guard.CheckSafety(query); !safe {
		log.Warn("query rejected by safety check", zap.String("reason", reason))
		return r.errorEnvelope(queryID,
			"I can't help with that request. "+reason+".",
			reason, "safety_guardrails")
	}

	// Tier 1: curated dataset lookup.
	match, bestScore, err := r.matcher.FindMatch(ctx, query)
	if err != nil {
		log.Error("dataset lookup failed", zap.Error(err))
		return r.errorEnvelope(queryID,
			"I'm unable to process your question right now. Please try again shortly.",
			err.Error(), "dataset_matcher")
	}
	if match != nil {
		log.Info("answered from curated dataset", zap.Float64("score", match.Score))
		env := Envelope{
			QueryID:            queryID,
			Response:           r.guard.SanitizeResponse(match.Entry.Output, r.maxResponseLength),
			Tier:               TierDatasetMatch,
			Confidence:         match.Score,
			Source:             "curated_dataset",
			Success:            true,
			MatchedInstruction: match.Entry.Instruction,
		}
		if explainTier {
			env.Explanation = fmt.Sprintf("dataset similarity %.2f cleared threshold %.2f", match.Score, r.matcher.Threshold())
		}
		return env
	}

	// Knowledge lookup. Empty results are not an error; generation simply
	// proceeds ungrounded.
	docs, err := r.retriever.Retrieve(ctx, query, 0, 0)
	if err != nil {
		log.Error("knowledge retrieval failed", zap.Error(err))
		return r.errorEnvelope(queryID,
			"I'm unable to process your question right now. Please try again shortly.",
			err.Error(), "knowledge_retriever")
	}

	// Final tier: generation, grounded when documents were found.
	answer, err := r.generator.Generate(ctx, query, docs)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return r.errorEnvelope(queryID,
			"I'm unable to generate an answer right now. Please try again shortly.",
			err.Error(), "generative_model")
	}

	tier := TierSLMGeneration
	confidence := slmConfidence
	source := "generative_model"
	var ragSources []string
	if len(docs) > 0 {
		tier = TierRAGRetrieval
		confidence = ragConfidence
		source = "knowledge_base"
		ragSources = make([]string, len(docs))
		for i, d := range docs {
			ragSources[i] = d.Title
		}
	}

	response := r.guard.SanitizeResponse(answer, r.maxResponseLength)
	response = r.guard.AddComplianceDisclaimer(response, tier)

	log.Info("answered by generation",
		zap.String("tier", string(tier)),
		zap.Int("grounding_docs", len(docs)),
	)

	env := Envelope{
		QueryID:    queryID,
		Response:   response,
		Tier:       tier,
		Confidence: confidence,
		Source:     source,
		Success:    true,
		RAGSources: ragSources,
	}
	if explainTier {
		if len(docs) > 0 {
			env.Explanation = fmt.Sprintf("best dataset score %.2f below threshold %.2f; %d knowledge documents grounded the answer", bestScore, r.matcher.Threshold(), len(docs))
		} else {
			env.Explanation = fmt.Sprintf("best dataset score %.2f below threshold %.2f; no knowledge document was relevant enough, answered by the model alone", bestScore, r.matcher.Threshold())
		}
	}
	return env
}

// errorEnvelope builds the terminal failure envelope. The response text is
// always human-readable; the raw failure goes in the error field.
func (r *Router) errorEnvelope(queryID, response, errMsg, source string) Envelope {
	return Envelope{
		QueryID:    queryID,
		Response:   r.guard.SanitizeResponse(response, r.maxResponseLength),
		Tier:       TierError,
		Confidence: 0,
		Source:     source,
		Success:    false,
		Error:      errMsg,
	}
}
