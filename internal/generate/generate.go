// Package generate adapts the external generative model provider for the
// last-resort answer tier.
//
// The adapter talks to any OpenAI-compatible completion API via langchaingo
// and guards outbound calls with a rate limiter so concurrent queries
// cannot stampede the provider.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/time/rate"

	"github.com/lendkraft/finassist/internal/knowledge"
	"github.com/lendkraft/finassist/internal/logging"
)

var (
	// ErrGenerationFailed indicates the generative provider failed. Callers
	// convert this into an error envelope; it never reaches presentation code.
	ErrGenerationFailed = errors.New("generation provider failed")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)

// Config holds the generative provider settings.
type Config struct {
	// BaseURL of an OpenAI-compatible completion API.
	BaseURL string
	// Model is the generative model identifier.
	Model string
	// APIKey is required for hosted APIs, optional for local servers.
	APIKey string
	// RequestsPerSecond caps outbound calls. Zero disables the cap.
	RequestsPerSecond float64
	// Burst is the limiter burst size; defaults to 1 when a cap is set.
	Burst int
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	return nil
}

// Service generates answers, optionally grounded in retrieved documents.
// Safe for concurrent use.
type Service struct {
	llm     llms.Model
	limiter *rate.Limiter
	model   string
	logger  *logging.Logger
}

// NewService creates the generation adapter.
func NewService(cfg Config, logger *logging.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "placeholder"
	}

	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generation client: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Service{
		llm:     llm,
		limiter: limiter,
		model:   cfg.Model,
		logger:  logger,
	}, nil
}

// Generate produces a completion for the query. When docs is non-empty the
// prompt embeds their contents as grounding context. Provider failures
// surface as ErrGenerationFailed with the original message attached.
func (s *Service) Generate(ctx context.Context, query string, docs []knowledge.ScoredDocument) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	prompt := buildPrompt(query, docs)
	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		s.logger.Error("generation call failed")
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return strings.TrimSpace(completion), nil
}

// buildPrompt assembles the completion prompt. Grounding documents, when
// present, are concatenated ahead of the question so the model answers
// from known policy text instead of inventing facts.
func buildPrompt(query string, docs []knowledge.ScoredDocument) string {
	var sb strings.Builder
	sb.WriteString("You are a banking customer support assistant. ")
	sb.WriteString("Answer clearly and accurately about loans, EMI, interest rates and account services.\n\n")

	if len(docs) > 0 {
		sb.WriteString("Reference information:\n")
		for _, d := range docs {
			sb.WriteString("[")
			sb.WriteString(d.Title)
			sb.WriteString("]\n")
			sb.WriteString(d.Content)
			sb.WriteString("\n\n")
		}
		sb.WriteString("Answer the question using the reference information above.\n\n")
	}

	sb.WriteString("Question: ")
	sb.WriteString(query)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}
