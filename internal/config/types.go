package config

import (
	"fmt"

	"github.com/lendkraft/finassist/internal/logging"
)

// Config is the root configuration for finassist.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    logging.Config   `koanf:"logging"`
	Dataset    DatasetConfig    `koanf:"dataset"`
	Knowledge  KnowledgeConfig  `koanf:"knowledge"`
	Safety     SafetyConfig     `koanf:"safety"`
	Embeddings EmbeddingsConfig `koanf:"embeddings"`
	Generation GenerationConfig `koanf:"generation"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// DatasetConfig holds the curated Q&A corpus settings (tier 1).
type DatasetConfig struct {
	// Path is the dataset JSON file. The file must exist; the matcher
	// cannot be constructed without its corpus.
	Path string `koanf:"path"`
	// SimilarityThreshold is the minimum cosine similarity for a
	// dataset answer to be returned verbatim.
	SimilarityThreshold float64 `koanf:"similarity_threshold"`
}

// KnowledgeConfig holds the knowledge base settings (RAG grounding).
type KnowledgeConfig struct {
	// Dir is where knowledge_base.json lives. Seeded on first run if absent.
	Dir string `koanf:"dir"`
	// RelevanceThreshold is the minimum score for a document to be
	// used as grounding context.
	RelevanceThreshold float64 `koanf:"relevance_threshold"`
	// TopK is the maximum number of grounding documents per query.
	TopK int `koanf:"top_k"`
}

// SafetyConfig holds input/output guardrail settings.
type SafetyConfig struct {
	// MinQueryLength rejects queries shorter than this many characters.
	MinQueryLength int `koanf:"min_query_length"`
	// MaxResponseLength truncates responses longer than this many characters.
	MaxResponseLength int `koanf:"max_response_length"`
	// DenyList terms reject a query on case-insensitive substring match.
	DenyList []string `koanf:"deny_list"`
}

// EmbeddingsConfig holds the embedding provider settings.
type EmbeddingsConfig struct {
	// BaseURL of an OpenAI-compatible embedding API (TEI or OpenAI).
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
	APIKey  string `koanf:"api_key"`
}

// GenerationConfig holds the generative provider settings (last-resort tier).
type GenerationConfig struct {
	// BaseURL of an OpenAI-compatible completion API.
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
	APIKey  string `koanf:"api_key"`
	// RequestsPerSecond caps outbound generation calls. Zero disables the cap.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	// Burst is the rate limiter burst size.
	Burst int `koanf:"burst"`
}

// Validate checks the configuration for values the system cannot start with.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if c.Dataset.SimilarityThreshold < 0 || c.Dataset.SimilarityThreshold > 1 {
		return fmt.Errorf("dataset.similarity_threshold %v outside [0,1]", c.Dataset.SimilarityThreshold)
	}
	if c.Knowledge.RelevanceThreshold < 0 || c.Knowledge.RelevanceThreshold > 1 {
		return fmt.Errorf("knowledge.relevance_threshold %v outside [0,1]", c.Knowledge.RelevanceThreshold)
	}
	if c.Knowledge.TopK < 1 {
		return fmt.Errorf("knowledge.top_k must be positive")
	}
	if c.Safety.MinQueryLength < 1 {
		return fmt.Errorf("safety.min_query_length must be positive")
	}
	if c.Safety.MaxResponseLength < 1 {
		return fmt.Errorf("safety.max_response_length must be positive")
	}
	if c.Embeddings.BaseURL == "" || c.Embeddings.Model == "" {
		return fmt.Errorf("embeddings.base_url and embeddings.model are required")
	}
	if c.Generation.BaseURL == "" || c.Generation.Model == "" {
		return fmt.Errorf("generation.base_url and generation.model are required")
	}
	return nil
}
