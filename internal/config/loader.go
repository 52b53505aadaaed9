// Package config provides configuration loading for finassist.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1024 * 1024 // 1MB

// envPrefix namespaces environment overrides: FINASSIST_SERVER_PORT etc.
const envPrefix = "FINASSIST_"

// Load reads configuration from an optional YAML file, then overrides with
// environment variables, then applies defaults and validates.
//
// Precedence (highest to lowest):
//  1. Environment variables (FINASSIST_SERVER_PORT, FINASSIST_DATASET_PATH, ...)
//  2. YAML config file (configPath; skipped when empty or absent)
//  3. Defaults
//
// Environment variables map section_field to section.field:
//
//	FINASSIST_SERVER_PORT        -> server.port
//	FINASSIST_DATASET_PATH       -> dataset.path
//	FINASSIST_SAFETY_DENY_LIST   -> safety.deny_list
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			content, err := readConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// FINASSIST_SECTION_FIELD_NAME -> section.field_name.
		// Split on the first underscore only; field names keep theirs.
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// readConfigFile opens and reads the config file, enforcing the size limit
// against the already-opened descriptor to avoid a stat/read race.
func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/bfsi_dataset.json"
	}
	if cfg.Dataset.SimilarityThreshold == 0 {
		cfg.Dataset.SimilarityThreshold = 0.75
	}

	if cfg.Knowledge.Dir == "" {
		cfg.Knowledge.Dir = "rag_knowledge"
	}
	if cfg.Knowledge.RelevanceThreshold == 0 {
		cfg.Knowledge.RelevanceThreshold = 0.6
	}
	if cfg.Knowledge.TopK == 0 {
		cfg.Knowledge.TopK = 3
	}

	if cfg.Safety.MinQueryLength == 0 {
		cfg.Safety.MinQueryLength = 10
	}
	if cfg.Safety.MaxResponseLength == 0 {
		cfg.Safety.MaxResponseLength = 500
	}
	if len(cfg.Safety.DenyList) == 0 {
		cfg.Safety.DenyList = DefaultDenyList()
	}

	if cfg.Embeddings.BaseURL == "" {
		cfg.Embeddings.BaseURL = "http://localhost:8080/v1"
	}
	if cfg.Embeddings.Model == "" {
		cfg.Embeddings.Model = "sentence-transformers/all-MiniLM-L6-v2"
	}

	if cfg.Generation.BaseURL == "" {
		cfg.Generation.BaseURL = "http://localhost:8081/v1"
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "TinyLlama/TinyLlama-1.1B-Chat-v1.0"
	}
	if cfg.Generation.RequestsPerSecond == 0 {
		cfg.Generation.RequestsPerSecond = 4
	}
	if cfg.Generation.Burst == 0 {
		cfg.Generation.Burst = 8
	}
}

// DefaultDenyList returns the reference deny-list of unsafe or
// out-of-domain vocabulary. Deployments are expected to extend this
// through configuration rather than edit it here.
func DefaultDenyList() []string {
	return []string{
		"bomb",
		"weapon",
		"kill",
		"attack",
		"hack",
		"steal",
		"fraud",
		"launder",
		"scam",
		"counterfeit",
		"illegal",
		"drugs",
	}
}
