package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 0.75, cfg.Dataset.SimilarityThreshold)
	assert.Equal(t, 0.6, cfg.Knowledge.RelevanceThreshold)
	assert.Equal(t, 3, cfg.Knowledge.TopK)
	assert.Equal(t, 10, cfg.Safety.MinQueryLength)
	assert.Equal(t, 500, cfg.Safety.MaxResponseLength)
	assert.NotEmpty(t, cfg.Safety.DenyList)
	assert.Contains(t, cfg.Safety.DenyList, "fraud")
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9000
dataset:
  path: /tmp/dataset.json
  similarity_threshold: 0.8
safety:
  min_query_length: 5
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/dataset.json", cfg.Dataset.Path)
	assert.Equal(t, 0.8, cfg.Dataset.SimilarityThreshold)
	assert.Equal(t, 5, cfg.Safety.MinQueryLength)
	// Untouched fields still get defaults.
	assert.Equal(t, 0.6, cfg.Knowledge.RelevanceThreshold)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600))

	t.Setenv("FINASSIST_SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "threshold above one", key: "FINASSIST_DATASET_SIMILARITY_THRESHOLD", value: "1.5"},
		{name: "port out of range", key: "FINASSIST_SERVER_PORT", value: "99999"},
		{name: "bad log level", key: "FINASSIST_LOGGING_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	big := make([]byte, maxConfigFileSize+1)
	require.NoError(t, os.WriteFile(path, big, 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
