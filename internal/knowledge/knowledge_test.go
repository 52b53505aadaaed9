package knowledge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSeedsWhenAbsent(t *testing.T) {
	dir := t.TempDir()

	docs, err := Ensure(dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(docs), 9)

	// The seed file now exists on disk.
	_, err = os.Stat(filepath.Join(dir, knowledgeFile))
	assert.NoError(t, err)

	ids := make(map[string]bool)
	for _, d := range docs {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Category)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Content)
		assert.False(t, ids[d.ID], "duplicate id %s", d.ID)
		ids[d.ID] = true
	}
	assert.True(t, ids["policy_emi_calculation"])
	assert.True(t, ids["policy_interest_breakup"])
}

func TestEnsureIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := Ensure(dir)
	require.NoError(t, err)

	// A second call loads the same file without rewriting it.
	path := filepath.Join(dir, knowledgeFile)
	before, err := os.Stat(path)
	require.NoError(t, err)

	second, err := Ensure(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestEnsureLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := []Document{
		{ID: "custom_policy", Category: "Custom", Title: "Custom Policy", Content: "custom content"},
	}
	content, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, knowledgeFile), content, 0o644))

	docs, err := Ensure(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "custom_policy", docs[0].ID)
}

func TestEnsureRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	bad := []Document{
		{ID: "dup", Category: "A", Title: "a", Content: "a"},
		{ID: "dup", Category: "B", Title: "b", Content: "b"},
	}
	content, err := json.Marshal(bad)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, knowledgeFile), content, 0o644))

	_, err = Ensure(dir)
	assert.ErrorIs(t, err, ErrKnowledgeInvalid)
}

func TestEnsureRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, knowledgeFile), []byte("{"), 0o644))

	_, err := Ensure(dir)
	assert.ErrorIs(t, err, ErrKnowledgeInvalid)
}
