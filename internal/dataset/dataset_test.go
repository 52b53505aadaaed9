package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `[
		{"instruction": "What is the interest rate?", "input": "", "output": "Rates start at 8.5% p.a."},
		{"instruction": "How do I check my application status?", "input": "applied last week", "output": "Log in to the portal and open My Applications."}
	]`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "What is the interest rate?", entries[0].Instruction)
	assert.Equal(t, "applied last week", entries[1].Input)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeDataset(t, `{"not": "an array"`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDatasetInvalid)
}

func TestLoadEmptyArray(t *testing.T) {
	path := writeDataset(t, `[]`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDatasetInvalid)
}

func TestLoadRejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "empty instruction",
			content: `[{"instruction": "", "input": "", "output": "answer"}]`,
		},
		{
			name:    "empty output",
			content: `[{"instruction": "question", "input": "", "output": ""}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.content)
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrDatasetInvalid)
		})
	}
}
