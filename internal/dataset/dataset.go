// Package dataset provides the curated instruction/answer corpus and the
// tier-1 similarity matcher over it.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for corpus loading. Both are fatal at construction:
// the assistant must not start without its curated corpus.
var (
	// ErrDatasetNotFound is returned when the dataset file is absent.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrDatasetInvalid is returned for malformed or incomplete entries.
	ErrDatasetInvalid = errors.New("dataset file is invalid")
)

// Entry is one curated corpus item. Instruction is the embeddable question,
// Output the reviewed answer returned verbatim on a match. Input carries
// optional extra context and may be empty in instruction-tuning datasets.
type Entry struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// Load reads the corpus from a JSON array file. The file must exist and
// every entry must carry a non-empty instruction and output.
func Load(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetInvalid, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries in %s", ErrDatasetInvalid, path)
	}

	for i, e := range entries {
		if e.Instruction == "" {
			return nil, fmt.Errorf("%w: entry %d has empty instruction", ErrDatasetInvalid, i)
		}
		if e.Output == "" {
			return nil, fmt.Errorf("%w: entry %d has empty output", ErrDatasetInvalid, i)
		}
	}

	return entries, nil
}
