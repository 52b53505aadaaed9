// Package knowledge provides the structured financial knowledge base used
// as grounding context for generated answers.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// knowledgeFile is the on-disk knowledge base inside the knowledge dir.
const knowledgeFile = "knowledge_base.json"

var (
	// ErrKnowledgeInvalid is returned for malformed documents or duplicate ids.
	ErrKnowledgeInvalid = errors.New("knowledge base is invalid")
)

// Document is one structured knowledge item. ID is unique across the corpus.
type Document struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// ScoredDocument annotates a document with its query relevance.
type ScoredDocument struct {
	Document
	RelevanceScore float64 `json:"relevance_score"`
}

// Ensure materializes the knowledge base: loads knowledge_base.json from
// dir when present, otherwise writes the built-in seed corpus there first.
// Generation is idempotent; an existing file is never overwritten.
func Ensure(dir string) ([]Document, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating knowledge dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, knowledgeFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		content, err := json.MarshalIndent(seedDocuments(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding seed knowledge base: %w", err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, fmt.Errorf("writing knowledge base %s: %w", path, err)
		}
	}

	return load(path)
}

// load reads and validates the knowledge base file.
func load(path string) ([]Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base %s: %w", path, err)
	}

	var docs []Document
	if err := json.Unmarshal(content, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKnowledgeInvalid, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents in %s", ErrKnowledgeInvalid, path)
	}

	seen := make(map[string]struct{}, len(docs))
	for i, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: document %d has empty id", ErrKnowledgeInvalid, i)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate document id %q", ErrKnowledgeInvalid, d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.Content == "" {
			return nil, fmt.Errorf("%w: document %q has empty content", ErrKnowledgeInvalid, d.ID)
		}
	}

	return docs, nil
}
