package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// FileDocumentStore persists the portfolio document as a single JSON
// file. Saves go through a temp file and an atomic rename so a crash
// mid-write can never corrupt the previous version.
type FileDocumentStore struct {
	path string
	mu   sync.Mutex
}

// NewFileDocumentStore creates a store for the document at path.
func NewFileDocumentStore(path string) *FileDocumentStore {
	return &FileDocumentStore{path: path}
}

// Ensure it implements the interface
var _ ports.DocumentStore = (*FileDocumentStore)(nil)

// Load reads the document from disk. An absent file legitimately seeds
// (and persists) the default document; a malformed file is a
// CorruptStoreError and must not be papered over with an empty one.
func (s *FileDocumentStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if err != nil {
		if os.IsNotExist(err) {
			doc := domain.DefaultDocument()
			if err := s.Save(ctx, doc); err != nil {
				return nil, fmt.Errorf("failed to seed document store: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read document store: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.CorruptStoreError{Path: s.path, Err: err}
	}
	if doc.Projects == nil {
		doc.Projects = []domain.Project{}
	}
	if doc.Categories == nil {
		doc.Categories = []domain.Category{}
	}
	return &doc, nil
}

// Save atomically replaces the on-disk document.
func (s *FileDocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".portfolio-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}
