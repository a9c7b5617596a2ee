package mocks

import (
	"context"
	"sync"

	"folio/internal/core/domain"
)

// MockDocumentStore is an in-memory DocumentStore for testing.
type MockDocumentStore struct {
	mu        sync.Mutex
	doc       *domain.Document
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockDocumentStore creates a mock store. A nil seed behaves like a
// store whose file does not exist yet.
func NewMockDocumentStore(seed *domain.Document) *MockDocumentStore {
	return &MockDocumentStore{doc: seed}
}

// Load returns the stored document, seeding defaults when empty.
func (m *MockDocumentStore) Load(ctx context.Context) (*domain.Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		m.doc = domain.DefaultDocument()
	}
	return m.doc.Clone(), nil
}

// Save stores a deep copy of the document.
func (m *MockDocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.doc = doc.Clone()
	return nil
}

// Stored returns a copy of the last successfully saved document.
func (m *MockDocumentStore) Stored() *domain.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return nil
	}
	return m.doc.Clone()
}
