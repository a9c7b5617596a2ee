package ports

import (
	"context"

	"folio/internal/core/domain"
)

// DocumentStore defines the port for document persistence.
type DocumentStore interface {
	// Load reads the document, seeding and persisting a default one
	// when no file exists. A malformed file is a CorruptStoreError.
	Load(ctx context.Context) (*domain.Document, error)

	// Save atomically replaces the on-disk document.
	Save(ctx context.Context, doc *domain.Document) error
}

// Thumbnailer defines the port for the external image processing
// capability used to derive preview images.
type Thumbnailer interface {
	// Derive writes an aspect-fill preview of source to target with
	// the given dimensions.
	Derive(ctx context.Context, source, target string, width, height int) error
}
