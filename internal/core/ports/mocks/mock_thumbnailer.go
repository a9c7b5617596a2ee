package mocks

import (
	"context"
	"os"
	"sync"
)

// ThumbnailCall records one Derive invocation.
type ThumbnailCall struct {
	Source string
	Target string
	Width  int
	Height int
}

// MockThumbnailer is a Thumbnailer that writes a placeholder file, or
// fails when DeriveErr is set.
type MockThumbnailer struct {
	mu        sync.Mutex
	DeriveErr error
	Calls     []ThumbnailCall
}

func NewMockThumbnailer() *MockThumbnailer {
	return &MockThumbnailer{}
}

// Derive records the call and creates an empty target file so callers
// can observe cleanup behavior.
func (m *MockThumbnailer) Derive(ctx context.Context, source, target string, width, height int) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, ThumbnailCall{Source: source, Target: target, Width: width, Height: height})
	m.mu.Unlock()

	if m.DeriveErr != nil {
		return m.DeriveErr
	}
	return os.WriteFile(target, []byte("thumb"), 0644)
}
