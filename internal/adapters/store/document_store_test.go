package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/core/domain"
)

func TestFileDocumentStoreSeedsOnAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "portfolio.json")
	s := NewFileDocumentStore(path)

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(doc.Projects) != 0 {
		t.Errorf("seed projects = %d, want 0", len(doc.Projects))
	}
	if len(doc.Categories) != 6 {
		t.Errorf("seed categories = %d, want 6", len(doc.Categories))
	}
	if doc.Settings.MaxFileSizeMB != 50 {
		t.Errorf("seed max file size = %g, want 50", doc.Settings.MaxFileSizeMB)
	}
	if !doc.Settings.AutoGenerateThumbnails {
		t.Error("seed must enable thumbnail generation")
	}

	// The seed is persisted immediately
	if _, err := os.Stat(path); err != nil {
		t.Error("seed document not written to disk")
	}
}

func TestFileDocumentStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileDocumentStore(path)

	_, err := s.Load(context.Background())
	var corrupt *domain.CorruptStoreError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptStoreError, got %v", err)
	}
	if corrupt.Path != path {
		t.Errorf("error path = %q, want %q", corrupt.Path, path)
	}

	// A corrupt file is never replaced with a fresh document
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Error("corrupt file must be left untouched")
	}
}

func TestFileDocumentStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	s := NewFileDocumentStore(path)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Projects = append(doc.Projects, domain.Project{
		ID:     "project_1_1735689600",
		Title:  "Round Trip",
		Tags:   []string{"t1"},
		Images: []domain.MediaAsset{},
		Videos: []domain.MediaAsset{},
		Status: domain.StatusDraft,
	})

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Title != "Round Trip" {
		t.Fatalf("round trip lost data: %+v", got.Projects)
	}
}

func TestFileDocumentStoreFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	s := NewFileDocumentStore(path)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Projects = append(doc.Projects, domain.Project{
		ID:               "project_1_1",
		Title:            "Contract",
		ShortDescription: "short",
		Images: []domain.MediaAsset{{
			Filename: "a.png", Path: "uploads/images/a.png", ThumbnailPath: "uploads/thumbnails/thumb_a.png", SizeMB: 0.5,
		}},
	})
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// On-disk field names are an external contract
	for _, key := range []string{
		`"projects"`, `"categories"`, `"settings"`,
		`"short_description"`, `"created_at"`, `"updated_at"`,
		`"thumbnail_path"`, `"size_mb"`, `"uploaded_at"`,
		`"auto_generate_thumbnails"`, `"max_file_size_mb"`,
		`"allowed_image_formats"`, `"allowed_video_formats"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("document missing field %s", key)
		}
	}
}

func TestFileDocumentStoreNormalizesNilSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(`{"settings": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileDocumentStore(path)

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Projects == nil || doc.Categories == nil {
		t.Error("absent sequences must load as empty, not nil")
	}
}

func TestFileDocumentStoreLeavesNoTempDebris(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	s := NewFileDocumentStore(path)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Save(ctx, domain.DefaultDocument()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "portfolio.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files after saves: %v", names)
	}
}
