package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/core/domain"
	"folio/internal/core/ports/mocks"
	"folio/pkg/vault"
)

func newTestMediaService(t *testing.T) (*MediaService, *ProjectService, *mocks.MockDocumentStore, *mocks.MockThumbnailer, *vault.Vault) {
	t.Helper()

	projects, store, v := newTestProjectService(t)
	thumb := mocks.NewMockThumbnailer()
	media := NewMediaService(projects, v, thumb, 400, 300)
	media.SetWarnFunc(func(msg string) { t.Log("warn: " + msg) })
	return media, projects, store, thumb, v
}

func writeSource(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	return path
}

func storedFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMediaServiceUpload(t *testing.T) {
	media, projects, store, thumb, v := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Gallery")
	src := writeSource(t, "photo.png", 512*1024)

	asset, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if !strings.HasPrefix(asset.Filename, p.ID+"_") || !strings.HasSuffix(asset.Filename, ".png") {
		t.Errorf("stored filename = %q, want <project>_<timestamp>.png", asset.Filename)
	}
	if !strings.HasPrefix(asset.Path, "uploads/images/") {
		t.Errorf("asset path = %q, want under uploads/images/", asset.Path)
	}
	if asset.SizeMB != 0.5 {
		t.Errorf("size_mb = %g, want 0.5", asset.SizeMB)
	}
	if asset.ThumbnailPath != "uploads/thumbnails/thumb_"+asset.Filename {
		t.Errorf("thumbnail path = %q", asset.ThumbnailPath)
	}

	// Source left in place, copy stored under managed storage
	if _, err := os.Stat(src); err != nil {
		t.Error("source file must be left untouched")
	}
	if _, err := os.Stat(v.Abs(asset.Path)); err != nil {
		t.Error("stored copy missing")
	}

	// Record persisted
	stored := store.Stored()
	if len(stored.Projects[0].Images) != 1 {
		t.Fatal("asset record not persisted")
	}

	if len(thumb.Calls) != 1 {
		t.Fatalf("thumbnailer calls = %d, want 1", len(thumb.Calls))
	}
	if thumb.Calls[0].Width != 400 || thumb.Calls[0].Height != 300 {
		t.Errorf("thumbnail dimensions = %dx%d, want 400x300", thumb.Calls[0].Width, thumb.Calls[0].Height)
	}
}

func TestMediaServiceUploadVideo(t *testing.T) {
	media, projects, _, _, _ := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Showreel")
	src := writeSource(t, "clip.mp4", 1024)

	asset, err := media.Upload(ctx, src, p.ID, domain.KindVideo)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if !strings.HasPrefix(asset.Path, "uploads/videos/") {
		t.Errorf("asset path = %q, want under uploads/videos/", asset.Path)
	}
	// Video thumbnails are extracted frames, always jpg
	if !strings.HasSuffix(asset.ThumbnailPath, ".jpg") {
		t.Errorf("video thumbnail = %q, want .jpg", asset.ThumbnailPath)
	}

	got, _ := projects.Get(ctx, p.ID)
	if len(got.Videos) != 1 || len(got.Images) != 0 {
		t.Error("video recorded in the wrong sequence")
	}
}

func TestMediaServiceUploadValidationLeavesStorageUntouched(t *testing.T) {
	media, projects, store, _, v := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Strict")
	before := store.SaveCalls

	src := writeSource(t, "notes.txt", 1024)
	_, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	var formatErr *domain.UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}

	if names := storedFiles(t, v.ImagesPath); len(names) != 0 {
		t.Errorf("rejected upload left files behind: %v", names)
	}
	if store.SaveCalls != before {
		t.Error("rejected upload must not save the document")
	}
}

func TestMediaServiceUploadUnknownProject(t *testing.T) {
	media, _, _, _, v := newTestMediaService(t)

	src := writeSource(t, "photo.png", 1024)
	_, err := media.Upload(context.Background(), src, "project_99_0", domain.KindImage)
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if names := storedFiles(t, v.ImagesPath); len(names) != 0 {
		t.Errorf("unknown project upload left files behind: %v", names)
	}
}

func TestMediaServiceUploadThumbnailFailureIsNotFatal(t *testing.T) {
	media, projects, _, thumb, _ := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Resilient")
	thumb.DeriveErr = errors.New("decoder exploded")

	src := writeSource(t, "photo.png", 1024)
	asset, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	if err != nil {
		t.Fatalf("Upload must survive a thumbnail failure, got %v", err)
	}
	if asset.ThumbnailPath != "" {
		t.Errorf("thumbnail_path = %q, want empty after failure", asset.ThumbnailPath)
	}

	got, _ := projects.Get(ctx, p.ID)
	if len(got.Images) != 1 {
		t.Error("asset must still be recorded without a thumbnail")
	}
}

func TestMediaServiceUploadThumbnailsDisabled(t *testing.T) {
	media, projects, _, thumb, _ := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Plain")
	settings := projects.Settings(ctx)
	settings.AutoGenerateThumbnails = false
	projects.doc.Settings = settings

	src := writeSource(t, "photo.png", 1024)
	asset, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if asset.ThumbnailPath != "" {
		t.Error("no thumbnail expected when generation is disabled")
	}
	if len(thumb.Calls) != 0 {
		t.Error("thumbnailer must not be invoked when disabled")
	}
}

func TestMediaServiceUploadSaveFailureCleansOrphans(t *testing.T) {
	media, projects, store, _, v := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Unlucky")
	store.SaveErr = errors.New("disk full")

	src := writeSource(t, "photo.png", 1024)
	if _, err := media.Upload(ctx, src, p.ID, domain.KindImage); err == nil {
		t.Fatal("expected save failure to surface")
	}

	if names := storedFiles(t, v.ImagesPath); len(names) != 0 {
		t.Errorf("orphaned copies left behind: %v", names)
	}
	if names := storedFiles(t, v.ThumbnailsPath); len(names) != 0 {
		t.Errorf("orphaned thumbnails left behind: %v", names)
	}

	store.SaveErr = nil
	got, _ := projects.Get(ctx, p.ID)
	if len(got.Images) != 0 {
		t.Error("no asset record expected after failed save")
	}
}

func TestMediaServiceDeleteAsset(t *testing.T) {
	media, projects, _, _, v := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Cleanup")
	src := writeSource(t, "photo.png", 1024)
	asset, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if err := media.DeleteAsset(ctx, p.ID, asset.Path); err != nil {
		t.Fatalf("DeleteAsset failed: %v", err)
	}

	if _, err := os.Stat(v.Abs(asset.Path)); !os.IsNotExist(err) {
		t.Error("media file not removed")
	}
	if _, err := os.Stat(v.Abs(asset.ThumbnailPath)); !os.IsNotExist(err) {
		t.Error("thumbnail not removed")
	}
	got, _ := projects.Get(ctx, p.ID)
	if len(got.Images) != 0 {
		t.Error("asset record not removed")
	}
}

func TestMediaServiceDeleteAssetMissingFileOK(t *testing.T) {
	media, projects, _, _, v := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Tolerant")
	src := writeSource(t, "photo.png", 1024)
	asset, err := media.Upload(ctx, src, p.ID, domain.KindImage)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	// Someone deleted the file out from under us
	os.Remove(v.Abs(asset.Path))

	if err := media.DeleteAsset(ctx, p.ID, asset.Path); err != nil {
		t.Fatalf("DeleteAsset must tolerate a missing file, got %v", err)
	}
	got, _ := projects.Get(ctx, p.ID)
	if len(got.Images) != 0 {
		t.Error("asset record not removed")
	}
}

func TestMediaServiceDeleteAssetUnknownPath(t *testing.T) {
	media, projects, _, _, _ := newTestMediaService(t)
	ctx := context.Background()

	p := mustAdd(t, projects, "Empty")
	err := media.DeleteAsset(ctx, p.ID, "uploads/images/never-existed.png")
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestThumbnailName(t *testing.T) {
	if got := thumbnailName("project_1_5.png", domain.KindImage); got != "thumb_project_1_5.png" {
		t.Errorf("image thumbnail name = %q", got)
	}
	if got := thumbnailName("project_1_5.mp4", domain.KindVideo); got != "thumb_project_1_5.jpg" {
		t.Errorf("video thumbnail name = %q", got)
	}
}

func TestRoundMB(t *testing.T) {
	if got := roundMB(512 * 1024); got != 0.5 {
		t.Errorf("roundMB(512KiB) = %g, want 0.5", got)
	}
	if got := roundMB(1); got != 0 {
		t.Errorf("roundMB(1) = %g, want 0", got)
	}
}
