package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/pkg/vault"
)

// MediaService copies uploads into managed storage, enforces the
// validator, derives thumbnails and records the resulting asset on the
// owning project.
type MediaService struct {
	projects *ProjectService
	vault    *vault.Vault
	thumb    ports.Thumbnailer

	thumbWidth  int
	thumbHeight int

	// warn receives best-effort failure notices (thumbnail errors,
	// orphan cleanup problems). Defaults to stderr.
	warn func(msg string)
}

// NewMediaService constructs a MediaService. The thumbnailer is the
// injected image-processing capability; width/height are the target
// thumbnail dimensions.
func NewMediaService(projects *ProjectService, v *vault.Vault, thumb ports.Thumbnailer, width, height int) *MediaService {
	return &MediaService{
		projects:    projects,
		vault:       v,
		thumb:       thumb,
		thumbWidth:  width,
		thumbHeight: height,
		warn: func(msg string) {
			fmt.Fprintln(os.Stderr, "warning: "+msg)
		},
	}
}

// SetWarnFunc redirects best-effort failure notices, e.g. into styled
// CLI output.
func (s *MediaService) SetWarnFunc(fn func(msg string)) {
	if fn != nil {
		s.warn = fn
	}
}

// Upload copies srcPath into managed storage for the given project and
// kind, derives a thumbnail when configured, and persists the asset
// descriptor. The source file is left untouched.
//
// Failure order matters: an unknown project or a validation error
// returns before any file is touched. If the descriptor cannot be
// saved after the copy, the copied file and thumbnail are removed
// again so no orphan is left behind.
func (s *MediaService) Upload(ctx context.Context, srcPath, projectID string, kind domain.MediaKind) (*domain.MediaAsset, error) {
	// 1. Resolve the owner before any file I/O.
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	// 2. Validate against settings; fail fast, nothing copied.
	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source file: %w", err)
	}
	settings := s.projects.Settings(ctx)
	if err := ValidateAsset(info.Name(), info.Size(), kind, settings); err != nil {
		return nil, err
	}

	// 3. Collision-free destination name from project id + timestamp.
	destDir := s.vault.ImagesPath
	if kind == domain.KindVideo {
		destDir = s.vault.VideosPath
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	filename, destPath := s.uniqueDestination(destDir, projectID, filepath.Ext(srcPath))

	// 4. Copy (not move); slow I/O happens before the document lock.
	if err := copyFile(srcPath, destPath); err != nil {
		return nil, fmt.Errorf("failed to copy file into storage: %w", err)
	}

	// 5. Best-effort thumbnail.
	thumbRel := ""
	thumbAbs := ""
	if settings.AutoGenerateThumbnails {
		thumbAbs = filepath.Join(s.vault.ThumbnailsPath, thumbnailName(filename, kind))
		if err := os.MkdirAll(s.vault.ThumbnailsPath, 0755); err != nil {
			s.warn("failed to create thumbnails directory: " + err.Error())
			thumbAbs = ""
		} else if err := s.thumb.Derive(ctx, destPath, thumbAbs, s.thumbWidth, s.thumbHeight); err != nil {
			// The primary asset is already stored; keep going.
			s.warn("failed to generate thumbnail for " + filename + ": " + err.Error())
			os.Remove(thumbAbs)
			thumbAbs = ""
		} else if rel, err := s.vault.Rel(thumbAbs); err == nil {
			thumbRel = rel
		}
	}

	rel, err := s.vault.Rel(destPath)
	if err != nil {
		os.Remove(destPath)
		return nil, err
	}

	asset := domain.MediaAsset{
		Filename:      filename,
		Path:          rel,
		ThumbnailPath: thumbRel,
		SizeMB:        roundMB(info.Size()),
		UploadedAt:    time.Now(),
	}

	// 6. Record the descriptor; only this step needs exclusivity.
	if err := s.projects.AttachAsset(ctx, projectID, kind, asset); err != nil {
		// Orphan cleanup: the copy is useless without its record.
		if rmErr := os.Remove(destPath); rmErr != nil {
			s.warn("failed to remove orphaned file " + destPath + ": " + rmErr.Error())
		}
		if thumbAbs != "" {
			os.Remove(thumbAbs)
		}
		return nil, err
	}

	return &asset, nil
}

// DeleteAsset removes the asset record and its files. The record
// removal is authoritative; a file already missing on disk is not an
// error.
func (s *MediaService) DeleteAsset(ctx context.Context, projectID, assetPath string) error {
	removed, err := s.projects.DetachAsset(ctx, projectID, assetPath)
	if err != nil {
		return err
	}

	if err := os.Remove(s.vault.Abs(removed.Path)); err != nil && !os.IsNotExist(err) {
		s.warn("failed to delete media file " + removed.Path + ": " + err.Error())
	}
	if removed.ThumbnailPath != "" {
		if err := os.Remove(s.vault.Abs(removed.ThumbnailPath)); err != nil && !os.IsNotExist(err) {
			s.warn("failed to delete thumbnail " + removed.ThumbnailPath + ": " + err.Error())
		}
	}
	return nil
}

// uniqueDestination builds a destination name that cannot collide:
// project id plus a nanosecond timestamp, with a numeric suffix when a
// file of that name somehow already exists.
func (s *MediaService) uniqueDestination(destDir, projectID, ext string) (string, string) {
	base := fmt.Sprintf("%s_%d", projectID, time.Now().UnixNano())
	name := base + ext
	path := filepath.Join(destDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s-%d%s", base, counter, ext)
		path = filepath.Join(destDir, name)
	}
	return name, path
}

// thumbnailName keeps the native raster extension for images and uses
// jpg for extracted video frames.
func thumbnailName(filename string, kind domain.MediaKind) string {
	if kind == domain.KindVideo {
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	}
	return "thumb_" + filename
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

func roundMB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/bytesPerMB*100) / 100
}
