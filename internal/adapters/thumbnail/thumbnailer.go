package thumbnail

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"folio/internal/core/ports"
)

// rasterExts are the source extensions handled in-process; anything
// else is treated as a video and goes through ffmpeg.
var rasterExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Deriver produces aspect-fill preview images. Image sources are
// decoded and re-encoded in-process; video sources get a single frame
// grabbed about one second in.
type Deriver struct {
	ffmpeg string
}

// NewDeriver creates a Deriver. ffmpeg is the binary used for video
// frames (usually just "ffmpeg").
func NewDeriver(ffmpeg string) *Deriver {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	return &Deriver{ffmpeg: ffmpeg}
}

// Ensure it implements the interface
var _ ports.Thumbnailer = (*Deriver)(nil)

// IsAvailable reports whether the ffmpeg binary can be found. Image
// thumbnails work regardless.
func (d *Deriver) IsAvailable() bool {
	_, err := exec.LookPath(d.ffmpeg)
	return err == nil
}

// Derive writes an aspect-fill preview of source to target.
func (d *Deriver) Derive(ctx context.Context, source, target string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid thumbnail dimensions %dx%d", width, height)
	}
	ext := strings.ToLower(filepath.Ext(source))
	if rasterExts[ext] {
		return d.deriveImage(source, target, width, height)
	}
	return d.deriveVideoFrame(ctx, source, target, width, height)
}

func (d *Deriver) deriveImage(source, target string, width, height int) error {
	img, err := imaging.Open(source)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(source), err)
	}

	// Crop-and-resize to fill the target dimensions exactly.
	thumb := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	if err := imaging.Save(thumb, target, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}

func (d *Deriver) deriveVideoFrame(ctx context.Context, source, target string, width, height int) error {
	filter := fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		width, height, width, height)
	cmd := exec.CommandContext(ctx, d.ffmpeg,
		"-ss", "00:00:01",
		"-i", source,
		"-vframes", "1",
		"-vf", filter,
		"-y", target,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg frame grab failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
