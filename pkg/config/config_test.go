package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ThumbnailWidth != 400 || cfg.ThumbnailHeight != 300 {
		t.Errorf("thumbnail defaults = %dx%d, want 400x300", cfg.ThumbnailWidth, cfg.ThumbnailHeight)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("ffmpeg default = %q", cfg.FFmpegPath)
	}
	if cfg.PublishOutput != "portfolio.html" {
		t.Errorf("publish output default = %q", cfg.PublishOutput)
	}
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("debounce default = %d", cfg.WatchDebounceMS)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
root: /srv/portfolio
thumbnail_width: 640
color_theme: dark
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/srv/portfolio" {
		t.Errorf("root = %q", cfg.Root)
	}
	if cfg.ThumbnailWidth != 640 {
		t.Errorf("thumbnail width = %d, want 640", cfg.ThumbnailWidth)
	}
	if cfg.ThumbnailHeight != 300 {
		t.Errorf("unset thumbnail height = %d, want default 300", cfg.ThumbnailHeight)
	}
	if cfg.ColorTheme != "dark" {
		t.Errorf("color theme = %q", cfg.ColorTheme)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("thumbnail_width: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Root = "/custom/root"
	cfg.ThumbnailWidth = 800
	cfg.WatchDebounceMS = 1000

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Root != "/custom/root" || got.ThumbnailWidth != 800 || got.WatchDebounceMS != 1000 {
		t.Errorf("round trip lost values: %+v", got)
	}
}
