package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Root overrides the vault location (default: XDG data dir).
	Root string `yaml:"root"`

	// Thumbnail target dimensions (aspect-fill crop).
	ThumbnailWidth  int `yaml:"thumbnail_width"`
	ThumbnailHeight int `yaml:"thumbnail_height"`

	// FFmpeg binary used for video frame extraction.
	FFmpegPath string `yaml:"ffmpeg_path"`

	// PublishOutput is where `folio publish` writes the HTML snippet.
	// Relative paths resolve against the vault root.
	PublishOutput string `yaml:"publish_output"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Performance
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() *Config {
	return &Config{
		ThumbnailWidth:  400,
		ThumbnailHeight: 300,
		FFmpegPath:      "ffmpeg",
		PublishOutput:   "portfolio.html",
		ColorTheme:      "auto",
		WatchDebounceMS: 500,
	}
}

// Load reads configuration from the specified file path. A missing
// file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ThumbnailWidth <= 0 {
		cfg.ThumbnailWidth = 400
	}
	if cfg.ThumbnailHeight <= 0 {
		cfg.ThumbnailHeight = 300
	}
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.PublishOutput == "" {
		cfg.PublishOutput = "portfolio.html"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
