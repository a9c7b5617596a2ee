package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vault represents the managed storage tree for folio: the document
// file plus the upload directories media files live under.
type Vault struct {
	RootPath       string
	DataPath       string
	ImagesPath     string
	VideosPath     string
	ThumbnailsPath string
	ConfigPath     string
}

// New creates a Vault instance with XDG-compliant paths. FOLIO_ROOT
// overrides the root for non-standard deployments.
func New() (*Vault, error) {
	rootPath, err := getVaultRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine vault root: %w", err)
	}
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	v := NewAt(rootPath)
	v.ConfigPath = configPath
	return v, nil
}

// NewAt creates a Vault rooted at an explicit directory. Used by tests
// and by the root override in config.
func NewAt(rootPath string) *Vault {
	uploads := filepath.Join(rootPath, "uploads")
	return &Vault{
		RootPath:       rootPath,
		DataPath:       filepath.Join(rootPath, "data"),
		ImagesPath:     filepath.Join(uploads, "images"),
		VideosPath:     filepath.Join(uploads, "videos"),
		ThumbnailsPath: filepath.Join(uploads, "thumbnails"),
		ConfigPath:     filepath.Join(rootPath, "config.yaml"),
	}
}

func getVaultRoot() (string, error) {
	if root := os.Getenv("FOLIO_ROOT"); root != "" {
		return root, nil
	}

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "folio"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "folio"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "folio"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "folio", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "folio-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "folio", "config.yaml"), nil
}

// Initialize creates the vault directory structure if it doesn't exist.
func (v *Vault) Initialize() error {
	directories := []string{
		v.RootPath,
		v.DataPath,
		v.ImagesPath,
		v.VideosPath,
		v.ThumbnailsPath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the vault has been initialized.
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// DocumentPath returns the path of the portfolio document file.
func (v *Vault) DocumentPath() string {
	return filepath.Join(v.DataPath, "portfolio.json")
}

// Rel converts an absolute path under the vault into the
// forward-slashed relative form stored in asset records.
func (v *Vault) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(v.RootPath, abs)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path %s escapes vault root", abs)
	}
	return filepath.ToSlash(rel), nil
}

// Abs resolves a stored relative asset path back to an absolute path.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.RootPath, filepath.FromSlash(rel))
}
