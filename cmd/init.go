package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/internal/adapters/store"
	"folio/pkg/ui"
	"folio/pkg/vault"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the folio vault",
	Long: `Initialize the folio vault directory structure.

This creates the managed storage tree with the following layout:
  - data/portfolio.json     : The portfolio document (seeded with defaults)
  - uploads/images/         : Uploaded images
  - uploads/videos/         : Uploaded videos
  - uploads/thumbnails/     : Derived previews
  - config.yaml             : Global configuration (in your config dir)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	v, err := vault.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine vault location"))
		return err
	}

	if v.Exists() {
		fmt.Println(ui.FormatWarning("Vault already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + v.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing folio vault..."))
	fmt.Println()

	if err := v.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize vault"))
		return err
	}

	// Seed the document with default categories and settings
	docStore := store.NewFileDocumentStore(v.DocumentPath())
	if _, err := docStore.Load(cmd.Context()); err != nil {
		fmt.Println(ui.FormatError("Failed to seed portfolio document"))
		return err
	}

	if err := createDefaultConfig(v); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		// Don't fail - config is optional
	}

	fmt.Println(ui.FormatSuccess("Vault initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", v.RootPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Directory structure:"))
	fmt.Println(ui.FormatMuted("  data/                - Portfolio document"))
	fmt.Println(ui.FormatMuted("  uploads/images/      - Uploaded images"))
	fmt.Println(ui.FormatMuted("  uploads/videos/      - Uploaded videos"))
	fmt.Println(ui.FormatMuted("  uploads/thumbnails/  - Derived previews"))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Create your first project: folio add \"My Project\""))
	fmt.Println(ui.FormatMuted("  2. Upload media: folio upload photo.png"))
	fmt.Println(ui.FormatMuted("  3. List projects: folio list"))

	return nil
}

func createDefaultConfig(v *vault.Vault) error {
	defaultConfig := `# Folio Configuration
# This file is optional - all settings have sensible defaults

# Vault root override
# root: ""

# Thumbnail dimensions (aspect-fill crop)
# thumbnail_width: 400
# thumbnail_height: 300

# FFmpeg binary for video frame extraction
# ffmpeg_path: "ffmpeg"

# Where 'folio publish' writes the HTML snippet (relative to the vault root)
# publish_output: "portfolio.html"
`

	configDir := filepath.Dir(v.ConfigPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(v.ConfigPath, []byte(defaultConfig), 0644)
}
