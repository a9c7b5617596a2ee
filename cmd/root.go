package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/adapters/store"
	"folio/internal/adapters/thumbnail"
	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/config"
	"folio/pkg/ui"
	"folio/pkg/vault"
)

var (
	// Global vault instance
	appVault  *vault.Vault
	appConfig *config.Config

	// Services
	projectService *services.ProjectService
	mediaService   *services.MediaService
	siteService    *services.SiteService

	// Store
	docStore *store.FileDocumentStore
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - A portfolio content store",
	Long: ui.StyleTitle.Render("Folio") + " - Portfolio Content Store\n\n" +
		"Manage portfolio projects and their media directly on the filesystem:\n" +
		"no database, one JSON document, uploads and thumbnails under one root.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(reorderCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that don't need a vault
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}

	cfg, err := config.Load(v.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	// Config may relocate the vault root
	if cfg.Root != "" {
		v = vault.NewAt(cfg.Root)
	}
	appVault = v

	if !appVault.Exists() {
		fmt.Println(ui.FormatError("Vault not initialized"))
		fmt.Println(ui.FormatInfo("Run 'folio init' to initialize the vault"))
		os.Exit(1)
	}

	docStore = store.NewFileDocumentStore(appVault.DocumentPath())

	doc, err := docStore.Load(getContext())
	if err != nil {
		var corrupt *domain.CorruptStoreError
		if errors.As(err, &corrupt) {
			fmt.Println(ui.FormatError("Portfolio document is corrupt: " + corrupt.Err.Error()))
			fmt.Println(ui.FormatInfo("Fix or restore " + corrupt.Path + " before continuing"))
			os.Exit(1)
		}
		return err
	}

	projectService = services.NewProjectService(doc, docStore, appVault)

	deriver := thumbnail.NewDeriver(appConfig.FFmpegPath)
	mediaService = services.NewMediaService(projectService, appVault, deriver,
		appConfig.ThumbnailWidth, appConfig.ThumbnailHeight)
	mediaService.SetWarnFunc(func(msg string) {
		fmt.Println(ui.FormatWarning(msg))
	})

	siteService = services.NewSiteService(projectService)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
