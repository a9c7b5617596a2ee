package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var watchQuiet bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the document and republish on change",
	Long: `Watch the portfolio document for changes and regenerate the published
HTML whenever it is saved. Useful next to an editor or a second folio
process.

Use --quiet to suppress republish notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress republish notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: atomic saves replace the file
	// by rename and a watch on the old inode would go stale.
	if err := watcher.Add(appVault.DataPath); err != nil {
		return fmt.Errorf("failed to watch data directory: %w", err)
	}

	outPath := appConfig.PublishOutput
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(appVault.RootPath, outPath)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching portfolio document..."))
		fmt.Println(ui.FormatMuted("Watching: " + appVault.DocumentPath()))
		fmt.Println(ui.FormatMuted("Output:   " + outPath))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce timer to avoid republishing on every partial write
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	needsPublish := false

	doPublish := func() {
		if !needsPublish {
			return
		}
		needsPublish = false

		if !watchQuiet {
			fmt.Println(ui.FormatInfo("Document changed, republishing..."))
		}

		// Reload from disk: the change may come from another process.
		doc, err := docStore.Load(ctx)
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Reload failed: " + err.Error()))
			}
			log.Printf("Reload error: %v", err)
			return
		}

		projects := services.NewProjectService(doc, docStore, appVault)
		site := services.NewSiteService(projects)
		html, err := site.Render(ctx)
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Render failed: " + err.Error()))
			}
			return
		}
		if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Write failed: " + err.Error()))
			}
			return
		}

		if !watchQuiet {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Published %d project(s)",
				len(projects.List(ctx, services.ListFilter{Status: domain.StatusPublished})))))
		}
	}

	docName := filepath.Base(appVault.DocumentPath())

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only care about the document itself; this also skips the
			// dot-prefixed temp files from atomic saves.
			if filepath.Base(event.Name) != docName {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {

				needsPublish = true

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, doPublish)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}
