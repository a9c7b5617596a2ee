package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project's full details",
	Long: `Show every field of a single project, including its media assets.
Without a project id a fuzzy finder opens over all projects.

Examples:
  folio show project_1_1735689600
  folio show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	project, err := selectProject(args)
	if err != nil {
		fmt.Println(ui.FormatError("Project not found"))
		return err
	}
	if project == nil {
		return nil
	}

	fmt.Println(ui.FormatTitle(project.Title))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("ID", project.ID))
	fmt.Println(ui.RenderKeyValue("Status", string(project.Status)))
	fmt.Println(ui.RenderKeyValue("Category", project.Category))
	fmt.Println(ui.RenderKeyValue("Order", fmt.Sprintf("%d", project.Order)))
	fmt.Println(ui.RenderKeyValue("Featured", fmt.Sprintf("%v", project.Featured)))
	if len(project.Tags) > 0 {
		fmt.Println(ui.RenderKeyValue("Tags", strings.Join(project.Tags, ", ")))
	}
	if project.ShortDescription != "" {
		fmt.Println(ui.RenderKeyValue("Short", project.ShortDescription))
	}
	if project.Description != "" {
		fmt.Println()
		fmt.Println(project.Description)
	}
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Created", project.CreatedAt.Format("2006-01-02 15:04")))
	fmt.Println(ui.RenderKeyValue("Updated", project.UpdatedAt.Format("2006-01-02 15:04")))

	if len(project.Images) > 0 {
		fmt.Println()
		fmt.Println(ui.StyleBold.Render(fmt.Sprintf("Images (%d)", len(project.Images))))
		for _, asset := range project.Images {
			line := fmt.Sprintf("  %s (%.2f MB)", asset.Path, asset.SizeMB)
			if asset.ThumbnailPath != "" {
				line += ui.FormatMuted("  thumb: " + asset.ThumbnailPath)
			}
			fmt.Println(line)
		}
	}
	if len(project.Videos) > 0 {
		fmt.Println()
		fmt.Println(ui.StyleBold.Render(fmt.Sprintf("Videos (%d)", len(project.Videos))))
		for _, asset := range project.Videos {
			line := fmt.Sprintf("  %s (%.2f MB)", asset.Path, asset.SizeMB)
			if asset.ThumbnailPath != "" {
				line += ui.FormatMuted("  thumb: " + asset.ThumbnailPath)
			}
			fmt.Println(line)
		}
	}

	return nil
}
