package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

// mediaCmd groups media asset subcommands
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage a project's media assets",
	Long: `Inspect and remove media assets attached to projects.

Examples:
  folio media ls project_1_1735689600
  folio media rm project_1_1735689600 uploads/images/project_1_1735689600_17356896.png`,
}

// mediaLsCmd lists the assets of a project
var mediaLsCmd = &cobra.Command{
	Use:   "ls [project-id]",
	Short: "List a project's media assets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMediaLs,
}

// mediaRmCmd removes one asset from a project
var mediaRmCmd = &cobra.Command{
	Use:   "rm [project-id] [asset-path]",
	Short: "Remove a media asset from a project",
	Long: `Remove a media asset by its stored path. The record is removed first;
the file and thumbnail are then deleted from storage. A file already
missing on disk is not an error.`,
	Args: cobra.ExactArgs(2),
	RunE: runMediaRm,
}

func init() {
	mediaCmd.AddCommand(mediaLsCmd)
	mediaCmd.AddCommand(mediaRmCmd)
}

func runMediaLs(cmd *cobra.Command, args []string) error {
	project, err := selectProject(args)
	if err != nil {
		fmt.Println(ui.FormatError("Project not found"))
		return err
	}
	if project == nil {
		return nil
	}

	if len(project.Images) == 0 && len(project.Videos) == 0 {
		fmt.Println(ui.FormatWarning("No media attached to " + project.Title))
		fmt.Println(ui.FormatInfo("Upload with: folio upload <file> " + project.ID))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "KIND", Width: 6},
		{Header: "PATH", Width: 40},
		{Header: "SIZE", Width: 8},
		{Header: "UPLOADED", Width: 16},
	})
	for _, asset := range project.Images {
		table.AddRow([]string{"image", asset.Path, fmt.Sprintf("%.2f MB", asset.SizeMB), asset.UploadedAt.Format("2006-01-02 15:04")})
	}
	for _, asset := range project.Videos {
		table.AddRow([]string{"video", asset.Path, fmt.Sprintf("%.2f MB", asset.SizeMB), asset.UploadedAt.Format("2006-01-02 15:04")})
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle(project.Title))
	fmt.Println()
	fmt.Print(table.Render())

	return nil
}

func runMediaRm(cmd *cobra.Command, args []string) error {
	projectID := args[0]
	assetPath := args[1]

	ctx := getContext()
	if err := mediaService.DeleteAsset(ctx, projectID, assetPath); err != nil {
		fmt.Println(ui.FormatError("Failed to remove media asset"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Media asset removed: " + assetPath))
	return nil
}
