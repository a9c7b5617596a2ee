package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var deleteForce bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project and its media",
	Long: `Delete a project. All media files and thumbnails owned by the project
are removed from managed storage as well. Without a project id a fuzzy
finder opens over all projects.

Examples:
  folio delete project_2_1735689600
  folio delete --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	project, err := selectProject(args)
	if err != nil {
		fmt.Println(ui.FormatError("Project not found"))
		return err
	}
	if project == nil {
		return nil
	}

	mediaCount := len(project.Images) + len(project.Videos)
	if !deleteForce {
		fmt.Println(ui.RenderKeyValue("Title", project.Title))
		fmt.Println(ui.RenderKeyValue("ID", project.ID))
		fmt.Println(ui.RenderKeyValue("Media files", fmt.Sprintf("%d", mediaCount)))
		fmt.Println()
		if !confirm("Delete this project and all of its media?") {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
	}

	ctx := getContext()
	if err := projectService.Delete(ctx, project.ID); err != nil {
		fmt.Println(ui.FormatError("Failed to delete project"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Project deleted: " + project.Title))
	if mediaCount > 0 {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Removed %d media file(s) from storage", mediaCount)))
	}

	return nil
}
