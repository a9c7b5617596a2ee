package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var (
	editTitle    string
	editCategory string
	editDesc     string
	editShort    string
	editTags     []string
	editFeatured bool
	editStatus   string
	editOrder    int
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [project-id]",
	Short: "Edit an existing project",
	Long: `Edit an existing project's fields. Only flags you pass are changed;
everything else is left untouched. Without a project id a fuzzy finder
opens over all projects.

Examples:
  folio edit project_3_1735689600 --title "New Title"
  folio edit --status published
  folio edit project_1_1735689600 --tags design,branding --featured`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New project title")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&editDesc, "description", "d", "", "New full description")
	editCmd.Flags().StringVar(&editShort, "short", "", "New short description")
	editCmd.Flags().StringSliceVar(&editTags, "tags", []string{}, "Replacement tag list (comma-separated)")
	editCmd.Flags().BoolVar(&editFeatured, "featured", false, "Set the featured flag")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New status (draft, published, archived)")
	editCmd.Flags().IntVar(&editOrder, "order", 0, "New display order")
}

func runEdit(cmd *cobra.Command, args []string) error {
	project, err := selectProject(args)
	if err != nil {
		fmt.Println(ui.FormatError("Project not found"))
		return err
	}
	if project == nil {
		return nil
	}

	// Only fields whose flag was actually set are part of the update.
	var req services.UpdateRequest
	changed := false
	if cmd.Flags().Changed("title") {
		req.Title = &editTitle
		changed = true
	}
	if cmd.Flags().Changed("category") {
		req.Category = &editCategory
		changed = true
	}
	if cmd.Flags().Changed("description") {
		req.Description = &editDesc
		changed = true
	}
	if cmd.Flags().Changed("short") {
		req.ShortDescription = &editShort
		changed = true
	}
	if cmd.Flags().Changed("tags") {
		req.Tags = &editTags
		changed = true
	}
	if cmd.Flags().Changed("featured") {
		req.Featured = &editFeatured
		changed = true
	}
	if cmd.Flags().Changed("status") {
		status, err := domain.ParseStatus(editStatus)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			return err
		}
		req.Status = &status
		changed = true
	}
	if cmd.Flags().Changed("order") {
		req.Order = &editOrder
		changed = true
	}

	if !changed {
		fmt.Println(ui.FormatWarning("Nothing to change"))
		fmt.Println(ui.FormatInfo("Pass at least one flag, e.g. --title or --status"))
		return nil
	}

	ctx := getContext()
	updated, err := projectService.Update(ctx, project.ID, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to update project"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Project updated successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Title", updated.Title))
	fmt.Println(ui.RenderKeyValue("ID", updated.ID))
	fmt.Println(ui.RenderKeyValue("Status", string(updated.Status)))

	return nil
}
