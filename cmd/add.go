package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var (
	addCategory string
	addDesc     string
	addShort    string
	addTags     []string
	addFeatured bool
	addStatus   string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new portfolio project",
	Long: `Add a new portfolio project with optional category, tags and status.

Examples:
  folio add "Brand Redesign"
  folio add "Product Launch Video" --category video --tags motion,launch
  folio add "Client Website" -c web-design --featured --status published`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Project category (see 'folio categories')")
	addCmd.Flags().StringVarP(&addDesc, "description", "d", "", "Full project description")
	addCmd.Flags().StringVar(&addShort, "short", "", "Short description for cards and listings")
	addCmd.Flags().StringSliceVar(&addTags, "tags", []string{}, "Tags for the project (comma-separated)")
	addCmd.Flags().BoolVar(&addFeatured, "featured", false, "Mark the project as featured")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Project status (draft, published, archived)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := services.AddRequest{
		Title:            args[0],
		Category:         addCategory,
		Description:      addDesc,
		ShortDescription: addShort,
		Tags:             addTags,
		Featured:         addFeatured,
	}

	if addStatus != "" {
		status, err := domain.ParseStatus(addStatus)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			return err
		}
		req.Status = status
	}

	ctx := getContext()
	project, err := projectService.Add(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to add project"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Project created successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Title", project.Title))
	fmt.Println(ui.RenderKeyValue("ID", project.ID))
	fmt.Println(ui.RenderKeyValue("Status", string(project.Status)))
	if project.Category != "" {
		fmt.Println(ui.RenderKeyValue("Category", project.Category))
	}
	if len(project.Tags) > 0 {
		fmt.Println(ui.RenderKeyValue("Tags", strings.Join(project.Tags, ", ")))
	}
	fmt.Println()
	fmt.Println(ui.FormatInfo("Attach media with: folio upload <file> " + project.ID))

	return nil
}
