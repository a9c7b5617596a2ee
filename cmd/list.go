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
	listStatus   string
	listCategory string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolio projects",
	Long: `List projects in display order, optionally filtered by status or
category.

Examples:
  folio list
  folio list --status published
  folio list -c web-design`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (draft, published, archived)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
}

func runList(cmd *cobra.Command, args []string) error {
	filter := services.ListFilter{Category: listCategory}
	if listStatus != "" {
		status, err := domain.ParseStatus(listStatus)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			return err
		}
		filter.Status = status
	}

	ctx := getContext()
	projects := projectService.List(ctx, filter)
	if len(projects) == 0 {
		fmt.Println(ui.FormatWarning("No projects found"))
		fmt.Println(ui.FormatInfo("Create your first project with: folio add \"My Project\""))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Width: 3},
		{Header: "TITLE", Width: 24},
		{Header: "CATEGORY", Width: 12},
		{Header: "STATUS", Width: 9},
		{Header: "MEDIA", Width: 7},
		{Header: "TAGS", Width: 16},
	})

	for _, p := range projects {
		featured := ""
		if p.Featured {
			featured = " ★"
		}
		table.AddRow([]string{
			fmt.Sprintf("%d", p.Order),
			truncate(p.Title, 32) + featured,
			p.Category,
			string(p.Status),
			fmt.Sprintf("%di %dv", len(p.Images), len(p.Videos)),
			truncate(strings.Join(p.Tags, ","), 24),
		})
	}

	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d project(s)", len(projects))))

	return nil
}
