package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List portfolio categories",
	Long: `List the categories projects can be filed under, with how many
projects currently use each one. The category list itself is managed
through export/import.`,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	categories := projectService.Categories(ctx)
	if len(categories) == 0 {
		fmt.Println(ui.FormatWarning("No categories defined"))
		return nil
	}

	counts := make(map[string]int)
	for _, p := range projectService.List(ctx, services.ListFilter{}) {
		counts[p.Category]++
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 14},
		{Header: "NAME", Width: 18},
		{Header: "COLOR", Width: 8},
		{Header: "PROJECTS", Width: 8},
	})
	for _, c := range categories {
		table.AddRow([]string{c.ID, c.Name, c.Color, fmt.Sprintf("%d", counts[c.ID])})
	}

	fmt.Println()
	fmt.Print(table.Render())

	return nil
}
