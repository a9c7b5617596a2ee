package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var (
	exportOutput string
	exportCopy   bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio document",
	Long: `Export the full portfolio document (projects, categories, settings)
as indented JSON. Writes to stdout unless -o is given.

Examples:
  folio export > backup.json
  folio export -o backup.json
  folio export --copy`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the export to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy the export to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	data, err := projectService.Export(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to export document"))
		return err
	}

	if exportCopy {
		// Non-fatal: headless environments have no clipboard
		if err := clipboard.WriteAll(string(data)); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatSuccess("Export copied to clipboard"))
		}
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			fmt.Println(ui.FormatError("Failed to write export file"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Portfolio exported to " + exportOutput))
		return nil
	}

	if !exportCopy {
		fmt.Println(string(data))
	}
	return nil
}
