package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var importForce bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a portfolio document",
	Long: `Import a previously exported document. Top-level sections present in
the file (projects, categories, settings) replace the current ones
wholesale; sections absent from the file are kept as they are.

Examples:
  folio import backup.json
  folio import backup.json --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read import file"))
		return err
	}

	if !importForce {
		fmt.Println(ui.FormatWarning("Importing replaces every section present in the file."))
		if !confirm("Import " + args[0] + "?") {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
	}

	ctx := getContext()
	if err := projectService.Import(ctx, data); err != nil {
		fmt.Println(ui.FormatError("Import failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Portfolio imported from " + args[0]))
	return nil
}
