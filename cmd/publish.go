package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var publishOutput string

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Generate the portfolio HTML",
	Long: `Render every published project into the static HTML snippet the
portfolio page embeds, in display order. The output path defaults to
the publish_output config value, resolved against the vault root.

Examples:
  folio publish
  folio publish -o /var/www/portfolio.html`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVarP(&publishOutput, "output", "o", "", "Output file (default: publish_output from config)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	html, err := siteService.Render(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to render portfolio"))
		return err
	}

	out := publishOutput
	if out == "" {
		out = appConfig.PublishOutput
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(appVault.RootPath, out)
	}

	if err := os.WriteFile(out, []byte(html), 0644); err != nil {
		fmt.Println(ui.FormatError("Failed to write output file"))
		return err
	}

	fmt.Println(ui.FormatRocket("Portfolio published!"))
	fmt.Println(ui.RenderKeyValue("Output", out))
	return nil
}
