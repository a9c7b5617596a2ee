package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/pkg/ui"
)

var uploadKind string

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [file] [project-id]",
	Short: "Upload a media file to a project",
	Long: `Copy a media file into managed storage and attach it to a project.
The source file is left in place. The kind is detected from the file
extension unless --kind is given. Without a project id a fuzzy finder
opens over all projects.

Examples:
  folio upload hero.png project_1_1735689600
  folio upload demo.mp4 project_1_1735689600 --kind video
  folio upload hero.png`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadKind, "kind", "k", "", "Media kind (image, video); detected from extension when omitted")
}

func runUpload(cmd *cobra.Command, args []string) error {
	srcPath := args[0]

	project, err := selectProject(args[1:])
	if err != nil {
		fmt.Println(ui.FormatError("Project not found"))
		return err
	}
	if project == nil {
		return nil
	}

	ctx := getContext()

	var kind domain.MediaKind
	if uploadKind != "" {
		kind, err = domain.ParseMediaKind(uploadKind)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			return err
		}
	} else {
		kind = detectKind(srcPath, projectService.Settings(ctx))
	}

	asset, err := mediaService.Upload(ctx, srcPath, project.ID, kind)
	if err != nil {
		fmt.Println(ui.FormatError("Upload failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Media uploaded successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Project", project.Title))
	fmt.Println(ui.RenderKeyValue("Kind", kind.String()))
	fmt.Println(ui.RenderKeyValue("Stored as", asset.Path))
	fmt.Println(ui.RenderKeyValue("Size", fmt.Sprintf("%.2f MB", asset.SizeMB)))
	if asset.ThumbnailPath != "" {
		fmt.Println(ui.RenderKeyValue("Thumbnail", asset.ThumbnailPath))
	}

	return nil
}
