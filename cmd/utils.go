package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

// selectProject resolves a project from an optional id argument. With
// no argument it opens a fuzzy finder over all projects; a nil return
// with nil error means the user cancelled or nothing exists.
func selectProject(args []string) (*domain.Project, error) {
	ctx := getContext()

	if len(args) > 0 {
		return projectService.Get(ctx, args[0])
	}

	projects := projectService.List(ctx, services.ListFilter{})
	if len(projects) == 0 {
		fmt.Println(ui.FormatWarning("No projects found"))
		fmt.Println(ui.FormatInfo("Create your first project with: folio add \"My Project\""))
		return nil, nil
	}

	idx, err := fuzzyfinder.Find(
		projects,
		func(i int) string { return projects[i].Title },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			p := projects[i]
			return fmt.Sprintf("Title: %s\nID: %s\nCategory: %s\nStatus: %s\nMedia: %d images, %d videos",
				p.Title, p.ID, p.Category, p.Status, len(p.Images), len(p.Videos))
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil, nil
	}
	return &projects[idx], nil
}

// confirm asks a y/n question on stdin.
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(ui.StyleWarning.Render(prompt + " (y/n): "))
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// detectKind guesses the media kind from a filename extension using
// the document settings, falling back to image.
func detectKind(filename string, settings domain.Settings) domain.MediaKind {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	for _, v := range settings.AllowedVideoFormats {
		if strings.EqualFold(v, ext) {
			return domain.KindVideo
		}
	}
	return domain.KindImage
}
