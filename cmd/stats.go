package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var statsChart string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show portfolio statistics",
	Long: `Analyze the portfolio and display useful statistics.

Includes:
  - Project counts by status and category
  - Media counts and total storage size
  - Top tags distribution

With --chart an interactive HTML chart page is written as well.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write an HTML chart page to the given file")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	projects := projectService.List(ctx, services.ListFilter{})

	// 1. Data Aggregation
	statusCounts := make(map[domain.Status]int)
	categoryCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	imageCount := 0
	videoCount := 0
	totalSizeMB := 0.0
	featured := 0

	for _, p := range projects {
		statusCounts[p.Status]++
		if p.Category != "" {
			categoryCounts[p.Category]++
		}
		for _, t := range p.Tags {
			tagCounts[t]++
		}
		imageCount += len(p.Images)
		videoCount += len(p.Videos)
		for _, a := range p.Images {
			totalSizeMB += a.SizeMB
		}
		for _, a := range p.Videos {
			totalSizeMB += a.SizeMB
		}
		if p.Featured {
			featured++
		}
	}

	// 2. Render Output
	fmt.Println()
	fmt.Println(ui.FormatTitle("Portfolio Analytics"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Projects:"), len(projects))
	fmt.Fprintf(w, "%s\t%d published, %d draft, %d archived\n", ui.StyleBold.Render("By Status:"),
		statusCounts[domain.StatusPublished], statusCounts[domain.StatusDraft], statusCounts[domain.StatusArchived])
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Featured:"), featured)
	fmt.Fprintf(w, "%s\t%d images, %d videos\n", ui.StyleBold.Render("Media:"), imageCount, videoCount)
	fmt.Fprintf(w, "%s\t%.2f MB\n", ui.StyleBold.Render("Storage:"), totalSizeMB)
	w.Flush()

	fmt.Println()
	renderBarChart("Projects per Category", categoryCounts)
	renderBarChart("Top Tags", tagCounts)

	// 3. Optional HTML chart page
	if statsChart != "" {
		if err := writeChartPage(statsChart, statusCounts, categoryCounts); err != nil {
			fmt.Println(ui.FormatError("Failed to write chart page"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Chart page written to " + statsChart))
	}

	return nil
}

// renderBarChart prints a simple horizontal text bar chart, highest
// counts first, capped at ten rows.
func renderBarChart(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	type entry struct {
		name  string
		count int
	}
	var entries []entry
	maxCount := 0
	for name, count := range counts {
		entries = append(entries, entry{name, count})
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > 10 {
		entries = entries[:10]
	}

	fmt.Println(ui.StyleBold.Render(title))
	for _, e := range entries {
		barLen := e.count * 24 / maxCount
		if barLen == 0 {
			barLen = 1
		}
		bar := ui.StyleAccent.Render(strings.Repeat("█", barLen))
		fmt.Printf("  %-16s %s %d\n", truncate(e.name, 16), bar, e.count)
	}
	fmt.Println()
}

// writeChartPage renders the aggregates into an interactive HTML page
// with a status pie and a category bar chart.
func writeChartPage(path string, statusCounts map[domain.Status]int, categoryCounts map[string]int) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Projects by Status"}))
	var pieData []opts.PieData
	for _, status := range []domain.Status{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived} {
		if statusCounts[status] > 0 {
			pieData = append(pieData, opts.PieData{Name: string(status), Value: statusCounts[status]})
		}
	}
	pie.AddSeries("status", pieData)

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Projects by Category"}))
	var names []string
	for name := range categoryCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	var barData []opts.BarData
	for _, name := range names {
		barData = append(barData, opts.BarData{Value: categoryCounts[name]})
	}
	bar.SetXAxis(names).AddSeries("projects", barData)

	page := components.NewPage()
	page.AddCharts(pie, bar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
