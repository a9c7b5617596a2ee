package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

// reorderCmd represents the reorder command
var reorderCmd = &cobra.Command{
	Use:   "reorder [project-id...]",
	Short: "Change the display order of projects",
	Long: `Change the display order of projects.

With project ids as arguments, each listed project gets the order of
its position in the list; unlisted projects keep their order. Without
arguments an interactive picker opens.

Keyboard shortcuts (interactive):
  ↑/k, ↓/j    Move cursor
  K, J        Move selected project up/down
  Enter       Save the new order
  q, Esc      Cancel without saving

Examples:
  folio reorder project_3_1735689600 project_1_1735689600
  folio reorder`,
	RunE: runReorder,
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if len(args) > 0 {
		if err := projectService.Reorder(ctx, args); err != nil {
			fmt.Println(ui.FormatError("Failed to reorder projects"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Project order updated"))
		return nil
	}

	projects := projectService.List(ctx, services.ListFilter{})
	if len(projects) == 0 {
		fmt.Println(ui.FormatWarning("No projects found"))
		return nil
	}

	m := newReorderModel(projects)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running reorder view: %w", err)
	}

	final := result.(reorderModel)
	if !final.confirmed {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	ids := make([]string, len(final.projects))
	for i, p := range final.projects {
		ids[i] = p.ID
	}
	if err := projectService.Reorder(ctx, ids); err != nil {
		fmt.Println(ui.FormatError("Failed to save new order"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Project order updated"))
	return nil
}

type reorderKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Save     key.Binding
	Quit     key.Binding
}

func (k reorderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.MoveUp, k.MoveDown, k.Save, k.Quit}
}

func (k reorderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.MoveUp, k.MoveDown},
		{k.Save, k.Quit},
	}
}

var reorderKeys = reorderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

type reorderModel struct {
	projects  []domain.Project
	cursor    int
	keys      reorderKeyMap
	help      help.Model
	confirmed bool
}

func newReorderModel(projects []domain.Project) reorderModel {
	return reorderModel{
		projects: projects,
		keys:     reorderKeys,
		help:     help.New(),
	}
}

func (m reorderModel) Init() tea.Cmd {
	return nil
}

func (m reorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.MoveUp):
			if m.cursor > 0 {
				m.projects[m.cursor-1], m.projects[m.cursor] = m.projects[m.cursor], m.projects[m.cursor-1]
				m.cursor--
			}
		case key.Matches(msg, m.keys.MoveDown):
			if m.cursor < len(m.projects)-1 {
				m.projects[m.cursor+1], m.projects[m.cursor] = m.projects[m.cursor], m.projects[m.cursor+1]
				m.cursor++
			}
		case key.Matches(msg, m.keys.Save):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

var reorderSelected = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)

func (m reorderModel) View() string {
	s := ui.FormatTitle("Reorder Projects") + "\n\n"

	for i, p := range m.projects {
		line := fmt.Sprintf("%2d. %s", i+1, truncate(p.Title, 48))
		if p.Status != domain.StatusPublished {
			line += "  " + ui.FormatMuted("("+string(p.Status)+")")
		}
		if i == m.cursor {
			s += reorderSelected.Render("> "+line) + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}

	s += "\n" + m.help.View(m.keys) + "\n"
	return s
}
