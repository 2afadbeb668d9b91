package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"picgrid/internal/ui/views"
)

type helpSection struct {
	title string
	keys  []key.Binding
	notes []string
}

// RenderHelpContent generates the full key reference shown in the pager
func RenderHelpContent(keys views.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	sections := []helpSection{
		{title: "Navigation", keys: []key.Binding{keys.Move, keys.Top, keys.Bottom}},
		{title: "Selection", keys: []key.Binding{keys.Select, keys.SelectAll, keys.Clear, keys.Delete}},
		{
			title: "Moving images",
			keys:  []key.Binding{keys.Grab, keys.Drop, keys.CancelGrab, keys.Star},
			notes: []string{
				"The first image is always the featured one.",
				"Mouse: drag a card over another card to move it there.",
			},
		},
		{
			title: "Preview",
			keys:  []key.Binding{keys.Open, keys.OpenByID},
			notes: []string{
				"In the preview: ←/→ browse, esc/enter/q close.",
				"Mouse: click a card to preview it, right click to select it.",
			},
		},
		{title: "Other", keys: []key.Binding{keys.Theme, keys.Help, keys.Quit}},
	}

	width := 0
	for _, s := range sections {
		for _, k := range s.keys {
			if w := lipgloss.Width(k.Help().Key); w > width {
				width = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("picgrid help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, k := range s.keys {
			h := k.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
		}
		for _, n := range s.notes {
			help.WriteString(noteStyle.Render("  " + n))
			help.WriteString("\n")
		}
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the help text back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}
