package views

import (
	"github.com/charmbracelet/lipgloss"

	"picgrid/internal/domain"
)

// palette holds the colors that differ between themes
type palette struct {
	accent   lipgloss.Color
	text     lipgloss.Color
	muted    lipgloss.Color
	border   lipgloss.Color
	cursor   lipgloss.Color
	grab     lipgloss.Color
	featured lipgloss.Color
	selected lipgloss.Color
	errorFg  lipgloss.Color
	success  lipgloss.Color
	faded    lipgloss.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeLight: {
		accent:   "57",
		text:     "235",
		muted:    "245",
		border:   "250",
		cursor:   "33",
		grab:     "166",
		featured: "136",
		selected: "28",
		errorFg:  "160",
		success:  "28",
		faded:    "250",
	},
	domain.ThemeDark: {
		accent:   "99",
		text:     "252",
		muted:    "241",
		border:   "238",
		cursor:   "51",
		grab:     "214",
		featured: "220",
		selected: "78",
		errorFg:  "203",
		success:  "78",
		faded:    "240",
	},
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Bar           lipgloss.Style
	Mode          lipgloss.Style
	Confirm       lipgloss.Style
	Prompt        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style

	Card         lipgloss.Style
	CardFeatured lipgloss.Style
	CardGrabbed  lipgloss.Style
	CardID       lipgloss.Style
	CardURL      lipgloss.Style
	Star         lipgloss.Style
	Check        lipgloss.Style

	PreviewBox   lipgloss.Style
	PreviewImage lipgloss.Style

	cursor lipgloss.Color
	faded  lipgloss.Color
}

// NewStyles creates the styles for a theme; unknown themes fall back to light
func NewStyles(theme domain.Theme) *Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[domain.ThemeLight]
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Foreground(p.text)

	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Bar:           lipgloss.NewStyle().Foreground(p.muted),
		Mode:          lipgloss.NewStyle().Bold(true).Foreground(p.grab),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(p.errorFg),
		Prompt:        lipgloss.NewStyle().Foreground(p.accent),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(p.muted),
		StatusError:   lipgloss.NewStyle().Foreground(p.errorFg),
		StatusSuccess: lipgloss.NewStyle().Foreground(p.success),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(p.muted).Italic(true),

		Card: card,
		CardFeatured: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.featured),
		CardGrabbed: card.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.grab),
		CardID:  lipgloss.NewStyle().Bold(true).Foreground(p.text),
		CardURL: lipgloss.NewStyle().Foreground(p.muted),
		Star:    lipgloss.NewStyle().Foreground(p.featured).Bold(true),
		Check:   lipgloss.NewStyle().Foreground(p.selected).Bold(true),

		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		PreviewImage: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Foreground(p.muted).
			Align(lipgloss.Center, lipgloss.Center),

		cursor: p.cursor,
		faded:  p.faded,
	}
}
