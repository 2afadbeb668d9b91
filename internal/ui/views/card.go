package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"picgrid/internal/gallery"
)

// CardRenderer handles rendering of a single gallery card
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one card of the given outer width
func (cr *CardRenderer) RenderCard(img gallery.ImageView, width int, isCursor, isGrabbed bool) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	header := cr.styles.CardID.Render(fmt.Sprintf("#%d", img.ID))
	if img.Featured {
		header += " " + cr.styles.Star.Render("★")
	}

	check := "[ ]"
	if img.Selected {
		check = cr.styles.Check.Render("[✓]")
	}
	footer := fmt.Sprintf("%s %d", check, img.Position+1)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		cr.styles.CardURL.Render(truncate(img.URL, inner)),
		footer,
	)

	style := cr.styles.Card
	switch {
	case isGrabbed:
		style = cr.styles.CardGrabbed
	case img.Featured:
		style = cr.styles.CardFeatured
	}
	if isCursor && !isGrabbed {
		style = style.BorderForeground(cr.styles.cursor)
	}
	return style.Width(inner).Height(CardHeight - 2).Render(body)
}

// truncate shortens plain text to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:width])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
