package views

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"picgrid/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PreviewInfo is what the preview popup shows about the open image
type PreviewInfo struct {
	Image    domain.Image
	Position int
	Total    int
	Featured bool
	Selected bool
}

// RenderPreview renders the enlarged view of one image
func (pr *PopupRenderer) RenderPreview(info PreviewInfo, width, height int) string {
	title := pr.styles.Title.Render(fmt.Sprintf("Image #%d", info.Image.ID))
	if info.Featured {
		title += "  " + pr.styles.Star.Render("★ featured")
	}
	if info.Selected {
		title += "  " + pr.styles.Check.Render("[✓] selected")
	}

	frameW := width * 2 / 3
	if frameW < 20 {
		frameW = 20
	}
	frameH := height / 2
	if frameH < 3 {
		frameH = 3
	}
	frame := pr.styles.PreviewImage.
		Width(frameW).
		Height(frameH).
		Render(path.Base(info.Image.URL))

	meta := pr.styles.Bar.Render(fmt.Sprintf("%s  ·  %d of %d", info.Image.URL, info.Position+1, info.Total))
	hint := pr.styles.Help.Render("←/→ browse • esc close")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", frame, meta, hint)
}

// RenderPopupOverlay renders a popup overlay on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(mainContent, "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	fade := lipgloss.NewStyle().Foreground(pr.styles.faded)
	out := make([]string, len(base))
	for i, line := range base {
		plain := []rune(ansiRE.ReplaceAllString(line, ""))
		if i < y || i >= y+len(popupLines) {
			out[i] = fade.Render(string(plain))
			continue
		}
		for len(plain) < x {
			plain = append(plain, ' ')
		}
		left := string(plain[:x])
		right := ""
		if x+modalW < len(plain) {
			right = string(plain[x+modalW:])
		}
		popupLine := popupLines[i-y]
		if pad := modalW - lipgloss.Width(popupLine); pad > 0 {
			popupLine += strings.Repeat(" ", pad)
		}
		out[i] = fade.Render(left) + popupLine + fade.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)
