package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"picgrid/internal/domain"
	"picgrid/internal/gallery"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Theme          domain.Theme
	Snapshot       gallery.Snapshot
	Cursor         int
	Columns        int
	ViewportOffset int
	Grabbing       bool
	Dragging       bool
	DragIndex      int
	InputMode      string // "", "grab", "confirm" or "open"
	Prompt         string
	TextInput      string
	StatusMessage  string
	StatusIsError  bool
	ShowFullHelp   bool
	HelpModel      help.Model
	Keys           KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	theme       domain.Theme
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(theme domain.Theme) *Renderer {
	r := &Renderer{}
	r.SetTheme(theme)
	return r
}

// SetTheme rebuilds the styles for another palette
func (r *Renderer) SetTheme(theme domain.Theme) {
	if r.styles != nil && r.theme == theme {
		return
	}
	r.theme = theme
	r.styles = NewStyles(theme)
	r.cardRender = NewCardRenderer(r.styles)
	r.popupRender = NewPopupRenderer(r.styles)
}

// Styles returns the active styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	r.SetTheme(state.Theme)
	layout := NewLayout(state.Width, state.Height, state.Columns, len(state.Snapshot.Images), state.ViewportOffset)

	content := &strings.Builder{}

	// Title, then a bar that is either a prompt or a summary
	content.WriteString(r.renderTitle(state, layout))
	content.WriteString("\n")
	content.WriteString(r.renderBar(state))
	content.WriteString("\n\n")

	if len(state.Snapshot.Images) == 0 {
		content.WriteString(r.styles.Dim.Render("No images left."))
	} else {
		content.WriteString(r.renderGrid(state, layout))
	}

	// Push status and help to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 2; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(r.renderHelp(state))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Snapshot.Preview != nil {
		info := r.previewInfo(state.Snapshot)
		popup := r.popupRender.RenderPreview(info, state.Width, state.Height)
		return r.popupRender.RenderPopupOverlay(finalContent, popup, state.Height, state.Width, r.styles.PreviewBox)
	}

	if state.ShowFullHelp {
		hm := state.HelpModel
		hm.ShowAll = true
		popup := lipgloss.JoinVertical(lipgloss.Left, r.styles.Title.Render("Keys"), "", hm.View(state.Keys))
		return r.popupRender.RenderPopupOverlay(finalContent, popup, state.Height, state.Width, r.styles.PreviewBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState, layout Layout) string {
	logo := r.styles.Title.Render("picgrid")

	var right []string
	if rows := layout.Rows(); rows > layout.ViewportRows {
		last := layout.ViewportOffset + layout.ViewportRows
		if last > rows {
			last = rows
		}
		right = append(right, r.styles.Scroll.Render(fmt.Sprintf("rows %d-%d of %d", layout.ViewportOffset+1, last, rows)))
	}
	if state.InputMode == "grab" || state.Dragging {
		right = append(right, r.styles.Mode.Render("MOVING"))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 2*GridLeft - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderBar(state ViewState) string {
	switch state.InputMode {
	case "confirm":
		n := len(state.Snapshot.Selected)
		noun := "images"
		if n == 1 {
			noun = "image"
		}
		return r.styles.Confirm.Render(fmt.Sprintf("Delete %d selected %s? (y/n)", n, noun))
	case "open":
		return r.styles.Prompt.Render(state.Prompt) + state.TextInput
	}

	snap := state.Snapshot
	parts := []string{fmt.Sprintf("%d images", len(snap.Images))}
	if n := len(snap.Selected); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if featured, ok := snap.Featured(); ok {
		parts = append(parts, fmt.Sprintf("featured #%d", featured.ID))
	}
	return r.styles.Bar.Render(strings.Join(parts, " · "))
}

func (r *Renderer) renderGrid(state ViewState, layout Layout) string {
	start, end := layout.VisibleRange()
	grabbed := -1
	switch {
	case state.InputMode == "grab":
		grabbed = state.Cursor
	case state.Dragging:
		grabbed = state.DragIndex
	}

	var rows []string
	for rowStart := start; rowStart < end; rowStart += layout.Columns {
		rowEnd := rowStart + layout.Columns
		if rowEnd > end {
			rowEnd = end
		}
		cards := make([]string, 0, layout.Columns)
		for i := rowStart; i < rowEnd; i++ {
			cards = append(cards, r.cardRender.RenderCard(state.Snapshot.Images[i], layout.CardWidth, i == state.Cursor, i == grabbed))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(state.StatusMessage)
}

func (r *Renderer) renderHelp(state ViewState) string {
	hm := state.HelpModel
	hm.ShowAll = false
	if state.Width > 0 {
		hm.Width = state.Width - 2*GridLeft
	}
	if state.InputMode == "grab" {
		return hm.ShortHelpView(state.Keys.GrabHelp())
	}
	return hm.View(state.Keys)
}

func (r *Renderer) previewInfo(snap gallery.Snapshot) PreviewInfo {
	info := PreviewInfo{Image: *snap.Preview, Total: len(snap.Images)}
	for _, v := range snap.Images {
		if v.ID == snap.Preview.ID {
			info.Position = v.Position
			info.Featured = v.Featured
			info.Selected = v.Selected
			break
		}
	}
	return info
}
