package state

import (
	"picgrid/internal/domain"
	"picgrid/internal/gallery"
)

// AppState contains all the application state
type AppState struct {
	// Gallery data, owned by the UI goroutine
	Gallery *gallery.State

	// Cursor state
	Cursor int // index of the focused card

	// Keyboard grab
	Grabbing   bool
	GrabOrigin int // index the grabbed card started from

	// Mouse drag
	Dragging  bool
	DragIndex int  // current index of the dragged card
	DragMoved bool // whether a hover reorder happened during this drag

	// Settings
	Columns       int
	Theme         domain.Theme
	ConfirmDelete bool
	MouseEnabled  bool

	// UI state
	Width          int
	Height         int
	ViewportOffset int // first visible grid row
	ViewportRows   int // grid rows that fit on screen
	ShowFullHelp   bool
	StatusMessage  string // status bar message
	StatusIsError  bool
}

// NewAppState creates a new application state
func NewAppState(g *gallery.State, columns int, theme domain.Theme) *AppState {
	if columns < 1 {
		columns = 1
	}
	if !theme.Valid() {
		theme = domain.ThemeLight
	}
	return &AppState{
		Gallery:       g,
		Columns:       columns,
		Theme:         theme,
		ConfirmDelete: true,
		MouseEnabled:  true,
		ViewportRows:  1,
	}
}

// CurrentImage returns the image under the cursor
func (s *AppState) CurrentImage() (domain.Image, bool) {
	img, err := s.Gallery.At(s.Cursor)
	if err != nil {
		return domain.Image{}, false
	}
	return img, true
}

// ClampCursor keeps the cursor on an existing card
func (s *AppState) ClampCursor() {
	if s.Cursor >= s.Gallery.Len() {
		s.Cursor = s.Gallery.Len() - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus empties the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// EndDrag forgets any in-progress mouse drag
func (s *AppState) EndDrag() {
	s.Dragging = false
	s.DragMoved = false
	s.DragIndex = 0
}
