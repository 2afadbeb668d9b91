package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeGrab
	ModeDeleteConfirm
	ModeOpenByID
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case ModeGrab:
		return "grab"
	case ModeDeleteConfirm:
		return "confirm"
	case ModeOpenByID:
		return "open"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	TotalItems() int
	HasSelection() bool
	IsPreviewOpen() bool
	ConfirmDelete() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
