package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end", "pageup", "pagedown"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct {
	Index int // -1 for current
}

func (a SelectAction) Type() string { return "select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type DeleteSelectedAction struct{}

func (a DeleteSelectedAction) Type() string { return "delete_selected" }

// Preview actions
type OpenPreviewAction struct {
	Index int // -1 for current
}

func (a OpenPreviewAction) Type() string { return "open_preview" }

type ClosePreviewAction struct{}

func (a ClosePreviewAction) Type() string { return "close_preview" }

type PreviewStepAction struct {
	Delta int // -1 previous image, +1 next image
}

func (a PreviewStepAction) Type() string { return "preview_step" }

// Keyboard drag actions
type GrabStartAction struct{}

func (a GrabStartAction) Type() string { return "grab_start" }

type GrabMoveAction struct {
	Direction string // same values as NavigateAction
}

func (a GrabMoveAction) Type() string { return "grab_move" }

type GrabDropAction struct{}

func (a GrabDropAction) Type() string { return "grab_drop" }

type GrabCancelAction struct{}

func (a GrabCancelAction) Type() string { return "grab_cancel" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Other actions
type StarAction struct{}

func (a StarAction) Type() string { return "star" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
