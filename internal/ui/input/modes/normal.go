package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if ctx.IsPreviewOpen() {
		return m.handlePreviewKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate("up"), true

	case tea.KeyDown:
		return navigate("down"), true

	case tea.KeyLeft:
		return navigate("left"), true

	case tea.KeyRight:
		return navigate("right"), true

	case tea.KeyPgUp:
		return navigate("pageup"), true

	case tea.KeyPgDown:
		return navigate("pagedown"), true

	case tea.KeyHome:
		return navigate("home"), true

	case tea.KeyEnd:
		return navigate("end"), true

	case tea.KeyEnter:
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenPreviewAction{Index: -1}}, true

	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return navigate("down"), true

	case "k":
		return navigate("up"), true

	case "h":
		return navigate("left"), true

	case "l":
		return navigate("right"), true

	case " ":
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: -1}}, true

	case "a", "A":
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return []types.Action{types.SelectAllAction{}}, true

	case "m", "M":
		// Pick up the image under the cursor
		if ctx.TotalItems() < 2 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGrab}}, true

	case "d", "x", "delete":
		if !ctx.HasSelection() {
			return nil, true
		}
		if ctx.ConfirmDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return []types.Action{types.DeleteSelectedAction{}}, true

	case "s", "*":
		return []types.Action{types.StarAction{}}, true

	case "o", ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOpenByID}}, true

	case "t", "T":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to first image
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return navigate("end"), true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}

// handlePreviewKey handles keys while an image is shown enlarged
func (m *NormalMode) handlePreviewKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "q", " ":
		return []types.Action{types.ClosePreviewAction{}}, true
	case "left", "h":
		return []types.Action{types.PreviewStepAction{Delta: -1}}, true
	case "right", "l":
		return []types.Action{types.PreviewStepAction{Delta: 1}}, true
	}
	// Everything else is swallowed while the preview covers the grid
	return nil, true
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
