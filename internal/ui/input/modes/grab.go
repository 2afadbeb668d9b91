package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/ui/input/types"
)

// GrabMode moves the picked-up image with the cursor. Every step is a complete reorder,
// so leaving the mode never has to apply anything.
type GrabMode struct{}

func NewGrabMode() *GrabMode {
	return &GrabMode{}
}

func (m *GrabMode) Name() string {
	return "grab"
}

func (m *GrabMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.GrabStartAction{}}
}

func (m *GrabMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *GrabMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "up", "k":
		return move("up"), true
	case "down", "j":
		return move("down"), true
	case "left", "h":
		return move("left"), true
	case "right", "l":
		return move("right"), true
	case "home":
		return move("home"), true
	case "end":
		return move("end"), true
	case "enter", " ", "m", "M":
		return []types.Action{
			types.GrabDropAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc":
		return []types.Action{
			types.GrabCancelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}

func move(direction string) []types.Action {
	return []types.Action{types.GrabMoveAction{Direction: direction}}
}
