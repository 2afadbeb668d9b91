package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/ui/input/types"
)

type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.DeleteSelectedAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}
