package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/ui/input/types"
)

// TextInputMode edits one line in the shared text field. On enter the line is
// cleaned up by clean; an empty result behaves like esc.
type TextInputMode struct {
	mode   types.Mode
	name   string
	prompt string
	field  *textinput.Model
	clean  func(string) string
}

func NewTextInputMode(mode types.Mode, name, prompt string, field *textinput.Model, clean func(string) string) TextInputMode {
	if clean == nil {
		clean = strings.TrimSpace
	}
	return TextInputMode{
		mode:   mode,
		name:   name,
		prompt: prompt,
		field:  field,
		clean:  clean,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt returns the label shown in front of the text field
func (m TextInputMode) Prompt() string {
	return m.prompt
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.field != nil {
		m.field.Reset()
		m.field.Prompt = ""
		m.field.Focus()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.field != nil {
		m.field.Blur()
		m.field.Reset()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return m.leave(types.CancelTextAction{}), true
	case tea.KeyEnter:
		text := ""
		if m.field != nil {
			text = m.clean(m.field.Value())
		}
		if text == "" {
			return m.leave(types.CancelTextAction{}), true
		}
		return m.leave(types.SubmitTextAction{Text: text, Mode: m.mode}), true
	}
	// Everything else edits the field
	return nil, false
}

func (m TextInputMode) leave(result types.Action) []types.Action {
	return []types.Action{result, types.ChangeModeAction{Mode: types.ModeNormal}}
}
