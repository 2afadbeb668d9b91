package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picgrid/internal/ui/input/types"
)

type fakeContext struct {
	total         int
	selected      int
	preview       bool
	confirmDelete bool
}

func (c fakeContext) TotalItems() int     { return c.total }
func (c fakeContext) HasSelection() bool  { return c.selected > 0 }
func (c fakeContext) IsPreviewOpen() bool { return c.preview }
func (c fakeContext) ConfirmDelete() bool { return c.confirmDelete }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeKeys(t *testing.T) {
	ctx := fakeContext{total: 11, selected: 2, confirmDelete: true}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
		mode types.Mode
	}{
		{name: "arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, want: []types.Action{types.NavigateAction{Direction: "down"}}},
		{name: "vim key", msg: runes("h"), want: []types.Action{types.NavigateAction{Direction: "left"}}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []types.Action{types.SelectAction{Index: -1}}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []types.Action{types.OpenPreviewAction{Index: -1}}},
		{name: "esc with selection", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: []types.Action{types.DeselectAllAction{}}},
		{name: "star", msg: runes("*"), want: []types.Action{types.StarAction{}}},
		{name: "theme", msg: runes("t"), want: []types.Action{types.ToggleThemeAction{}}},
		{name: "quit", msg: runes("q"), want: []types.Action{types.QuitAction{Force: false}}},
		{name: "delete asks first", msg: runes("d"), mode: types.ModeDeleteConfirm},
		{name: "grab", msg: runes("m"), want: []types.Action{types.GrabStartAction{}}, mode: types.ModeGrab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, ctx)
			assert.Equal(t, tt.want, actions)
			assert.Equal(t, tt.mode, h.CurrentMode())
		})
	}
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("x"), fakeContext{total: 3, selected: 1})

	assert.Equal(t, []types.Action{types.DeleteSelectedAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestUnknownKeyIsNotConsumed(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(runes("z"), fakeContext{total: 3})
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}

func TestConfirmMode(t *testing.T) {
	ctx := fakeContext{total: 3, selected: 1, confirmDelete: true}

	h := New()
	h.HandleKey(runes("d"), ctx)
	require.Equal(t, types.ModeDeleteConfirm, h.CurrentMode())

	actions, _ := h.HandleKey(runes("y"), ctx)
	assert.Equal(t, []types.Action{types.DeleteSelectedAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	h.HandleKey(runes("d"), ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGrabMode(t *testing.T) {
	ctx := fakeContext{total: 5}
	h := New()
	h.HandleKey(runes("m"), ctx)

	actions, _ := h.HandleKey(runes("l"), ctx)
	assert.Equal(t, []types.Action{types.GrabMoveAction{Direction: "right"}}, actions)

	// Unrelated keys do nothing while grabbing
	actions, _ = h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeGrab, h.CurrentMode())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.GrabCancelAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestPreviewKeys(t *testing.T) {
	ctx := fakeContext{total: 5, preview: true}
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Equal(t, []types.Action{types.PreviewStepAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.ClosePreviewAction{}}, actions)

	actions, _ = h.HandleKey(runes("m"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestOpenByIDMode(t *testing.T) {
	ctx := fakeContext{total: 11}
	h := New()

	_, cmd := h.HandleKey(runes("o"), ctx)
	require.Equal(t, types.ModeOpenByID, h.CurrentMode())
	assert.NotNil(t, cmd, "entering a text mode starts the cursor blink")
	assert.Equal(t, "Open image #", h.Prompt())
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("4"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "4"}}, actions)
	h.HandleKey(runes("2"), ctx)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "42", Mode: types.ModeOpenByID}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSetMode(t *testing.T) {
	h := New()
	ctx := fakeContext{total: 3}

	actions := h.SetMode(types.ModeGrab, ctx)
	assert.Equal(t, []types.Action{types.GrabStartAction{}}, actions)
	assert.Nil(t, h.SetMode(types.ModeGrab, ctx))

	actions = h.SetMode(types.ModeNormal, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestOpenByIDCleansSubmittedText(t *testing.T) {
	ctx := fakeContext{total: 11}
	h := New()

	h.HandleKey(runes(":"), ctx)
	h.HandleKey(runes("#"), ctx)
	h.HandleKey(runes("7"), ctx)
	h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "7", Mode: types.ModeOpenByID}}, actions)
}

func TestOpenByIDEmptySubmitCancels(t *testing.T) {
	ctx := fakeContext{total: 11}
	h := New()

	h.HandleKey(runes("o"), ctx)
	h.HandleKey(runes("#"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
