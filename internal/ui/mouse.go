package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/ui/input"
	inputtypes "picgrid/internal/ui/input/types"
)

// handleMouse routes mouse events. Only normal mode and grab mode react to the mouse.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.state.MouseEnabled || m.state.Width == 0 {
		return nil
	}
	var dropCmd tea.Cmd
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNormal:
	case inputtypes.ModeGrab:
		// A click puts down the keyboard-grabbed image, then acts as usual
		if msg.Action != tea.MouseActionPress || msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return nil
		}
		dropCmd = m.dropKeyboardGrab()
	default:
		return nil
	}
	return tea.Batch(dropCmd, m.handlePointer(msg))
}

// dropKeyboardGrab leaves grab mode with the image where it currently sits
func (m *Model) dropKeyboardGrab() tea.Cmd {
	cmd := m.processAction(inputtypes.GrabDropAction{})
	ctx := &input.ModelContext{State: m.state}
	for _, action := range m.inputHandler.SetMode(inputtypes.ModeNormal, ctx) {
		m.processAction(action)
	}
	return cmd
}

// handlePointer implements drag and click handling. A drag reorders on
// every hover over another card, so the gallery is always fully ordered.
func (m *Model) handlePointer(msg tea.MouseMsg) tea.Cmd {
	// Clicking anywhere dismisses the preview
	if _, open := m.state.Gallery.Preview(); open {
		if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
			return m.cmdExecutor.ExecuteClosePreview()
		}
		return nil
	}
	if m.state.ShowFullHelp {
		if msg.Action == tea.MouseActionPress {
			m.state.ShowFullHelp = false
		}
		return nil
	}

	layout := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.processAction(inputtypes.NavigateAction{Direction: "up"})
		case tea.MouseButtonWheelDown:
			return m.processAction(inputtypes.NavigateAction{Direction: "down"})
		case tea.MouseButtonLeft:
			index, ok := layout.HitTest(msg.X, msg.Y)
			if !ok {
				return nil
			}
			m.state.Cursor = index
			m.state.Dragging = true
			m.state.DragIndex = index
			m.state.DragMoved = false
		case tea.MouseButtonRight:
			index, ok := layout.HitTest(msg.X, msg.Y)
			if !ok {
				return nil
			}
			m.state.Cursor = index
			return m.cmdExecutor.ExecuteToggleSelection(index)
		}
		return nil

	case tea.MouseActionMotion:
		if !m.state.Dragging {
			return nil
		}
		index, ok := layout.HitTest(msg.X, msg.Y)
		if !ok || index == m.state.DragIndex {
			return nil
		}
		cmd := m.cmdExecutor.ExecuteReorder(m.state.DragIndex, index)
		if m.state.Cursor == index {
			m.state.DragIndex = index
			m.state.DragMoved = true
		}
		return cmd

	case tea.MouseActionRelease:
		if !m.state.Dragging {
			return nil
		}
		from := m.state.DragIndex
		moved := m.state.DragMoved
		m.state.EndDrag()
		if !moved {
			return m.cmdExecutor.ExecuteOpenPreview(from)
		}
		if img, err := m.state.Gallery.At(from); err == nil {
			m.state.SetStatus(fmt.Sprintf("Dropped image #%d at position %d", img.ID, from+1))
		}
		m.ensureCursorVisible()
		return nil
	}
	return nil
}
