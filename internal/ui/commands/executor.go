package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/eventbus"
	"picgrid/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteReorder creates and executes a reorder command
func (e *Executor) ExecuteReorder(from, to int) tea.Cmd {
	return NewReorderCommand(e.ctx, from, to).Execute()
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(index int) tea.Cmd {
	return NewToggleSelectionCommand(e.ctx, index).Execute()
}

// ExecuteSelectAll creates and executes a select all command
func (e *Executor) ExecuteSelectAll() tea.Cmd {
	return NewSelectAllCommand(e.ctx).Execute()
}

// ExecuteDeselectAll creates and executes a deselect all command
func (e *Executor) ExecuteDeselectAll() tea.Cmd {
	return NewDeselectAllCommand(e.ctx).Execute()
}

// ExecuteDeleteSelected creates and executes a delete command
func (e *Executor) ExecuteDeleteSelected() tea.Cmd {
	return NewDeleteSelectedCommand(e.ctx).Execute()
}

// ExecuteStar creates and executes a star command
func (e *Executor) ExecuteStar() tea.Cmd {
	return NewStarCommand(e.ctx).Execute()
}

// ExecuteOpenPreview creates and executes an open preview command
func (e *Executor) ExecuteOpenPreview(index int) tea.Cmd {
	return NewOpenPreviewCommand(e.ctx, index).Execute()
}

// ExecuteOpenByID creates and executes an open by id command
func (e *Executor) ExecuteOpenByID(text string) tea.Cmd {
	return NewOpenByIDCommand(e.ctx, text).Execute()
}

// ExecuteClosePreview creates and executes a close preview command
func (e *Executor) ExecuteClosePreview() tea.Cmd {
	return NewClosePreviewCommand(e.ctx).Execute()
}

// ExecutePreviewStep creates and executes a preview step command
func (e *Executor) ExecutePreviewStep(delta int) tea.Cmd {
	return NewPreviewStepCommand(e.ctx, delta).Execute()
}

// ExecuteToggleTheme creates and executes a toggle theme command
func (e *Executor) ExecuteToggleTheme() tea.Cmd {
	return NewToggleThemeCommand(e.ctx).Execute()
}
