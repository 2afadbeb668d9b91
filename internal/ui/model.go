package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/config"
	"picgrid/internal/eventbus"
	"picgrid/internal/gallery"
	"picgrid/internal/ui/commands"
	"picgrid/internal/ui/input"
	inputtypes "picgrid/internal/ui/input/types"
	"picgrid/internal/ui/logic"
	"picgrid/internal/ui/state"
	"picgrid/internal/ui/views"
)

// statusTimeout is how long informational status messages stay visible
const statusTimeout = 4 * time.Second

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	state *state.AppState // centralized state

	help        help.Model
	keys        views.KeyMap
	inPagerMode bool // status timers are re-armed while the pager owns the terminal
	statusSeq   int  // bumps whenever a new status message is shown

	// Handlers
	navigator    *logic.Navigator   // grid navigation and viewport handler
	renderer     *views.Renderer    // view renderer
	cmdExecutor  *commands.Executor // command executor
	inputHandler *input.Handler     // input handling
	helpOps      *HelpOps           // help pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model seeded from the configured images
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	g, err := gallery.New(cfg.SeedImages())
	if err != nil {
		return nil, fmt.Errorf("failed to seed gallery: %w", err)
	}

	appState := state.NewAppState(g, cfg.UISettings.Columns, cfg.UISettings.Theme)
	appState.ConfirmDelete = cfg.UISettings.ConfirmDelete
	appState.MouseEnabled = cfg.UISettings.Mouse

	m := &Model{
		bus:          bus,
		state:        appState,
		help:         help.New(),
		keys:         views.DefaultKeyMap(),
		navigator:    logic.NewNavigator(appState.Columns),
		renderer:     views.NewRenderer(appState.Theme),
		cmdExecutor:  commands.NewExecutor(appState, bus),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}
	m.syncNavigatorState()
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.SetColumns(views.FitColumns(m.state.Width, m.state.Columns))
	m.navigator.UpdateState(m.state.Gallery.Len(), m.state.ViewportOffset, m.state.ViewportRows)
}

// ensureCursorVisible scrolls the grid so the cursor row is on screen
func (m *Model) ensureCursorVisible() {
	m.state.ClampCursor()
	m.syncNavigatorState()
	m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.Cursor)
}

// layout returns the card geometry for the current frame
func (m *Model) layout() views.Layout {
	return views.NewLayout(m.state.Width, m.state.Height, m.navigator.Columns(), m.state.Gallery.Len(), m.state.ViewportOffset)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportRows = views.ViewportRows(msg.Height)
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		// The inline help popup swallows the next key
		if m.state.ShowFullHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			default:
				m.state.ShowFullHelp = false
				return m, nil
			}
		}

		ctx := &input.ModelContext{State: m.state}
		status := m.statusSnapshot()

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if clear := m.scheduleStatusClear(status); clear != nil {
			cmds = append(cmds, clear)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		status := m.statusSnapshot()
		cmd := m.handleMouse(msg)
		return m, tea.Batch(cmd, m.scheduleStatusClear(status))

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	viewState := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		Theme:          m.state.Theme,
		Snapshot:       m.state.Gallery.Snapshot(),
		Cursor:         m.state.Cursor,
		Columns:        m.navigator.Columns(),
		ViewportOffset: m.state.ViewportOffset,
		Dragging:       m.state.Dragging && m.state.DragMoved,
		DragIndex:      m.state.DragIndex,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowFullHelp:   m.state.ShowFullHelp,
		HelpModel:      m.help,
		Keys:           m.keys,
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeGrab:
		viewState.InputMode = "grab"
		viewState.Grabbing = true
	case inputtypes.ModeDeleteConfirm:
		viewState.InputMode = "confirm"
	case inputtypes.ModeOpenByID:
		viewState.InputMode = "open"
		viewState.Prompt = m.inputHandler.Prompt()
		if ti := m.inputHandler.TextInput(); ti != nil {
			viewState.TextInput = ti.View()
		}
	}

	return m.renderer.Render(viewState)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.Cursor = m.navigator.Step(m.state.Cursor, a.Direction)
		m.ensureCursorVisible()
		return nil

	case inputtypes.SelectAction:
		return m.cmdExecutor.ExecuteToggleSelection(m.resolveIndex(a.Index))

	case inputtypes.SelectAllAction:
		return m.cmdExecutor.ExecuteSelectAll()

	case inputtypes.DeselectAllAction:
		return m.cmdExecutor.ExecuteDeselectAll()

	case inputtypes.DeleteSelectedAction:
		// Indexes held by an unfinished mouse drag do not survive a delete
		m.state.EndDrag()
		cmd := m.cmdExecutor.ExecuteDeleteSelected()
		m.ensureCursorVisible()
		return cmd

	case inputtypes.StarAction:
		return m.cmdExecutor.ExecuteStar()

	case inputtypes.OpenPreviewAction:
		return m.cmdExecutor.ExecuteOpenPreview(m.resolveIndex(a.Index))

	case inputtypes.ClosePreviewAction:
		return m.cmdExecutor.ExecuteClosePreview()

	case inputtypes.PreviewStepAction:
		cmd := m.cmdExecutor.ExecutePreviewStep(a.Delta)
		m.ensureCursorVisible()
		return cmd

	case inputtypes.GrabStartAction:
		img, ok := m.state.CurrentImage()
		if !ok {
			return nil
		}
		m.state.EndDrag()
		m.state.Grabbing = true
		m.state.GrabOrigin = m.state.Cursor
		m.state.SetStatus(fmt.Sprintf("Moving image #%d: arrows move, enter drops, esc cancels", img.ID))
		return nil

	case inputtypes.GrabMoveAction:
		if !m.state.Grabbing {
			return nil
		}
		m.syncNavigatorState()
		target := m.navigator.Step(m.state.Cursor, a.Direction)
		if target == m.state.Cursor {
			return nil
		}
		cmd := m.cmdExecutor.ExecuteReorder(m.state.Cursor, target)
		m.ensureCursorVisible()
		return cmd

	case inputtypes.GrabDropAction:
		if !m.state.Grabbing {
			return nil
		}
		m.state.Grabbing = false
		if img, ok := m.state.CurrentImage(); ok {
			m.state.SetStatus(fmt.Sprintf("Dropped image #%d at position %d", img.ID, m.state.Cursor+1))
		}
		return nil

	case inputtypes.GrabCancelAction:
		if !m.state.Grabbing {
			return nil
		}
		var cmd tea.Cmd
		if m.state.Cursor != m.state.GrabOrigin {
			cmd = m.cmdExecutor.ExecuteReorder(m.state.Cursor, m.state.GrabOrigin)
		}
		m.state.Grabbing = false
		m.state.SetStatus("Move cancelled")
		m.ensureCursorVisible()
		return cmd

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeOpenByID {
			cmd := m.cmdExecutor.ExecuteOpenByID(a.Text)
			m.ensureCursorVisible()
			return cmd
		}
		return nil

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The text input renders itself
		return nil

	case inputtypes.ToggleThemeAction:
		cmd := m.cmdExecutor.ExecuteToggleTheme()
		m.renderer.SetTheme(m.state.Theme)
		return cmd

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowFullHelp = !m.state.ShowFullHelp
			return nil
		}
		return m.fetchHelpPager(RenderHelpContent(m.keys))

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Printf("Unhandled action: %s", action.Type())
		return nil
	}
}

// resolveIndex maps -1 to the cursor position
func (m *Model) resolveIndex(index int) int {
	if index < 0 {
		return m.state.Cursor
	}
	return index
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Fall back to the inline help popup
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ShowFullHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if m.inPagerMode && msg.seq == m.statusSeq {
			return m, clearStatusAfter(msg.seq)
		}
		if msg.seq == m.statusSeq && !m.state.StatusIsError {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent reacts to events that originate outside the UI goroutine
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	status := m.statusSnapshot()
	switch e := event.(type) {
	case eventbus.ConfigChangedEvent:
		m.state.SetStatus(fmt.Sprintf("Settings saved to %s", e.Path))
	case eventbus.ErrorEvent:
		m.state.SetError(fmt.Sprintf("%s: %v", e.Message, e.Err))
	default:
		return nil
	}
	return m.scheduleStatusClear(status)
}

type statusState struct {
	message string
	isError bool
}

func (m *Model) statusSnapshot() statusState {
	return statusState{message: m.state.StatusMessage, isError: m.state.StatusIsError}
}

// scheduleStatusClear starts the timeout for a status message set since before
func (m *Model) scheduleStatusClear(before statusState) tea.Cmd {
	after := m.statusSnapshot()
	if after == before || after.message == "" {
		return nil
	}
	m.statusSeq++
	if after.isError {
		return nil
	}
	return clearStatusAfter(m.statusSeq)
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
