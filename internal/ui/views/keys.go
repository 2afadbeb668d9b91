package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap describes the key bindings shown in the help line and help pager
type KeyMap struct {
	Move       key.Binding
	Select     key.Binding
	SelectAll  key.Binding
	Clear      key.Binding
	Open       key.Binding
	OpenByID   key.Binding
	Grab       key.Binding
	Drop       key.Binding
	CancelGrab key.Binding
	Delete     key.Binding
	Star       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings used in normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move:       key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→/hjkl", "move")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:  key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "select/deselect all")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		OpenByID:   key.NewBinding(key.WithKeys("o", ":"), key.WithHelp("o", "open by id")),
		Grab:       key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "grab")),
		Drop:       key.NewBinding(key.WithKeys("enter", " ", "m"), key.WithHelp("enter", "drop")),
		CancelGrab: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel move")),
		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete selected")),
		Star:       key.NewBinding(key.WithKeys("s", "*"), key.WithHelp("s", "star")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("gg", "first image")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last image")),
		Theme:      key.NewBinding(key.WithKeys("t", "T"), key.WithHelp("t", "theme")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Open, k.Grab, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Top, k.Bottom, k.Open, k.OpenByID},
		{k.Select, k.SelectAll, k.Clear, k.Delete},
		{k.Grab, k.Drop, k.CancelGrab, k.Star},
		{k.Theme, k.Help, k.Quit},
	}
}

// GrabHelp returns the bindings shown while a card is grabbed
func (k KeyMap) GrabHelp() []key.Binding {
	return []key.Binding{k.Move, k.Drop, k.CancelGrab}
}
