package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sigep/internal/core"
)

// ViewerKeyMap defines the key bindings for the scene viewer.
type ViewerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	RotateCCW key.Binding
	RotateCW  key.Binding
	Next      key.Binding
	Prev      key.Binding
	Spin      key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.RotateCCW, k.RotateCW, k.Spin, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.RotateCCW, k.RotateCW, k.Spin, k.Reset},
		{k.Next, k.Prev, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "h"),
			key.WithHelp("a/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "l"),
			key.WithHelp("d/l", "move right"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "rotate +"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "rotate -"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next shape"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev shape"),
		),
		Spin: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "spin"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "unrotate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a viewer action.
func (k ViewerKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.Next):
		return core.ActionNextShape
	case key.Matches(msg, k.Prev):
		return core.ActionPrevShape
	case key.Matches(msg, k.Spin):
		return core.ActionToggleSpin
	case key.Matches(msg, k.Reset):
		return core.ActionResetShape
	case key.Matches(msg, k.Help):
		return core.ActionToggleHelp
	}
	return core.ActionNone
}
