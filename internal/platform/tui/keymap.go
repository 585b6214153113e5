package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-cavern/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Dash  key.Binding
	// DashLeft and DashRight turn and dash in one press.
	DashLeft  key.Binding
	DashRight key.Binding
	Shoot     key.Binding
	Start     key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Shot      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Dash, k.Shoot, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Dash, k.Shoot},
		{k.Start, k.Pause, k.Restart},
		{k.Shot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "jump"),
		),
		Dash: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z/shift+←→", "dash"),
		),
		DashLeft:  key.NewBinding(key.WithKeys("shift+left")),
		DashRight: key.NewBinding(key.WithKeys("shift+right")),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "shoot"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to every action it triggers. One key can
// mean several things: space both starts a run and shoots, and the game
// picks whichever applies to its current state.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.DashLeft):
		actions = append(actions, core.ActionLeft, core.ActionDash)
	case key.Matches(msg, k.DashRight):
		actions = append(actions, core.ActionRight, core.ActionDash)
	case key.Matches(msg, k.Dash):
		actions = append(actions, core.ActionDash)
	case key.Matches(msg, k.Left):
		actions = append(actions, core.ActionLeft)
	case key.Matches(msg, k.Right):
		actions = append(actions, core.ActionRight)
	case key.Matches(msg, k.Jump):
		actions = append(actions, core.ActionJump)
	case key.Matches(msg, k.Pause):
		actions = append(actions, core.ActionPause)
	case key.Matches(msg, k.Restart):
		actions = append(actions, core.ActionRestart)
	}

	if key.Matches(msg, k.Shoot) {
		actions = append(actions, core.ActionShoot)
	}
	if key.Matches(msg, k.Start) {
		actions = append(actions, core.ActionStart)
	}
	return actions
}
