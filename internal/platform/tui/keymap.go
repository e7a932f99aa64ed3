package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexcorrupt/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Right     key.Binding
	UpRight   key.Binding
	UpLeft    key.Binding
	Left      key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Select    key.Binding
	Place     key.Binding
	Corrupt   key.Binding
	Cancel    key.Binding
	Letters   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Restart   key.Binding
	Pause     key.Binding
	Help      key.Binding
	Shot      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Place, k.Corrupt, k.Letters, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Select, k.Place, k.Corrupt, k.Cancel},
		{k.Letters, k.Next, k.Prev},
		{k.Restart, k.Pause, k.Shot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("up", "e", "k"),
			key.WithHelp("↑/e", "up-right"),
		),
		UpLeft: key.NewBinding(
			key.WithKeys("w", "y"),
			key.WithHelp("w", "up-left"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("down", "z", "j"),
			key.WithHelp("↓/z", "down-left"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "down-right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/move"),
		),
		Place: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "place"),
		),
		Corrupt: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "corrupt"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Letters: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "letters"),
		),
		Next: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next letter"),
		),
		Prev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev letter"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
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
	keys  KeyMap
	table []struct {
		binding *key.Binding
		action  core.Action
	}
}

// NewKeyMapper creates a new key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	add := func(b *key.Binding, a core.Action) {
		km.table = append(km.table, struct {
			binding *key.Binding
			action  core.Action
		}{b, a})
	}
	add(&km.keys.Right, core.ActionRight)
	add(&km.keys.UpRight, core.ActionUpRight)
	add(&km.keys.UpLeft, core.ActionUpLeft)
	add(&km.keys.Left, core.ActionLeft)
	add(&km.keys.DownLeft, core.ActionDownLeft)
	add(&km.keys.DownRight, core.ActionDownRight)
	add(&km.keys.Select, core.ActionSelect)
	add(&km.keys.Place, core.ActionPlace)
	add(&km.keys.Corrupt, core.ActionCorrupt)
	add(&km.keys.Cancel, core.ActionCancel)
	add(&km.keys.Letters, core.ActionLetters)
	add(&km.keys.Next, core.ActionNext)
	add(&km.keys.Prev, core.ActionPrev)
	add(&km.keys.Restart, core.ActionRestart)
	add(&km.keys.Pause, core.ActionPause)
	add(&km.keys.Quit, core.ActionQuit)
	return km
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, e := range km.table {
		if key.Matches(msg, *e.binding) {
			return e.action, e.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}
