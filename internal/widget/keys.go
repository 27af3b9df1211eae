package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a TimeField. Arrow keys are handled by
// the digit fields themselves and appear here only for help text.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Increment key.Binding
	Decrement key.Binding
	NextField key.Binding
	PrevField key.Binding
	SpinUp    key.Binding
	SpinDown  key.Binding
}

// DefaultKeyMap returns the standard TimeField bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev field at start"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next field at end"),
		),
		Increment: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "decrement"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		SpinUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", UpGlyph),
		),
		SpinDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", DownGlyph),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.NextField}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.SpinUp, k.SpinDown},
		{k.Left, k.Right, k.NextField, k.PrevField},
	}
}
