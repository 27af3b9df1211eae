package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spin button glyphs
const (
	UpGlyph   = "▲"
	DownGlyph = "▼"
)

// SpinControl is a pair of stacked buttons that trigger caller supplied
// callbacks. It keeps no value of its own.
type SpinControl struct {
	onUp   KeyHandler
	onDown KeyHandler
	state  State
	theme  Theme
	frame  lipgloss.Style // Backdrop behind the buttons
}

// NewSpinControl creates a SpinControl calling onUp and onDown on activation.
func NewSpinControl(onUp, onDown KeyHandler, theme Theme) *SpinControl {
	return &SpinControl{
		onUp:   onUp,
		onDown: onDown,
		theme:  theme,
		frame:  lipgloss.NewStyle(),
	}
}

// PressUp activates the up button.
func (s *SpinControl) PressUp() tea.Cmd {
	if s.state == StateDisabled {
		return nil
	}
	return fire(s.onUp)
}

// PressDown activates the down button.
func (s *SpinControl) PressDown() tea.Cmd {
	if s.state == StateDisabled {
		return nil
	}
	return fire(s.onDown)
}

// State returns whether the buttons respond to activation.
func (s *SpinControl) State() State { return s.state }

// Width is the number of cells View occupies.
func (s *SpinControl) Width() int { return lipgloss.Width(UpGlyph) }

// Height is the number of rows View occupies, one per button.
func (s *SpinControl) Height() int { return 2 }

// Init implements the Bubble Tea component contract.
func (s *SpinControl) Init() tea.Cmd { return nil }

// Update activates a button on a left mouse press. Coordinates are relative
// to the top-left cell of the control.
func (s *SpinControl) Update(msg tea.Msg) (*SpinControl, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !isLeftPress(mouse) {
		return s, nil
	}
	if mouse.X < 0 || mouse.X >= s.Width() {
		return s, nil
	}
	switch mouse.Y {
	case 0:
		return s, s.PressUp()
	case 1:
		return s, s.PressDown()
	}
	return s, nil
}

// View renders the up button above the down button.
func (s *SpinControl) View() string {
	style := s.theme.Button
	if s.state == StateDisabled {
		style = scaleDown(s.theme.Disabled)
	}
	return s.frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		style.Render(UpGlyph),
		style.Render(DownGlyph),
	))
}

func isLeftPress(m tea.MouseMsg) bool {
	return m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft
}
