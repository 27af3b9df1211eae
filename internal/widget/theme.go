package widget

import "github.com/charmbracelet/lipgloss"

// Theme is the style set handed to every widget constructor. There is no
// package-level default; callers build one with DefaultTheme or from config.
type Theme struct {
	Frame        lipgloss.Style // Border around the composite
	Field        lipgloss.Style // Unfocused digit text
	FocusedField lipgloss.Style // Digit text of the field holding focus
	Separator    lipgloss.Style // ":" between fields
	Button       lipgloss.Style // Spin buttons
	Disabled     lipgloss.Style // Any part drawn while disabled
}

// Palette is the colour set a Theme is derived from.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

// DefaultPalette matches the colours of the result boxes in internal/ui.
func DefaultPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#7D56F4"),
		Muted:      lipgloss.Color("#626262"),
	}
}

// DefaultTheme builds a Theme from DefaultPalette.
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}

// NewTheme builds a Theme from p. An empty Background leaves the terminal
// background alone.
func NewTheme(p Palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.Foreground)
	if p.Background != "" {
		base = base.Background(p.Background)
	}

	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Muted),
		Field:        base,
		FocusedField: base.Bold(true).Foreground(p.Accent),
		Separator:    base,
		Button:       scaleDown(base),
		Disabled:     lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// scaleDown derives the spin button style from the field style. Terminal
// cells cannot shrink, so smaller means fainter.
func scaleDown(s lipgloss.Style) lipgloss.Style {
	return s.Faint(true)
}
