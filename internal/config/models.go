package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/timefield/internal/widget"
)

// CurrentVersion is the settings file format version this build reads.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version     int           `yaml:"version"`
	DefaultTime string        `yaml:"default_time,omitempty"` // HH:MM:SS; empty means the current time
	Mouse       bool          `yaml:"mouse"`                  // Enable mouse for spin buttons and field focus
	Theme       *ThemeColours `yaml:"theme,omitempty"`
	Options     *WidgetOpts   `yaml:"options,omitempty"`
}

// ThemeColours is the palette the widget theme is built from.
type ThemeColours struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Accent     string `yaml:"accent,omitempty"`
	Muted      string `yaml:"muted,omitempty"`
}

// WidgetOpts are attribute overrides propagated through the time field's
// children after construction. Unset fields leave the theme alone.
type WidgetOpts struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       *bool  `yaml:"bold,omitempty"`
	State      string `yaml:"state,omitempty"`  // normal, disabled
	Border     string `yaml:"border,omitempty"` // normal, rounded, thick, double, none
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	p := widget.DefaultPalette()
	return &Settings{
		Version: CurrentVersion,
		Mouse:   true,
		Theme: &ThemeColours{
			Foreground: string(p.Foreground),
			Background: string(p.Background),
			Accent:     string(p.Accent),
			Muted:      string(p.Muted),
		},
	}
}

// Palette returns the theme colours, falling back to the default palette
// for any colour left empty.
func (s *Settings) Palette() widget.Palette {
	p := widget.DefaultPalette()
	if s.Theme == nil {
		return p
	}
	if s.Theme.Foreground != "" {
		p.Foreground = lipgloss.Color(s.Theme.Foreground)
	}
	if s.Theme.Background != "" {
		p.Background = lipgloss.Color(s.Theme.Background)
	}
	if s.Theme.Accent != "" {
		p.Accent = lipgloss.Color(s.Theme.Accent)
	}
	if s.Theme.Muted != "" {
		p.Muted = lipgloss.Color(s.Theme.Muted)
	}
	return p
}

// Clock returns the configured default time, or nil to use the current time.
func (s *Settings) Clock() (*widget.Clock, error) {
	if s.DefaultTime == "" {
		return nil, nil
	}
	c, err := widget.ParseClock(s.DefaultTime)
	if err != nil {
		return nil, fmt.Errorf("default_time: %w", err)
	}
	return &c, nil
}

// WidgetOptions converts the options section to widget.Options.
func (s *Settings) WidgetOptions() (widget.Options, error) {
	var o widget.Options
	if s.Options == nil {
		return o, nil
	}
	if s.Options.Foreground != "" {
		o.Foreground = widget.Color(s.Options.Foreground)
	}
	if s.Options.Background != "" {
		o.Background = widget.Color(s.Options.Background)
	}
	o.Bold = s.Options.Bold
	if s.Options.State != "" {
		st, err := widget.ParseState(s.Options.State)
		if err != nil {
			return widget.Options{}, fmt.Errorf("options.state: %w", err)
		}
		o.State = &st
	}
	if s.Options.Border != "" {
		b, err := widget.ParseBorder(s.Options.Border)
		if err != nil {
			return widget.Options{}, fmt.Errorf("options.border: %w", err)
		}
		o.Border = &b
	}
	return o, nil
}

// Validate checks every field that can be malformed.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if _, err := s.Clock(); err != nil {
		return err
	}
	if _, err := s.WidgetOptions(); err != nil {
		return err
	}
	return nil
}
