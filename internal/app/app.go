package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/timefield/internal/layout"
	"github.com/muurk/timefield/internal/logging"
	"github.com/muurk/timefield/internal/ui"
	"github.com/muurk/timefield/internal/widget"
)

// DefaultTitle is shown above the picker when Config.Title is empty.
const DefaultTitle = "Set time"

// Config configures the picker program.
type Config struct {
	Title   string
	Default *widget.Clock    // Nil means the current local time
	Now     func() time.Time // Defaults to time.Now
	Theme   widget.Theme
	Options *widget.Options // Propagated through the time field after construction
	Width   int             // Screen size assumed until the first WindowSizeMsg
	Height  int
}

// Result is what the user left the picker with.
type Result struct {
	Clock    widget.Clock
	Accepted bool // False when the user cancelled
}

// keyMap defines the program level key bindings
type keyMap struct {
	Accept key.Binding
	Cancel key.Binding
	Now    key.Binding
	Help   key.Binding
	field  widget.KeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.field.ShortHelp(), k.Accept, k.Cancel, k.Help)
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.field.FullHelp(), []key.Binding{k.Now, k.Accept, k.Cancel, k.Help})
}

func newKeyMap(field widget.KeyMap) keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Now: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		field: field,
	}
}

// Model is the top-level picker model. It owns one TimeField and keeps it
// centered on screen.
type Model struct {
	title string
	field *widget.TimeField
	now   func() time.Time

	help help.Model
	keys keyMap

	width  int
	height int

	accepted  bool
	cancelled bool
}

// New creates the picker with the hour field focused.
func New(cfg Config) *Model {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}

	field := widget.NewTimeField(widget.TimeConfig{
		Default: cfg.Default,
		Now:     now,
		Theme:   cfg.Theme,
	})
	if cfg.Options != nil {
		field.Configure(*cfg.Options)
	}
	field.Focus()

	h := help.New()
	h.Styles.ShortKey = ui.HelpStyle.Bold(true)
	h.Styles.ShortDesc = ui.HelpStyle
	h.Styles.FullKey = ui.HelpStyle.Bold(true)
	h.Styles.FullDesc = ui.HelpStyle

	m := &Model{
		title:  title,
		field:  field,
		now:    now,
		help:   h,
		keys:   newKeyMap(field.Keys()),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.place()

	logging.Info("Picker started", zap.String("time", field.Time().String()))
	return m
}

// Field returns the hosted time field.
func (m *Model) Field() *widget.TimeField { return m.field }

// Result returns the picked time and whether it was accepted.
func (m *Model) Result() Result {
	return Result{Clock: m.field.Time(), Accepted: m.accepted}
}

// Init starts the caret blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles program keys and hands everything else to the time field.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.place()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			logging.Info("Picker cancelled")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			logging.Info("Picker accepted", zap.String("time", m.field.Time().String()))
			return m, tea.Quit
		case key.Matches(msg, m.keys.Now):
			m.field.SetTimeOf(m.now())
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.place()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// View renders the title, the time field and the help centered on screen.
func (m *Model) View() string {
	if m.accepted || m.cancelled {
		return ""
	}
	p := m.arrange()

	indent := func(s string, n int) string {
		return lipgloss.NewStyle().MarginLeft(p.blockX + n).Render(s)
	}
	lines := []string{
		indent(m.titleView(), p.titleX),
		"",
		indent(m.field.View(), p.fieldX),
		"",
		indent(m.helpView(), p.helpX),
	}
	return strings.Repeat("\n", p.blockY) + strings.Join(lines, "\n")
}

func (m *Model) titleView() string {
	return ui.TitleStyle.Render(m.title)
}

func (m *Model) helpView() string {
	return m.help.View(m.keys)
}

// placement is where each part of the view starts. Offsets inside the block
// are relative to blockX.
type placement struct {
	blockX, blockY int
	titleX         int
	fieldX         int
	helpX          int
}

// Rows above the field inside the block: title and a blank line.
const fieldRow = 2

func (m *Model) arrange() placement {
	fw, fh := m.field.Size()
	titleW := lipgloss.Width(m.titleView())
	hv := m.helpView()
	helpW, helpH := lipgloss.Width(hv), lipgloss.Height(hv)

	blockW := max(fw, titleW, helpW)
	blockH := fieldRow + fh + 1 + helpH
	x, y := layout.CenterOffset(m.width, m.height, blockW, blockH)

	return placement{
		blockX: x,
		blockY: y,
		titleX: (blockW - titleW) / 2,
		fieldX: (blockW - fw) / 2,
		helpX:  (blockW - helpW) / 2,
	}
}

// place tells the field where it is drawn so mouse presses can be mapped.
func (m *Model) place() {
	p := m.arrange()
	m.field.SetOrigin(p.blockX+p.fieldX, p.blockY+fieldRow)
}

// Run starts the picker full screen and blocks until the user accepts or
// cancels.
func Run(cfg Config, mouse bool) (Result, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = ui.GetTerminalSize()
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(New(cfg), opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return Result{}, fmt.Errorf("picker returned unexpected model %T", final)
	}
	return m.Result(), nil
}
