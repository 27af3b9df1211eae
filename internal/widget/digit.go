package widget

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/timefield/internal/logging"
)

// ErrInvalidInput marks a candidate that is not an integer or falls outside
// the field's bounds. It never escapes an operation; the field reverts and
// keeps the error for inspection via Err.
var ErrInvalidInput = errors.New("invalid input")

// KeyHandler is a directional key or button callback. The returned command,
// if any, is handed back to the Bubble Tea runtime.
type KeyHandler func() tea.Cmd

// State is the interactive state of a widget.
type State int

const (
	StateNormal State = iota
	StateDisabled
)

// String returns the state name used in config files.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts a config value to a State.
func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return StateNormal, nil
	case "disabled":
		return StateDisabled, nil
	default:
		return StateNormal, fmt.Errorf("unknown state %q", s)
	}
}

// Bound returns a pointer to v, for the optional bounds of DigitConfig.
func Bound(v int) *int {
	return &v
}

// DigitConfig configures a DigitField. Nil bounds and a zero MaxLength mean
// unbounded.
type DigitConfig struct {
	Name      string // Used in log entries
	MaxValue  *int
	MinValue  *int
	MaxLength int
	Default   int

	OnLeft  KeyHandler
	OnRight KeyHandler
	OnUp    KeyHandler
	OnDown  KeyHandler

	Theme Theme
}

// DigitField is a single-line entry that only ever displays an integer within
// its bounds, zero padded to MaxLength. Edits that would break that are
// rolled back to the last valid value.
type DigitField struct {
	name      string
	maxValue  *int
	minValue  *int
	maxLength int

	prev  int // last value that passed validation; the text always renders it
	err   error
	state State

	onLeft  KeyHandler
	onRight KeyHandler
	onUp    KeyHandler
	onDown  KeyHandler

	theme Theme
	input textinput.Model
}

// NewDigitField creates a DigitField holding cfg.Default. A default outside
// the bounds starts the field at the nearest bound instead.
func NewDigitField(cfg DigitConfig) *DigitField {
	ti := textinput.New()
	ti.Prompt = ""
	// Paste goes through insert so the clipboard text is validated.
	ti.KeyMap.Paste.SetEnabled(false)

	f := &DigitField{
		name:      cfg.Name,
		maxValue:  cfg.MaxValue,
		minValue:  cfg.MinValue,
		maxLength: cfg.MaxLength,
		onLeft:    cfg.OnLeft,
		onRight:   cfg.OnRight,
		onUp:      cfg.OnUp,
		onDown:    cfg.OnDown,
		theme:     cfg.Theme,
		input:     ti,
	}
	if f.name == "" {
		f.name = "digit"
	}

	f.prev = f.clamp(cfg.Default)
	f.setText(f.render(f.prev))
	f.SetValue(cfg.Default)
	f.refreshStyle()

	return f
}

// Name returns the name given in DigitConfig.
func (f *DigitField) Name() string { return f.name }

// Bounds returns the configured lower and upper bounds; nil means unbounded.
func (f *DigitField) Bounds() (minValue, maxValue *int) {
	return f.minValue, f.maxValue
}

// MaxLength returns the display width, 0 when unbounded.
func (f *DigitField) MaxLength() int { return f.maxLength }

// Value returns the current integer.
func (f *DigitField) Value() int { return f.prev }

// Text returns the displayed text.
func (f *DigitField) Text() string { return f.input.Value() }

// Err returns why the most recent candidate was rejected, or nil if it was
// accepted.
func (f *DigitField) Err() error { return f.err }

// SetValue attempts to set v. Out-of-range values leave the field unchanged.
func (f *DigitField) SetValue(v int) {
	f.apply(strconv.Itoa(v))
}

// SetText attempts to set the raw candidate text s, exactly as if it had been
// typed over the field's contents.
func (f *DigitField) SetText(s string) {
	f.apply(s)
}

// SetOnLeft registers the left key callback.
func (f *DigitField) SetOnLeft(h KeyHandler) { f.onLeft = h }

// SetOnRight registers the right key callback.
func (f *DigitField) SetOnRight(h KeyHandler) { f.onRight = h }

// SetOnUp registers the up key callback.
func (f *DigitField) SetOnUp(h KeyHandler) { f.onUp = h }

// SetOnDown registers the down key callback.
func (f *DigitField) SetOnDown(h KeyHandler) { f.onDown = h }

// State returns whether the field accepts key input.
func (f *DigitField) State() State { return f.state }

// SetState enables or disables key input. Programmatic sets still apply.
func (f *DigitField) SetState(s State) {
	f.state = s
	f.refreshStyle()
}

// Focus gives the field input focus.
func (f *DigitField) Focus() tea.Cmd {
	cmd := f.input.Focus()
	f.refreshStyle()
	return cmd
}

// Blur removes input focus.
func (f *DigitField) Blur() {
	f.input.Blur()
	f.refreshStyle()
}

// Focused reports whether the field holds input focus.
func (f *DigitField) Focused() bool { return f.input.Focused() }

// Position returns the caret index.
func (f *DigitField) Position() int { return f.input.Position() }

// SetCursor moves the caret, clamped to the text.
func (f *DigitField) SetCursor(pos int) { f.input.SetCursor(pos) }

// CursorStart moves the caret before the first character.
func (f *DigitField) CursorStart() { f.input.CursorStart() }

// CursorEnd moves the caret after the last character.
func (f *DigitField) CursorEnd() { f.input.CursorEnd() }

// AtStart reports whether the caret is at index 0.
func (f *DigitField) AtStart() bool { return f.input.Position() == 0 }

// AtEnd reports whether the caret is after the last character.
func (f *DigitField) AtEnd() bool {
	return f.input.Position() == len([]rune(f.input.Value()))
}

// Width is the number of cells View occupies: the text plus one caret cell.
func (f *DigitField) Width() int {
	if f.maxLength > 0 {
		return f.maxLength + 1
	}
	return lipgloss.Width(f.input.Value()) + 1
}

// Init implements the Bubble Tea component contract.
func (f *DigitField) Init() tea.Cmd { return nil }

// Update handles key input. Directional keys run their callback first; left
// and right then move the caret as usual if the field still has focus. Any
// other edit, pasted text included, is validated once it has been applied.
func (f *DigitField) Update(msg tea.Msg) (*DigitField, tea.Cmd) {
	switch msg := msg.(type) {
	case PasteMsg:
		if msg.Target == f && f.input.Focused() && f.state != StateDisabled {
			f.insert(msg.Text)
		}
		return f, nil
	case PasteErrMsg:
		if msg.Target == f {
			f.err = msg.Err
			logging.Warn("Clipboard read failed", zap.String("field", f.name), zap.Error(msg.Err))
		}
		return f, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		before := f.input.Value()
		caret := f.input.Position()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if after := f.input.Value(); after != before {
			if !f.apply(after) {
				f.input.SetCursor(caret)
			}
		}
		return f, cmd
	}
	if !f.input.Focused() || f.state == StateDisabled {
		return f, nil
	}
	if keyMsg.Type == tea.KeyCtrlV {
		return f, f.paste()
	}

	var cmds []tea.Cmd
	switch keyMsg.Type {
	case tea.KeyUp:
		return f, fire(f.onUp)
	case tea.KeyDown:
		return f, fire(f.onDown)
	case tea.KeyLeft:
		cmds = append(cmds, fire(f.onLeft))
	case tea.KeyRight:
		cmds = append(cmds, fire(f.onRight))
	}
	if !f.input.Focused() {
		return f, tea.Batch(cmds...)
	}

	before := f.input.Value()
	caret := f.input.Position()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(keyMsg)
	cmds = append(cmds, cmd)

	if after := f.input.Value(); after != before {
		if !f.apply(after) {
			f.input.SetCursor(caret)
		}
	}

	return f, tea.Batch(cmds...)
}

// View renders the field padded to a fixed cell width.
func (f *DigitField) View() string {
	return lipgloss.NewStyle().Width(f.Width()).Render(f.input.View())
}

func fire(h KeyHandler) tea.Cmd {
	if h == nil {
		return nil
	}
	return h()
}

// apply runs validation on candidate and either commits it or restores the
// previous valid rendering. Returns whether the candidate was accepted.
func (f *DigitField) apply(candidate string) bool {
	v, err := f.parse(candidate)
	if err != nil {
		f.err = err
		restored := f.render(f.prev)
		f.setText(restored)
		logging.LogInputRejected(f.name, candidate, restored, err)
		return false
	}

	f.err = nil
	f.prev = v
	rendered := f.render(v)
	f.setText(rendered)
	logging.LogValueCommitted(f.name, v, rendered)
	return true
}

func (f *DigitField) parse(text string) (int, error) {
	if f.maxLength > 0 {
		if r := []rune(text); len(r) > f.maxLength {
			text = string(r[:f.maxLength])
		}
	}

	v := 0
	if text != "" {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, text)
		}
		v = n
	}

	if f.maxValue != nil && v > *f.maxValue {
		return 0, fmt.Errorf("%w: %d is above maximum %d", ErrInvalidInput, v, *f.maxValue)
	}
	if f.minValue != nil && v < *f.minValue {
		return 0, fmt.Errorf("%w: %d is below minimum %d", ErrInvalidInput, v, *f.minValue)
	}
	return v, nil
}

func (f *DigitField) render(v int) string {
	return zeroPad(v, f.maxLength)
}

// setText replaces the text and keeps the caret where it was, clamped.
func (f *DigitField) setText(s string) {
	pos := f.input.Position()
	f.input.SetValue(s)
	f.input.SetCursor(pos)
}

func (f *DigitField) clamp(v int) int {
	if f.maxValue != nil && v > *f.maxValue {
		return *f.maxValue
	}
	if f.minValue != nil && v < *f.minValue {
		return *f.minValue
	}
	return v
}

func (f *DigitField) refreshStyle() {
	style := f.theme.Field
	switch {
	case f.state == StateDisabled:
		style = f.theme.Disabled
	case f.input.Focused():
		style = f.theme.FocusedField
	}
	f.input.TextStyle = style
	f.input.Cursor.TextStyle = style
}

// zeroPad renders v left-padded with zeros to width, keeping a leading minus
// sign in front of the padding. Wider values are returned as is.
func zeroPad(v, width int) string {
	s := strconv.Itoa(v)
	if width <= 0 || len(s) >= width {
		return s
	}
	if v < 0 {
		return "-" + strings.Repeat("0", width-len(s)) + s[1:]
	}
	return strings.Repeat("0", width-len(s)) + s
}
