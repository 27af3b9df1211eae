package widget

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/timefield/internal/logging"
)

// Separator drawn between the hour, minute and second fields.
const Separator = ":"

// Clock is an (hour, minute, second) triple. It is not validated; each
// component is checked by its own field on SetTime.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ClockOf returns the wall clock reading of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// String renders the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// ParseClock parses "H:M:S". Components are only checked to be integers.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), Separator)
	if len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM:SS", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Clock{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
		vals[i] = v
	}
	return Clock{Hour: vals[0], Minute: vals[1], Second: vals[2]}, nil
}

// TimeConfig configures a TimeField.
type TimeConfig struct {
	Default *Clock           // Nil means the current local time
	Now     func() time.Time // Defaults to time.Now
	Theme   Theme
	Keys    *KeyMap // Defaults to DefaultKeyMap
}

// TimeField is a time-of-day entry built from hour, minute and second digit
// fields and a spin control. Which field is active is read from the fields'
// focus; the composite stores no state of its own for it.
type TimeField struct {
	hour   *DigitField
	minute *DigitField
	second *DigitField
	fields [3]*DigitField
	spin   *SpinControl

	children []child

	frame     lipgloss.Style
	separator lipgloss.Style
	disabled  lipgloss.Style
	sepState  State

	originX int
	originY int

	keys KeyMap
}

// NewTimeField creates a TimeField showing cfg.Default, or the local time.
// No field has focus until Focus is called.
func NewTimeField(cfg TimeConfig) *TimeField {
	t := &TimeField{
		frame:     cfg.Theme.Frame,
		separator: cfg.Theme.Separator,
		disabled:  cfg.Theme.Disabled,
		keys:      DefaultKeyMap(),
	}
	if cfg.Keys != nil {
		t.keys = *cfg.Keys
	}

	digit := func(name string, maxValue int) *DigitField {
		return NewDigitField(DigitConfig{
			Name:      name,
			MaxValue:  Bound(maxValue),
			MinValue:  Bound(0),
			MaxLength: 2,
			OnLeft:    t.LeftPress,
			OnRight:   t.RightPress,
			OnUp:      t.UpPress,
			OnDown:    t.DownPress,
			Theme:     cfg.Theme,
		})
	}
	t.hour = digit("hour", 23)
	t.minute = digit("minute", 59)
	t.second = digit("second", 59)
	t.fields = [3]*DigitField{t.hour, t.minute, t.second}
	t.spin = NewSpinControl(t.UpPress, t.DownPress, cfg.Theme)

	t.children = []child{
		{kind: LabelLike, apply: t.hour.configure},
		{kind: LabelLike, apply: t.configureSeparator},
		{kind: LabelLike, apply: t.minute.configure},
		{kind: LabelLike, apply: t.configureSeparator},
		{kind: LabelLike, apply: t.second.configure},
		{kind: CompositeControl, apply: t.spin.Configure},
	}

	if cfg.Default != nil {
		t.SetTime(*cfg.Default)
	} else {
		now := cfg.Now
		if now == nil {
			now = time.Now
		}
		t.SetTimeOf(now())
	}

	return t
}

// Hour returns the hour field.
func (t *TimeField) Hour() *DigitField { return t.hour }

// Minute returns the minute field.
func (t *TimeField) Minute() *DigitField { return t.minute }

// Second returns the second field.
func (t *TimeField) Second() *DigitField { return t.second }

// Spin returns the spin control.
func (t *TimeField) Spin() *SpinControl { return t.spin }

// Keys returns the key bindings, for help views.
func (t *TimeField) Keys() KeyMap { return t.keys }

// Time returns the entered time.
func (t *TimeField) Time() Clock {
	return Clock{
		Hour:   t.hour.Value(),
		Minute: t.minute.Value(),
		Second: t.second.Value(),
	}
}

// SetTime sets each field independently; a component its field rejects
// leaves that field at its previous value.
func (t *TimeField) SetTime(c Clock) {
	t.hour.SetValue(c.Hour)
	t.minute.SetValue(c.Minute)
	t.second.SetValue(c.Second)
}

// SetTimeOf sets the fields from the wall clock reading of tm.
func (t *TimeField) SetTimeOf(tm time.Time) {
	t.SetTime(ClockOf(tm))
}

// ActiveField returns the field holding focus, or nil.
func (t *TimeField) ActiveField() *DigitField {
	for _, f := range t.fields {
		if f.Focused() {
			return f
		}
	}
	return nil
}

// UpPress increments the active field, wrapping from its maximum to its
// minimum when both bounds are set.
func (t *TimeField) UpPress() tea.Cmd {
	f := t.ActiveField()
	if f == nil {
		return nil
	}
	v := f.Value() + 1
	minValue, maxValue := f.Bounds()
	if minValue != nil && maxValue != nil && v > *maxValue {
		logging.LogWrap(f.Name(), f.Value(), *minValue)
		v = *minValue
	}
	f.SetValue(v)
	return nil
}

// DownPress decrements the active field, wrapping from its minimum to its
// maximum when both bounds are set.
func (t *TimeField) DownPress() tea.Cmd {
	f := t.ActiveField()
	if f == nil {
		return nil
	}
	v := f.Value() - 1
	minValue, maxValue := f.Bounds()
	if minValue != nil && maxValue != nil && v < *minValue {
		logging.LogWrap(f.Name(), f.Value(), *maxValue)
		v = *maxValue
	}
	f.SetValue(v)
	return nil
}

// LeftPress moves focus to the previous field when the caret is at the start
// of the active one. The caret lands at the end of the new field.
func (t *TimeField) LeftPress() tea.Cmd {
	f := t.ActiveField()
	if f == nil || !f.AtStart() {
		return nil
	}
	prev := t.neighbour(f, -1)
	if prev == nil {
		return nil
	}
	cmd := t.moveFocus(f, prev)
	prev.CursorEnd()
	return cmd
}

// RightPress moves focus to the next field when the caret is at the end of
// the active one. The caret lands at the start of the new field.
func (t *TimeField) RightPress() tea.Cmd {
	f := t.ActiveField()
	if f == nil || !f.AtEnd() {
		return nil
	}
	next := t.neighbour(f, 1)
	if next == nil {
		return nil
	}
	cmd := t.moveFocus(f, next)
	next.CursorStart()
	return cmd
}

// Focus gives focus to the hour field.
func (t *TimeField) Focus() tea.Cmd {
	return t.FocusField(t.hour)
}

// FocusField moves focus to f, which must be one of the three fields.
func (t *TimeField) FocusField(f *DigitField) tea.Cmd {
	return t.moveFocus(t.ActiveField(), f)
}

// Blur removes focus from every field.
func (t *TimeField) Blur() {
	for _, f := range t.fields {
		f.Blur()
	}
}

// Focused reports whether any field has focus.
func (t *TimeField) Focused() bool {
	return t.ActiveField() != nil
}

// Configure propagates o to the frame and, through the allow-list of each
// child's kind, to the fields, separators and spin control.
func (t *TimeField) Configure(o Options) {
	fo := o.Only(frameAllowed...)
	if fo.Background != nil {
		t.frame = t.frame.Background(*fo.Background).BorderBackground(*fo.Background)
	}
	if fo.Border != nil {
		t.frame = t.frame.Border(*fo.Border)
	}
	for _, c := range t.children {
		c.apply(o.For(c.kind))
	}
}

// SetOrigin records where the widget's top-left cell is on screen so mouse
// coordinates can be mapped onto its parts.
func (t *TimeField) SetOrigin(x, y int) {
	t.originX, t.originY = x, y
}

// Size returns the rendered width and height.
func (t *TimeField) Size() (int, int) {
	v := t.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}

// Init implements the Bubble Tea component contract.
func (t *TimeField) Init() tea.Cmd { return nil }

// Update routes mouse presses by position and keys to the active field.
func (t *TimeField) Update(msg tea.Msg) (*TimeField, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return t, t.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.keys.NextField):
			return t, t.cycle(1)
		case key.Matches(msg, t.keys.PrevField):
			return t, t.cycle(-1)
		case key.Matches(msg, t.keys.SpinUp):
			return t, t.spin.PressUp()
		case key.Matches(msg, t.keys.SpinDown):
			return t, t.spin.PressDown()
		}
		if f := t.ActiveField(); f != nil {
			_, cmd := f.Update(msg)
			return t, cmd
		}
		return t, nil
	}

	// Cursor blink and paste messages go to every field; unfocused ones
	// ignore them.
	var cmds []tea.Cmd
	for _, f := range t.fields {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return t, tea.Batch(cmds...)
}

// View renders HH:MM:SS followed by the spin buttons inside the frame.
func (t *TimeField) View() string {
	sep := t.separatorStyle().Render(Separator)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		t.hour.View(), sep, t.minute.View(), sep, t.second.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, row, t.spin.View())
	return t.frame.Render(body)
}

func (t *TimeField) separatorStyle() lipgloss.Style {
	if t.sepState == StateDisabled {
		return t.disabled
	}
	return t.separator
}

func (t *TimeField) configureSeparator(o Options) {
	t.separator = o.restyle(t.separator)
	if o.State != nil {
		t.sepState = *o.State
	}
}

func (t *TimeField) index(f *DigitField) int {
	for i, c := range t.fields {
		if c == f {
			return i
		}
	}
	return -1
}

// neighbour returns the field step positions away from f, or nil past
// either end.
func (t *TimeField) neighbour(f *DigitField, step int) *DigitField {
	i := t.index(f)
	if i < 0 {
		return nil
	}
	j := i + step
	if j < 0 || j >= len(t.fields) {
		return nil
	}
	return t.fields[j]
}

func (t *TimeField) moveFocus(from, to *DigitField) tea.Cmd {
	if from == to && to != nil && to.Focused() {
		return nil
	}
	fromName := ""
	if from != nil {
		from.Blur()
		fromName = from.Name()
	}
	cmd := to.Focus()
	logging.LogFocusMove(fromName, to.Name(), to.Position())
	return cmd
}

// cycle moves focus step fields along, wrapping around. With no active field
// it starts at the hour field.
func (t *TimeField) cycle(step int) tea.Cmd {
	f := t.ActiveField()
	if f == nil {
		return t.Focus()
	}
	n := len(t.fields)
	next := t.fields[(t.index(f)+step+n)%n]
	cmd := t.moveFocus(f, next)
	next.CursorEnd()
	return cmd
}

func (t *TimeField) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !isLeftPress(msg) {
		return nil
	}
	x := msg.X - t.originX - t.frame.GetBorderLeftSize() - t.frame.GetPaddingLeft()
	y := msg.Y - t.originY - t.frame.GetBorderTopSize() - t.frame.GetPaddingTop()
	if x < 0 || y < 0 {
		return nil
	}

	sepWidth := lipgloss.Width(Separator)
	col := 0
	for i, f := range t.fields {
		if y == 0 && x >= col && x < col+f.Width() {
			cmd := t.FocusField(f)
			f.SetCursor(x - col)
			return cmd
		}
		col += f.Width()
		if i < len(t.fields)-1 {
			col += sepWidth
		}
	}

	local := msg
	local.X = x - col
	local.Y = y
	_, cmd := t.spin.Update(local)
	return cmd
}
