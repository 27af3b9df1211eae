package widget

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeField(c Clock) *TimeField {
	return NewTimeField(TimeConfig{Default: &c, Theme: DefaultTheme()})
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewTimeField_DefaultClock(t *testing.T) {
	tf := newTimeField(Clock{Hour: 1, Minute: 2, Second: 3})
	assert.Equal(t, Clock{Hour: 1, Minute: 2, Second: 3}, tf.Time())
	assert.Equal(t, "01", tf.Hour().Text())
	assert.Nil(t, tf.ActiveField(), "no field is focused after construction")
}

func TestNewTimeField_DefaultsToNow(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 13, 45, 7, 0, time.Local)
	tf := NewTimeField(TimeConfig{Now: func() time.Time { return fixed }})
	assert.Equal(t, Clock{Hour: 13, Minute: 45, Second: 7}, tf.Time())
}

func TestNewTimeField_DefaultsToLocalTime(t *testing.T) {
	before := time.Now()
	tf := NewTimeField(TimeConfig{})
	after := time.Now()

	got := tf.Time()
	if got != ClockOf(before) && got != ClockOf(after) {
		t.Errorf("Time() = %v, want %v or %v", got, ClockOf(before), ClockOf(after))
	}
}

func TestTimeField_SetTimeValidatesEachField(t *testing.T) {
	tf := newTimeField(Clock{Hour: 10, Minute: 30, Second: 30})

	tf.SetTime(Clock{Hour: 25, Minute: 0, Second: 0})

	assert.Equal(t, Clock{Hour: 10, Minute: 0, Second: 0}, tf.Time())
	assert.ErrorIs(t, tf.Hour().Err(), ErrInvalidInput)
	assert.NoError(t, tf.Minute().Err())
}

func TestTimeField_SetTimeOf(t *testing.T) {
	tf := newTimeField(Clock{})
	tf.SetTimeOf(time.Date(2000, 1, 1, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, Clock{Hour: 23, Minute: 59, Second: 58}, tf.Time())
}

func TestTimeField_ActiveField(t *testing.T) {
	tf := newTimeField(Clock{})
	assert.Nil(t, tf.ActiveField())

	tf.FocusField(tf.Minute())
	assert.Same(t, tf.Minute(), tf.ActiveField())

	tf.FocusField(tf.Second())
	assert.Same(t, tf.Second(), tf.ActiveField())
	assert.False(t, tf.Minute().Focused(), "focus is exclusive")

	tf.Blur()
	assert.Nil(t, tf.ActiveField())
}

func TestTimeField_IncrementWraps(t *testing.T) {
	tests := []struct {
		name  string
		field func(*TimeField) *DigitField
		start Clock
		key   tea.KeyType
		want  Clock
	}{
		{"hour up from 23", (*TimeField).Hour, Clock{Hour: 23}, tea.KeyUp, Clock{Hour: 0}},
		{"hour down from 0", (*TimeField).Hour, Clock{Hour: 0}, tea.KeyDown, Clock{Hour: 23}},
		{"minute up from 59", (*TimeField).Minute, Clock{Minute: 59}, tea.KeyUp, Clock{Minute: 0}},
		{"second down from 0", (*TimeField).Second, Clock{Second: 0}, tea.KeyDown, Clock{Second: 59}},
		{"minute up from 10", (*TimeField).Minute, Clock{Minute: 10}, tea.KeyUp, Clock{Minute: 11}},
		{"hour down from 12", (*TimeField).Hour, Clock{Hour: 12}, tea.KeyDown, Clock{Hour: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := newTimeField(tt.start)
			tf.FocusField(tt.field(tf))

			tf.Update(keyOf(tt.key))

			assert.Equal(t, tt.want, tf.Time())
		})
	}
}

func TestTimeField_IncrementWithoutFocusIsNoop(t *testing.T) {
	tf := newTimeField(Clock{Hour: 5, Minute: 6, Second: 7})

	tf.UpPress()
	tf.DownPress()
	tf.Spin().PressUp()

	assert.Equal(t, Clock{Hour: 5, Minute: 6, Second: 7}, tf.Time())
}

func TestTimeField_FocusLeft(t *testing.T) {
	tf := newTimeField(Clock{Hour: 12, Minute: 34, Second: 56})
	tf.FocusField(tf.Minute())
	tf.Minute().CursorStart()

	tf.Update(keyOf(tea.KeyLeft))

	require.Same(t, tf.Hour(), tf.ActiveField())
	assert.Equal(t, 2, tf.Hour().Position(), "caret lands at the end")
	assert.False(t, tf.Minute().Focused())
}

func TestTimeField_FocusRight(t *testing.T) {
	tf := newTimeField(Clock{Hour: 12, Minute: 34, Second: 56})
	tf.FocusField(tf.Hour())
	tf.Hour().CursorEnd()

	tf.Update(keyOf(tea.KeyRight))

	require.Same(t, tf.Minute(), tf.ActiveField())
	assert.Equal(t, 0, tf.Minute().Position(), "caret lands at the start")
}

func TestTimeField_FocusChain(t *testing.T) {
	tf := newTimeField(Clock{})
	tf.FocusField(tf.Hour())
	tf.Hour().CursorEnd()

	// Right through every field: each press at the end moves on, the
	// presses in between walk the caret across the text.
	presses := []struct {
		want  *DigitField
		caret int
	}{
		{tf.Minute(), 0},
		{tf.Minute(), 1},
		{tf.Minute(), 2},
		{tf.Second(), 0},
		{tf.Second(), 1},
		{tf.Second(), 2},
		{tf.Second(), 2},
	}
	for i, p := range presses {
		tf.Update(keyOf(tea.KeyRight))
		require.Same(t, p.want, tf.ActiveField(), "press %d", i)
		require.Equal(t, p.caret, tf.ActiveField().Position(), "press %d", i)
	}
}

func TestTimeField_TerminalFieldsDoNotMove(t *testing.T) {
	tf := newTimeField(Clock{})

	tf.FocusField(tf.Hour())
	tf.Hour().CursorStart()
	tf.Update(keyOf(tea.KeyLeft))
	assert.Same(t, tf.Hour(), tf.ActiveField())

	tf.FocusField(tf.Second())
	tf.Second().CursorEnd()
	tf.Update(keyOf(tea.KeyRight))
	assert.Same(t, tf.Second(), tf.ActiveField())
}

func TestTimeField_LeftInsideTextMovesCaretOnly(t *testing.T) {
	tf := newTimeField(Clock{})
	tf.FocusField(tf.Minute())
	tf.Minute().SetCursor(1)

	tf.Update(keyOf(tea.KeyLeft))

	assert.Same(t, tf.Minute(), tf.ActiveField())
	assert.Equal(t, 0, tf.Minute().Position())
}

func TestTimeField_TabCycles(t *testing.T) {
	tf := newTimeField(Clock{})

	tf.Update(keyOf(tea.KeyTab))
	assert.Same(t, tf.Hour(), tf.ActiveField(), "tab with no focus starts at hour")

	tf.Update(keyOf(tea.KeyTab))
	assert.Same(t, tf.Minute(), tf.ActiveField())

	tf.Update(keyOf(tea.KeyShiftTab))
	assert.Same(t, tf.Hour(), tf.ActiveField())

	tf.Update(keyOf(tea.KeyShiftTab))
	assert.Same(t, tf.Second(), tf.ActiveField(), "shift+tab wraps")
}

func TestTimeField_SpinKeys(t *testing.T) {
	tf := newTimeField(Clock{Second: 59})
	tf.FocusField(tf.Second())

	tf.Update(keyOf(tea.KeyPgUp))
	assert.Equal(t, 0, tf.Second().Value())

	tf.Update(keyOf(tea.KeyPgDown))
	tf.Update(keyOf(tea.KeyPgDown))
	assert.Equal(t, 58, tf.Second().Value())
}

func TestTimeField_TypingGoesToActiveField(t *testing.T) {
	tf := newTimeField(Clock{Hour: 8})
	tf.FocusField(tf.Hour())
	tf.Hour().CursorStart()

	tf.Update(runes("1"))
	assert.Equal(t, 10, tf.Hour().Value())

	tf.Hour().CursorStart()
	tf.Update(runes("3"))
	assert.Equal(t, 10, tf.Hour().Value(), "31 is rejected by the hour field")
}

func TestTimeField_Layout(t *testing.T) {
	tf := newTimeField(Clock{Hour: 10, Minute: 30, Second: 45})

	w, h := tf.Size()
	// Border, three 3-cell fields, two separators, one spin column, border.
	assert.Equal(t, 1+3+1+3+1+3+1+1, w)
	assert.Equal(t, 4, h)

	view := tf.View()
	assert.Contains(t, view, "10")
	assert.Contains(t, view, UpGlyph)
	assert.Contains(t, view, DownGlyph)
}

func TestTimeField_MouseFocusesField(t *testing.T) {
	tf := newTimeField(Clock{Hour: 10, Minute: 30, Second: 45})
	tf.SetOrigin(5, 2)

	// Inside the border the minute field starts at column 4.
	tf.Update(click(5+1+4+1, 2+1))

	require.Same(t, tf.Minute(), tf.ActiveField())
	assert.Equal(t, 1, tf.Minute().Position())
}

func TestTimeField_MouseSpinButtons(t *testing.T) {
	tf := newTimeField(Clock{Minute: 30})
	tf.FocusField(tf.Minute())

	spinX := 1 + 3 + 1 + 3 + 1 + 3
	tf.Update(click(spinX, 1))
	assert.Equal(t, 31, tf.Minute().Value())

	tf.Update(click(spinX, 2))
	tf.Update(click(spinX, 2))
	assert.Equal(t, 29, tf.Minute().Value())

	release := click(spinX, 1)
	release.Action = tea.MouseActionRelease
	tf.Update(release)
	assert.Equal(t, 29, tf.Minute().Value(), "only presses activate")

	assert.Same(t, tf.Minute(), tf.ActiveField(), "buttons do not take focus")
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"12:34:56", Clock{12, 34, 56}, false},
		{"1:2:3", Clock{1, 2, 3}, false},
		{" 07:00:00 ", Clock{7, 0, 0}, false},
		{"25:00:00", Clock{25, 0, 0}, false},
		{"12:34", Clock{}, true},
		{"aa:bb:cc", Clock{}, true},
		{"", Clock{}, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseClock(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "07:05:09", Clock{7, 5, 9}.String())
}
