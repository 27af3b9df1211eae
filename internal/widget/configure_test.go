package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		kind Kind
		opt  Option
		want bool
	}{
		{LabelLike, OptForeground, true},
		{LabelLike, OptBackground, true},
		{LabelLike, OptBorder, false},
		{ButtonLike, OptForeground, false},
		{ButtonLike, OptBackground, false},
		{ButtonLike, OptBold, true},
		{ButtonLike, OptState, true},
		{CompositeControl, OptForeground, false},
		{CompositeControl, OptBackground, true},
		{CompositeControl, OptState, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Accepts(tt.kind, tt.opt), "Accepts(%d, %s)", tt.kind, tt.opt)
	}
}

func TestOptions_For(t *testing.T) {
	border := lipgloss.RoundedBorder()
	o := Options{
		Foreground: Color("#FF0000"),
		Background: Color("#000000"),
		Bold:       Flag(true),
		State:      StateOf(StateDisabled),
		Border:     &border,
	}

	button := o.For(ButtonLike)
	assert.False(t, button.Has(OptForeground))
	assert.False(t, button.Has(OptBackground))
	assert.True(t, button.Has(OptBold))
	assert.True(t, button.Has(OptState))
	assert.False(t, button.Has(OptBorder))

	label := o.For(LabelLike)
	assert.True(t, label.Has(OptForeground))
	assert.False(t, label.Has(OptBorder))
}

func TestTimeField_ConfigureState(t *testing.T) {
	tf := newTimeField(Clock{Hour: 9})
	tf.FocusField(tf.Hour())
	tf.Hour().CursorStart()

	tf.Configure(Options{State: StateOf(StateDisabled)})

	for _, f := range []*DigitField{tf.Hour(), tf.Minute(), tf.Second()} {
		assert.Equal(t, StateDisabled, f.State(), f.Name())
	}
	assert.Equal(t, StateDisabled, tf.Spin().State())
	assert.Equal(t, StateDisabled, tf.sepState)

	tf.Update(runes("1"))
	tf.Update(click(1+3+1+3+1+3, 1))
	assert.Equal(t, 9, tf.Hour().Value(), "disabled widget ignores typing and spin buttons")

	tf.Configure(Options{State: StateOf(StateNormal)})
	tf.Spin().PressUp()
	assert.Equal(t, 10, tf.Hour().Value())
}

func TestTimeField_ConfigureColours(t *testing.T) {
	tf := newTimeField(Clock{})
	fg := lipgloss.Color("#FF0000")
	bg := lipgloss.Color("#000080")
	buttonFg := tf.Spin().theme.Button.GetForeground()

	tf.Configure(Options{Foreground: &fg, Background: &bg, Bold: Flag(true)})

	assert.Equal(t, fg, tf.Hour().theme.Field.GetForeground())
	assert.Equal(t, bg, tf.Minute().theme.Field.GetBackground())
	assert.Equal(t, fg, tf.separator.GetForeground())

	assert.Equal(t, buttonFg, tf.Spin().theme.Button.GetForeground(), "buttons keep their colour")
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.NoColor{}), tf.Spin().theme.Button.GetBackground())
	assert.Equal(t, bg, tf.Spin().frame.GetBackground(), "the spin backdrop takes the background")
	assert.True(t, tf.Spin().theme.Button.GetBold())

	assert.Equal(t, bg, tf.frame.GetBackground())
}

func TestTimeField_ConfigureBorder(t *testing.T) {
	tf := newTimeField(Clock{})
	w, h := tf.Size()

	hidden, err := ParseBorder("none")
	assert.NoError(t, err)
	tf.Configure(Options{Border: &hidden})

	w2, h2 := tf.Size()
	assert.Equal(t, w, w2, "hidden border keeps the layout")
	assert.Equal(t, h, h2)

	_, err = ParseBorder("wavy")
	assert.Error(t, err)
}

func TestParseState(t *testing.T) {
	s, err := ParseState("Disabled")
	assert.NoError(t, err)
	assert.Equal(t, StateDisabled, s)

	s, err = ParseState("")
	assert.NoError(t, err)
	assert.Equal(t, StateNormal, s)

	_, err = ParseState("readonly")
	assert.Error(t, err)
	assert.Equal(t, "disabled", StateDisabled.String())
}
