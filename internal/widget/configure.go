package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Option names one configurable attribute.
type Option int

const (
	OptForeground Option = iota
	OptBackground
	OptBold
	OptState
	OptBorder
)

// String returns the option name used in config files.
func (o Option) String() string {
	switch o {
	case OptForeground:
		return "foreground"
	case OptBackground:
		return "background"
	case OptBold:
		return "bold"
	case OptState:
		return "state"
	case OptBorder:
		return "border"
	default:
		return fmt.Sprintf("Option(%d)", int(o))
	}
}

// Kind is the variant a child widget belongs to when options propagate from
// a composite to its children.
type Kind int

const (
	// LabelLike children draw text: digit fields and separators.
	LabelLike Kind = iota
	// ButtonLike children are activated, never recoloured.
	ButtonLike
	// CompositeControl children own ButtonLike children of their own.
	CompositeControl
)

// allowed is the static allow-list of options each kind accepts.
var allowed = map[Kind][]Option{
	LabelLike:        {OptForeground, OptBackground, OptBold, OptState},
	ButtonLike:       {OptBold, OptState},
	CompositeControl: {OptBackground, OptBold, OptState},
}

// frameAllowed lists the options a composite applies to its own frame.
var frameAllowed = []Option{OptBackground, OptBorder}

// Options is a set of optional attribute changes. Nil fields are left alone.
type Options struct {
	Foreground *lipgloss.Color
	Background *lipgloss.Color
	Bold       *bool
	State      *State
	Border     *lipgloss.Border
}

// Has reports whether opt is set.
func (o Options) Has(opt Option) bool {
	switch opt {
	case OptForeground:
		return o.Foreground != nil
	case OptBackground:
		return o.Background != nil
	case OptBold:
		return o.Bold != nil
	case OptState:
		return o.State != nil
	case OptBorder:
		return o.Border != nil
	}
	return false
}

// Only returns a copy of o keeping just the listed options.
func (o Options) Only(keep ...Option) Options {
	var out Options
	for _, opt := range keep {
		switch opt {
		case OptForeground:
			out.Foreground = o.Foreground
		case OptBackground:
			out.Background = o.Background
		case OptBold:
			out.Bold = o.Bold
		case OptState:
			out.State = o.State
		case OptBorder:
			out.Border = o.Border
		}
	}
	return out
}

// For returns the subset of o that a child of kind k accepts.
func (o Options) For(k Kind) Options {
	return o.Only(allowed[k]...)
}

// Accepts reports whether kind k takes opt.
func Accepts(k Kind, opt Option) bool {
	for _, a := range allowed[k] {
		if a == opt {
			return true
		}
	}
	return false
}

// restyle applies the text attributes in o to s.
func (o Options) restyle(s lipgloss.Style) lipgloss.Style {
	if o.Foreground != nil {
		s = s.Foreground(*o.Foreground)
	}
	if o.Background != nil {
		s = s.Background(*o.Background)
	}
	if o.Bold != nil {
		s = s.Bold(*o.Bold)
	}
	return s
}

// child is one entry in a composite's propagation list.
type child struct {
	kind  Kind
	apply func(Options)
}

// configure applies LabelLike options to the field.
func (f *DigitField) configure(o Options) {
	f.theme.Field = o.restyle(f.theme.Field)
	f.theme.FocusedField = o.restyle(f.theme.FocusedField)
	if o.State != nil {
		f.state = *o.State
	}
	f.refreshStyle()
}

// Configure applies o to the control and forwards what its buttons accept.
func (s *SpinControl) Configure(o Options) {
	o = o.For(CompositeControl)
	if o.Background != nil {
		s.frame = s.frame.Background(*o.Background)
	}
	s.configureButtons(o.For(ButtonLike))
}

func (s *SpinControl) configureButtons(o Options) {
	s.theme.Button = o.restyle(s.theme.Button)
	if o.State != nil {
		s.state = *o.State
	}
}

// Option helpers for building Options literals.

// Color returns a pointer to the colour c.
func Color(c string) *lipgloss.Color {
	v := lipgloss.Color(c)
	return &v
}

// Flag returns a pointer to b.
func Flag(b bool) *bool { return &b }

// StateOf returns a pointer to s.
func StateOf(s State) *State { return &s }

// ParseBorder maps a config name to a border. "none" keeps the frame cells
// but draws them blank so the layout does not shift.
func ParseBorder(name string) (lipgloss.Border, error) {
	switch strings.ToLower(name) {
	case "", "normal":
		return lipgloss.NormalBorder(), nil
	case "rounded":
		return lipgloss.RoundedBorder(), nil
	case "thick":
		return lipgloss.ThickBorder(), nil
	case "double":
		return lipgloss.DoubleBorder(), nil
	case "none", "hidden":
		return lipgloss.HiddenBorder(), nil
	default:
		return lipgloss.Border{}, fmt.Errorf("unknown border %q", name)
	}
}
