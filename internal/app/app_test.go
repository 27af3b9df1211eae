package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/timefield/internal/widget"
)

func newTestModel(c widget.Clock) *Model {
	return New(Config{
		Default: &c,
		Theme:   widget.DefaultTheme(),
		Width:   80,
		Height:  24,
	})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestModel_StartsWithHourFocused(t *testing.T) {
	m := newTestModel(widget.Clock{Hour: 7})
	if m.Field().ActiveField() != m.Field().Hour() {
		t.Fatal("hour field should be focused on start")
	}
}

func TestModel_AcceptReturnsTime(t *testing.T) {
	m := newTestModel(widget.Clock{Hour: 23, Minute: 15})

	m.Update(keyMsg("up"))
	_, cmd := m.Update(keyMsg("enter"))

	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should return tea.Quit")
	}

	res := m.Result()
	if !res.Accepted {
		t.Error("Result().Accepted = false, want true")
	}
	if res.Clock != (widget.Clock{Hour: 0, Minute: 15}) {
		t.Errorf("Result().Clock = %v, want 00:15:00", res.Clock)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModel_Cancel(t *testing.T) {
	m := newTestModel(widget.Clock{})
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if m.Result().Accepted {
		t.Error("cancelled picker should not be accepted")
	}
}

func TestModel_NowResetsTime(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 9, 8, 7, 0, time.Local)
	c := widget.Clock{Hour: 1}
	m := New(Config{Default: &c, Now: func() time.Time { return fixed }, Width: 80, Height: 24})

	m.Update(keyMsg("ctrl+n"))

	if got := m.Field().Time(); got != (widget.Clock{Hour: 9, Minute: 8, Second: 7}) {
		t.Errorf("Time() = %v, want 09:08:07", got)
	}
}

func TestModel_KeysReachField(t *testing.T) {
	m := newTestModel(widget.Clock{Hour: 12, Minute: 34})
	m.Field().Hour().CursorEnd()

	m.Update(keyMsg("right"))
	if m.Field().ActiveField() != m.Field().Minute() {
		t.Fatal("right at end of hour should focus minute")
	}

	m.Update(keyMsg("5"))
	if got := m.Field().Minute().Value(); got != 53 {
		t.Errorf("minute = %d, want 53", got)
	}
}

func TestModel_ViewIsCentered(t *testing.T) {
	m := newTestModel(widget.Clock{Hour: 10, Minute: 20, Second: 30})
	view := m.View()

	if !strings.Contains(view, DefaultTitle) {
		t.Errorf("view missing title:\n%s", view)
	}

	p := m.arrange()
	lines := strings.Split(view, "\n")
	if len(lines) <= p.blockY+fieldRow+1 {
		t.Fatalf("view too short: %d lines", len(lines))
	}
	fieldLine := lines[p.blockY+fieldRow+1]
	if !strings.Contains(fieldLine, "10") {
		t.Errorf("expected hour on line %d, got %q", p.blockY+fieldRow+1, fieldLine)
	}
	if p.blockY == 0 || p.blockX == 0 {
		t.Errorf("block should be offset from the corner, got %+v", p)
	}
}

func TestModel_MouseMapsToField(t *testing.T) {
	m := newTestModel(widget.Clock{Minute: 30})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	p := m.arrange()
	originX := p.blockX + p.fieldX
	originY := p.blockY + fieldRow

	// Minute field, inside the border: column 4 of the content row.
	m.Update(tea.MouseMsg{X: originX + 1 + 4, Y: originY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Field().ActiveField() != m.Field().Minute() {
		t.Fatal("click should focus the minute field")
	}

	// Up spin button.
	spinX := originX + 1 + 3 + 1 + 3 + 1 + 3
	m.Update(tea.MouseMsg{X: spinX, Y: originY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Field().Minute().Value(); got != 31 {
		t.Errorf("minute = %d, want 31", got)
	}
}

func TestModel_OptionsApplied(t *testing.T) {
	c := widget.Clock{Hour: 4}
	m := New(Config{
		Default: &c,
		Options: &widget.Options{State: widget.StateOf(widget.StateDisabled)},
		Width:   80,
		Height:  24,
	})

	m.Update(keyMsg("up"))
	m.Update(keyMsg("pgup"))
	if got := m.Field().Hour().Value(); got != 4 {
		t.Errorf("hour = %d, want 4: a disabled picker ignores up and the spin keys", got)
	}
	if m.Field().Spin().State() != widget.StateDisabled {
		t.Error("spin control should be disabled")
	}
}
