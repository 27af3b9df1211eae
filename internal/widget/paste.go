package widget

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// PasteMsg carries clipboard text to the field that asked for it. It is
// validated like typing: inserted at the caret, then truncated, parsed and
// checked against the bounds.
type PasteMsg struct {
	Target *DigitField
	Text   string
}

// PasteErrMsg reports that the clipboard could not be read.
type PasteErrMsg struct {
	Target *DigitField
	Err    error
}

// paste reads the clipboard for f.
func (f *DigitField) paste() tea.Cmd {
	return func() tea.Msg {
		s, err := clipboard.ReadAll()
		if err != nil {
			return PasteErrMsg{Target: f, Err: err}
		}
		return PasteMsg{Target: f, Text: s}
	}
}

// insert places text at the caret and validates the result. A rejected
// candidate leaves the text and caret as they were.
func (f *DigitField) insert(text string) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return
	}
	value := []rune(f.input.Value())
	caret := min(f.input.Position(), len(value))
	candidate := string(value[:caret]) + text + string(value[caret:])

	f.input.SetValue(candidate)
	f.input.SetCursor(caret + len([]rune(text)))
	if !f.apply(candidate) {
		f.input.SetCursor(caret)
	}
}
