// Package app implements the interactive time picker.
//
// The picker is a full-screen Bubble Tea program hosting a single
// widget.TimeField, centered with internal/layout. It follows the Elm
// architecture: Update handles the program keys (accept, cancel, now, help)
// and passes everything else to the time field; View is derived from state.
//
// # Usage Example
//
//	res, err := app.Run(app.Config{Theme: widget.DefaultTheme()}, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Accepted {
//	    fmt.Println(res.Clock)
//	}
//
// # Key Bindings
//
//   - ↑/↓ or pgup/pgdn: increment/decrement the focused field (wrapping)
//   - ←/→: move the caret; at the edge of a field, move to the neighbour
//   - tab/shift+tab: cycle fields
//   - ctrl+n: reset to the current time
//   - enter: accept, esc: cancel, ?: full help
//
// With mouse support enabled, pressing a field focuses it and pressing ▲/▼
// activates the spin buttons.
package app
