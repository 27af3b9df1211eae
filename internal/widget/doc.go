// Package widget implements Bubble Tea input components for entering a time
// of day.
//
//   - DigitField: a text entry that only ever shows an integer within its
//     bounds, zero padded to a fixed width. Rejected edits roll back.
//   - SpinControl: stacked ▲/▼ buttons calling caller supplied handlers.
//   - TimeField: hour, minute and second DigitFields plus a SpinControl,
//     with wraparound increment/decrement and caret-driven focus movement.
//
// All components use pointer receivers and are driven from a parent model's
// Update, which Bubble Tea runs on a single goroutine:
//
//	tf := widget.NewTimeField(widget.TimeConfig{Theme: widget.DefaultTheme()})
//	cmd := tf.Focus()
//	...
//	tf, cmd = tf.Update(msg)
//
// Styles are passed in explicitly through Theme; nothing reads a global
// default. Options given to TimeField.Configure propagate to the children
// through a fixed allow-list per child Kind.
package widget
