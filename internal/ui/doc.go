// Package ui renders the non-interactive output of the timefield CLI.
//
// The interactive picker lives in internal/app. Everything printed before or
// after it, such as the chosen time, a centered geometry, or an error, goes
// through a Printer so the output shares one palette:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintSuccess("Time selected", []ui.Detail{
//	    {Key: "Time", Value: "07:30:00"},
//	})
//
// # Logging Integration
//
// zap logging stays silent unless TIMEFIELD_LOG_LEVEL is set, so this
// output is never interleaved with log lines.
package ui
