// Package logging provides structured logging for the timefield picker.
//
// This package wraps a zap logger with convenience functions. Widgets log
// rejected input, committed values, focus moves and wraparounds at debug
// level; nothing is ever logged to the terminal the picker is drawing on.
//
// # Configuration
//
// Logging is silent unless a level is given:
//
//	TIMEFIELD_LOG_LEVEL=debug TIMEFIELD_LOG_FILE=/tmp/timefield.log timefield
//
// or from code:
//
//	if err := logging.Initialize("debug", "/tmp/timefield.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Debug("Value committed",
//	    zap.String("field", "hour"),
//	    zap.Int("value", 7),
//	)
package logging
