// Package config manages the user settings file for the timefield picker.
//
// Settings are stored as YAML and follow OS-specific conventions for the
// file location:
//   - Linux: $XDG_CONFIG_HOME/timefield/config.yaml or $HOME/.config/timefield/config.yaml
//   - macOS: $HOME/.config/timefield/config.yaml
//   - Windows: %LOCALAPPDATA%\timefield\config.yaml
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	theme := widget.NewTheme(settings.Palette())
//	opts, _ := settings.WidgetOptions()
//
//	settings.DefaultTime = "07:30:00"
//	if err := settings.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is not an error: Load returns NewSettings defaults.
// Writes go through a temporary file and a rename so a crash never leaves a
// half-written file behind.
package config
