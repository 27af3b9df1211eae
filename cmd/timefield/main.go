// Timefield is an interactive terminal time-of-day picker.
//
// It shows hour, minute and second fields with a spin control, centered in
// the terminal, and prints the accepted time. Settings are read from a YAML
// file and can be overridden with flags.
//
// Usage:
//
//	timefield [command] [flags]
//
// Running without arguments launches the picker.
// See 'timefield --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/timefield/internal/logging"
	"github.com/muurk/timefield/internal/ui"
	"github.com/muurk/timefield/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		ui.NewPrinter(os.Stderr).PrintError("timefield failed", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "timefield",
	Short: "Terminal time picker",
	Long: `An interactive time-of-day picker for the terminal.

Edit hours, minutes and seconds by typing, with the arrow keys, or with the
spin buttons. Values are validated as you type and wrap around when spun
past their limits.

If no command is specified, the picker launches and the accepted time is
printed when you press enter.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel, logFile)
	},
	RunE: runPicker,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from "+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default from "+logging.LogFileEnvVar+" or "+logging.DefaultLogFile+")")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "timefield %s\n", version.Full())
	},
}
