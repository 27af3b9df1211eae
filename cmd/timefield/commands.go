package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/timefield/internal/app"
	"github.com/muurk/timefield/internal/config"
	"github.com/muurk/timefield/internal/layout"
	"github.com/muurk/timefield/internal/logging"
	"github.com/muurk/timefield/internal/ui"
	"github.com/muurk/timefield/internal/widget"
)

// Picker flags
var (
	startTime   string
	pickerTitle string
	useMouse    bool
	borderName  string
	stateName   string
)

func init() {
	rootCmd.Flags().StringVar(&startTime, "time", "", "Initial time as HH:MM:SS (default from config, then the current time)")
	rootCmd.Flags().StringVar(&pickerTitle, "title", "", "Title shown above the picker")
	rootCmd.Flags().BoolVar(&useMouse, "mouse", true, "Enable mouse support for fields and spin buttons")
	rootCmd.Flags().StringVar(&borderName, "border", "", "Frame border: normal, rounded, thick, double, none")
	rootCmd.Flags().StringVar(&stateName, "state", "", "Widget state: normal, disabled")

	rootCmd.AddCommand(centerCmd)
	rootCmd.AddCommand(configCmd)
}

// pickerFlags are the command line overrides applied on top of the settings
type pickerFlags struct {
	time   string
	title  string
	mouse  *bool
	border string
	state  string
}

// pickerConfig builds the picker configuration from settings and flags.
// Flags win over the settings file.
func pickerConfig(s *config.Settings, f pickerFlags) (app.Config, bool, error) {
	start, err := s.Clock()
	if err != nil {
		return app.Config{}, false, err
	}
	if f.time != "" {
		c, err := widget.ParseClock(f.time)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("--time: %w", err)
		}
		start = &c
	}

	opts, err := s.WidgetOptions()
	if err != nil {
		return app.Config{}, false, err
	}
	if f.border != "" {
		b, err := widget.ParseBorder(f.border)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("--border: %w", err)
		}
		opts.Border = &b
	}
	if f.state != "" {
		st, err := widget.ParseState(f.state)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("--state: %w", err)
		}
		opts.State = &st
	}

	mouse := s.Mouse
	if f.mouse != nil {
		mouse = *f.mouse
	}

	return app.Config{
		Title:   f.title,
		Default: start,
		Theme:   widget.NewTheme(s.Palette()),
		Options: &opts,
	}, mouse, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		logging.Error("Failed to load settings", zap.String("path", configPath), zap.Error(err))
		return err
	}

	f := pickerFlags{
		time:   startTime,
		title:  pickerTitle,
		border: borderName,
		state:  stateName,
	}
	if cmd.Flags().Changed("mouse") {
		f.mouse = &useMouse
	}

	cfg, mouse, err := pickerConfig(settings, f)
	if err != nil {
		return err
	}

	res, err := app.Run(cfg, mouse)
	if err != nil {
		logging.Error("Picker failed", zap.Error(err))
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if !res.Accepted {
		p.PrintWarning("Cancelled, no time selected.")
		return nil
	}
	p.PrintSuccess("Time selected", resultDetails(res.Clock))
	return nil
}

func resultDetails(c widget.Clock) []ui.Detail {
	seconds := c.Hour*3600 + c.Minute*60 + c.Second
	return []ui.Detail{
		{Key: "Time", Value: c.String()},
		{Key: "Seconds since midnight", Value: strconv.Itoa(seconds)},
	}
}

// Center command flags
var (
	screenSize  string
	quietCenter bool
)

// centerCmd prints the geometry that centers a window on a screen
var centerCmd = &cobra.Command{
	Use:   "center <WxH[+X+Y]>",
	Short: "Print the geometry that centers a window",
	Long: `Compute the position that places a window of the given size in the middle
of the screen and print it as WxH+X+Y.

Any offset in the argument is ignored. The screen defaults to the current
terminal size. Use --quiet to print only the geometry.`,
	Example: `  # Center a 40x10 box in the terminal
  timefield center 40x10

  # Center on an explicit screen
  timefield center 200x100 --screen 1920x1080

  # Geometry only, for scripts
  timefield center 200x100 --screen 1920x1080 -q`,
	Args: cobra.ExactArgs(1),
	RunE: runCenter,
}

func init() {
	centerCmd.Flags().StringVar(&screenSize, "screen", "", "Screen size as WxH (default is the terminal size)")
	centerCmd.Flags().BoolVarP(&quietCenter, "quiet", "q", false, "Print only the geometry, for scripts")
}

func centerGeometry(screen, window string) (layout.Geometry, error) {
	g, err := layout.ParseGeometry(window)
	if err != nil {
		return layout.Geometry{}, err
	}
	var sw, sh int
	if screen == "" {
		sw, sh = ui.GetTerminalSize()
	} else {
		s, err := layout.ParseGeometry(screen)
		if err != nil {
			return layout.Geometry{}, fmt.Errorf("--screen: %w", err)
		}
		sw, sh = s.Size()
	}
	return layout.Center(sw, sh, g), nil
}

func runCenter(cmd *cobra.Command, args []string) error {
	g, err := centerGeometry(screenSize, args[0])
	if err != nil {
		return err
	}
	if quietCenter {
		fmt.Fprintln(cmd.OutOrStdout(), g.String())
		return nil
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Center window", cmd.CommandPath()+" "+args[0])
	p.PrintSuccess("Window centered", []ui.Detail{
		{Key: "Size", Value: fmt.Sprintf("%dx%d", g.Width, g.Height)},
		{Key: "Offset", Value: fmt.Sprintf("%+d%+d", g.X, g.Y)},
		{Key: "Geometry", Value: g.String()},
	})
	return nil
}

// configCmd groups the settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath)
		if err != nil {
			return err
		}
		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var forceInit bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintHeader("Initialize settings", cmd.CommandPath())
		if err := config.NewSettings().Save(path); err != nil {
			return err
		}
		p.PrintSuccess("Settings written", []ui.Detail{
			{Key: "Path", Value: path},
		})
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
