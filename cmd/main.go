package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"slideshow/internal/core/slideshow"
	"slideshow/internal/input"
	"slideshow/internal/logger"
	"slideshow/internal/storage"
	"slideshow/internal/ui/preferences"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "slideshow"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitNoItems = 2
)

// options is the resolved startup configuration. Defaults holds the
// settings as stored, before command-line and environment overrides.
type options struct {
	Items      []string
	Settings   preferences.Settings
	Defaults   preferences.Settings
	ConfigPath string
	LogLevel   string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, input.IsPiped(os.Stdin), os.Stderr, runSlideshow))
}

func execute(args []string, stdin io.Reader, piped bool, stderr io.Writer, run func(options) error) int {
	cmd := newRootCommand(stdin, piped, run)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, input.ErrNoItems), errors.Is(err, slideshow.ErrNoItems):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitNoItems
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}

func newRootCommand(stdin io.Reader, piped bool, run func(options) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SLIDESHOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "slideshow [flags] [files...]",
		Short: "Show images full-window one after another",
		Long: `slideshow displays images one at a time and advances on a timer.

Files come from the command line, or from standard input when it is piped
(NUL separated as produced by find -print0, or one per line). With piped
input the positional arguments are [delay [verbose]].

Keys: Right/Left next/previous, Space pause, Up/+ faster, Down/- slower,
F fullscreen, Esc/Q quit. Taps: top band faster, bottom band slower, left
and right edges previous/next, centre pause.`,
		Example: `  slideshow *.jpg
  slideshow --delay 3 holiday/*.png
  find . -name '*.gif' -print0 | slideshow 0.5 v`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(v, cmd.Flags(), args, stdin, piped)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64P("delay", "d", 0, "seconds between images (default 1 or the saved default)")
	flags.BoolP("verbose", "v", false, "log every image shown")
	flags.BoolP("fullscreen", "f", false, "start fullscreen")
	flags.String("config", "", "settings file (default is $XDG_CONFIG_HOME/slideshow/settings.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("delay", flags.Lookup("delay"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("fullscreen", flags.Lookup("fullscreen"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	return cmd
}

// resolveOptions layers the startup configuration: command-line flags, then
// legacy positional arguments, then SLIDESHOW_* environment variables, then
// the settings file, then built-in defaults.
func resolveOptions(v *viper.Viper, flags *pflag.FlagSet, args []string, stdin io.Reader, piped bool) (options, error) {
	request, err := input.Parse(args, stdin, piped)
	if err != nil {
		return options{}, err
	}

	configPath, _ := flags.GetString("config")
	settings, err := loadSettings(configPath)
	if err != nil {
		logger.WithComponent("config").Warn().Err(err).Msg("using default settings")
	}
	defaults := settings

	switch {
	case flags.Changed("delay"):
		settings.Delay = v.GetFloat64("delay")
	case request.Delay > 0:
		settings.Delay = request.Delay
	case v.IsSet("delay"):
		settings.Delay = v.GetFloat64("delay")
	}
	if err := input.ValidateDelay(settings.Delay); err != nil {
		return options{}, err
	}

	if v.IsSet("fullscreen") {
		settings.Fullscreen = v.GetBool("fullscreen")
	}
	verbose := settings.Verbose || request.Verbose || v.GetBool("verbose")

	level := v.GetString("log_level")
	if level == "" {
		level = "info"
		if verbose {
			level = "debug"
		}
	}

	return options{
		Items:      request.Items,
		Settings:   settings,
		Defaults:   defaults,
		ConfigPath: configPath,
		LogLevel:   level,
	}, nil
}

func loadSettings(configPath string) (preferences.Settings, error) {
	if configPath != "" {
		return storage.LoadSettingsFrom(configPath)
	}
	return storage.LoadSettings(appName)
}

func saveSettings(configPath string, settings preferences.Settings) error {
	if configPath != "" {
		return storage.SaveSettingsTo(configPath, settings)
	}
	return storage.SaveSettings(appName, settings)
}
