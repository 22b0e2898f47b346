package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"EZSketch/internal/config"
	"EZSketch/internal/ui"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values printed by `ezsketch version` and --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type ctxConfigKey struct{}

// runFunc opens the window. Tests replace it.
var runFunc = ui.RunApp

// Execute runs the CLI with os.Args. Errors are returned, not printed.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		trace      bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "ezsketch",
		Short:         "EZSketch is a tiny freehand drawing pad",
		Long:          `EZSketch opens a fixed-size canvas for freehand strokes and emoji stickers, with undo, redo and PNG/PDF export.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if trace {
				cfg.Log.Trace = true
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose || cfg.Log.Trace {
				level = charmlog.DebugLevel
			}

			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			ctx = context.WithValue(ctx, ctxConfigKey{}, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			logger.Debug("starting", "version", version, "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
			return runFunc(ctx, cfg, logger)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ezsketch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "log the drawing ops of every redraw")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(ctxConfigKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configFromContext(cmd.Context()).Encode(cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ezsketch %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
