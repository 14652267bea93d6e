package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/timvw/nitro/internal/config"
	nitrotel "github.com/timvw/nitro/internal/otel"
	"github.com/timvw/nitro/internal/shell"
	"github.com/timvw/nitro/internal/tmux"
	"github.com/timvw/nitro/internal/zoxide"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	cfg *config.Config
	tel *nitrotel.Telemetry

	// Global flags.
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "nitro",
	Short: "Fast tmux sessions via zoxide",
	Long: `nitro merges live tmux sessions and zoxide's directory ranking into one
selectable list, and connects to whatever you pick — attaching, switching,
or creating the session on the fly.

Typical use is piping list output through a fuzzy finder:

    nitro list | fzf | xargs -r -d '\n' nitro connect

or using the built-in picker:

    nitro pick`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		nitrotel.Version = Version
		tel, err = nitrotel.Init(cmd.Context(), nitrotel.Config{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and flushes telemetry once it returns.
// Post-run hooks are skipped when a command errors, so the flush must not
// live there: the failure counters matter most on the failure path.
func execute() error {
	defer flushTelemetry()
	return rootCmd.Execute()
}

// flushTelemetry exports pending spans and metrics. A variable so tests can
// intercept it.
var flushTelemetry = func() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tel.Shutdown(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output (overrides NO_COLOR)")
}

// clients builds the tmux and zoxide clients over a real process runner.
func clients() (*tmux.Client, *zoxide.Client) {
	run := shell.NewSystem()
	return tmux.New(run, cfg.TmuxBin), zoxide.New(run, cfg.ZoxideBin)
}
