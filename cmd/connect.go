package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/nitro/internal/connect"
	"github.com/timvw/nitro/internal/list"
)

var (
	flagConnectDir    string
	flagConnectNoFail bool
)

var connectCmd = &cobra.Command{
	Use:   "connect <line>...",
	Short: "Connect to a tmux session, creating it if missing",
	Long: `Connect to one tmux session per argument.

Each argument is one line as produced by "nitro list"; the [t]/[z] or icon
prefix is optional. Existing sessions are attached (or switched to when
already inside tmux). Missing sessions are created first, starting in the
first available of: --dir, the path embedded in the line, zoxide's best
match for the name, the home directory.

A failing target does not stop the remaining ones; failures are reported
together and the exit status is non-zero unless --no-fail is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Usage errors surface before any external call.
		targets := make([]list.Target, 0, len(args))
		for _, raw := range args {
			t, err := list.Parse(raw)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}

		ctx, span := tel.Tracer.Start(cmd.Context(), "connect")
		defer span.End()

		tm, zx := clients()
		inside := tm.InsideClient()
		connected, err := connect.New(tm, zx).Run(ctx, targets, flagConnectDir)

		// A partial failure still counts the targets that made it.
		for range connected {
			tel.Metrics.RecordConnect(ctx, inside)
		}
		for range len(targets) - connected {
			tel.Metrics.RecordConnectFailure(ctx)
		}

		if err != nil {
			if flagConnectNoFail {
				fmt.Fprintln(os.Stderr, err)
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	connectCmd.Flags().StringVar(&flagConnectDir, "dir", "", "working directory override for new sessions (applies to every target)")
	connectCmd.Flags().BoolVar(&flagConnectNoFail, "no-fail", false, "exit 0 even if a target fails; the error is still printed")
	rootCmd.AddCommand(connectCmd)
}
