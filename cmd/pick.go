package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timvw/nitro/internal/connect"
	"github.com/timvw/nitro/internal/list"
	"github.com/timvw/nitro/internal/picker"
)

var flagPickIcons bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a session or directory and connect",
	Long: `Open a picker over the merged tmux/zoxide list and connect to the
selected entry. Picking a tmux session attaches or switches to it; picking a
directory creates a session there (named after the directory) and connects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tm, zx := clients()
		opts := list.Options{Tmux: true, Zoxide: true, Limit: cfg.ZoxideLimit}
		sessions, dirs := list.Collect(cmd.Context(), tm, zx, opts)

		items := make([]picker.Item, 0, len(sessions)+len(dirs))
		for _, s := range sessions {
			items = append(items, picker.Item{Kind: picker.KindSession, Label: s})
		}
		for _, d := range dirs {
			items = append(items, picker.Item{Kind: picker.KindDir, Label: d})
		}
		if len(items) == 0 {
			return fmt.Errorf("nothing to pick: no tmux sessions and no zoxide results")
		}

		choice, err := picker.Run(items, tm.ActiveSession(cmd.Context()), flagPickIcons || cfg.Icons)
		if err != nil {
			return err
		}
		if choice == nil {
			return nil // dismissed
		}

		target := list.Target{Name: choice.Label}
		if choice.Kind == picker.KindDir {
			target = list.Target{Path: choice.Label}
		}

		ctx, span := tel.Tracer.Start(cmd.Context(), "pick.connect")
		defer span.End()

		if _, err := connect.New(tm, zx).Run(ctx, []list.Target{target}, ""); err != nil {
			tel.Metrics.RecordConnectFailure(ctx)
			return err
		}
		tel.Metrics.RecordConnect(ctx, tm.InsideClient())
		return nil
	},
}

func init() {
	pickCmd.Flags().BoolVar(&flagPickIcons, "icons", false, "nerd-font glyph prefixes instead of [t]/[z]")
	rootCmd.AddCommand(pickCmd)
}
