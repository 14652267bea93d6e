package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/timvw/nitro/internal/list"
)

var (
	flagListTmux   bool
	flagListZoxide bool
	flagListIcons  bool
)

var listCmd = &cobra.Command{
	Use:   "list [N]",
	Short: "List tmux sessions and/or zoxide results",
	Long: `List tmux sessions and zoxide directories as selectable lines.

With no source flag both sources are listed: tmux sessions first
(alphabetical), then zoxide directories in relevance order. The optional
positional N caps zoxide results to the top N and requires --zoxide.

A missing tmux or zoxide binary is not an error; that source just
contributes nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := 0
		if len(args) > 0 {
			if !flagListZoxide {
				return fmt.Errorf("limit %q requires --zoxide", args[0])
			}
			n, err := parseLimit(args[0])
			if err != nil {
				return err
			}
			limit = n
		} else {
			limit = cfg.ZoxideLimit
		}

		sel := resolveSelection(flagListTmux, flagListZoxide)
		opts := list.Options{
			Tmux:   sel.tmux,
			Zoxide: sel.zoxide,
			Limit:  limit,
			Icons:  flagListIcons || cfg.Icons,
			Color:  cfg.ColorEnabled(flagNoColor),
		}

		tm, zx := clients()
		sessions, dirs := list.Collect(cmd.Context(), tm, zx, opts)
		for _, line := range list.Format(sessions, dirs, opts) {
			fmt.Println(line)
		}

		tel.Metrics.RecordListLines(cmd.Context(), "tmux", len(sessions))
		tel.Metrics.RecordListLines(cmd.Context(), "zoxide", len(dirs))
		return nil
	},
}

// selection says which sources one list invocation reads.
type selection struct {
	tmux   bool
	zoxide bool
}

// resolveSelection translates the source flags: no flag means both sources.
func resolveSelection(tmuxFlag, zoxideFlag bool) selection {
	if !tmuxFlag && !zoxideFlag {
		return selection{tmux: true, zoxide: true}
	}
	return selection{tmux: tmuxFlag, zoxide: zoxideFlag}
}

// parseLimit validates the optional zoxide result cap. Zero and negative
// values are rejected rather than treated as unlimited.
func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid zoxide limit %q: not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid zoxide limit %d: must be positive", n)
	}
	return n, nil
}

func init() {
	listCmd.Flags().BoolVarP(&flagListTmux, "tmux", "t", false, "include tmux sessions")
	listCmd.Flags().BoolVarP(&flagListZoxide, "zoxide", "z", false, "include zoxide results; positional N caps to the top N")
	listCmd.Flags().BoolVar(&flagListIcons, "icons", false, "icon prefixes instead of [t]/[z]")
	rootCmd.AddCommand(listCmd)
}
