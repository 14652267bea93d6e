// Package list merges tmux sessions and zoxide directories into display
// lines, and parses those lines back into connect targets.
//
// A line is "<prefix><label>": the prefix is "[t] "/"[z] " in ASCII mode or
// a glyph followed by exactly two spaces in icon mode, and the label is the
// session name or the absolute directory path. Parse is the inverse of
// Format, tolerant of stripped prefixes (fzf hands lines back unquoted).
package list

import (
	"context"
	"path/filepath"

	"github.com/timvw/nitro/internal/tmux"
	"github.com/timvw/nitro/internal/zoxide"
)

// Prefixes emitted by Format and recognized by Parse. Exported so the
// interactive picker renders rows the same way.
const (
	TagTmux   = "[t]"
	TagZoxide = "[z]"

	// Nerd-font glyphs: tmux (U+EBC8) and an open folder (U+F114).
	IconTmux   = ""
	IconZoxide = ""
)

// Options selects sources and rendering for one list invocation.
type Options struct {
	Tmux   bool // include tmux sessions
	Zoxide bool // include zoxide directories
	Limit  int  // cap zoxide results; <= 0 means unlimited
	Icons  bool // glyph prefixes instead of ASCII tags
	Color  bool // colorize prefixes
}

// Collect gathers session names and ranked directories from the requested
// sources. Listing failures degrade to an empty slice so a machine without
// one of the tools still gets partial output. Sessions come back sorted;
// directories keep zoxide's relevance order.
//
// Directories whose session-name form matches an existing tmux session are
// dropped: the session line already covers them.
func Collect(ctx context.Context, t *tmux.Client, z *zoxide.Client, opts Options) (sessions, dirs []string) {
	if opts.Tmux {
		sessions, _ = t.ListSessions(ctx)
	}
	if opts.Zoxide {
		dirs, _ = z.List(ctx, opts.Limit)
	}

	if len(sessions) > 0 && len(dirs) > 0 {
		taken := make(map[string]bool, len(sessions))
		for _, s := range sessions {
			taken[tmux.SessionName(s)] = true
		}
		kept := dirs[:0]
		for _, d := range dirs {
			if !taken[tmux.SessionName(filepath.Base(d))] {
				kept = append(kept, d)
			}
		}
		dirs = kept
	}
	return sessions, dirs
}

// Format renders collected records as display lines: all tmux lines first,
// then all zoxide lines. Color is applied to the prefix only, never to the
// label, so labels survive a round trip through Parse untouched.
func Format(sessions, dirs []string, opts Options) []string {
	st := newStyles(opts.Color)

	tmuxPrefix := st.tmux.Render(TagTmux) + " "
	zoxidePrefix := st.zoxide.Render(TagZoxide) + " "
	if opts.Icons {
		// Two spaces after the glyph is a rendering contract: Parse relies
		// on it to recover the label exactly.
		tmuxPrefix = st.tmux.Render(IconTmux) + "  "
		zoxidePrefix = st.zoxide.Render(IconZoxide) + "  "
	}

	lines := make([]string, 0, len(sessions)+len(dirs))
	for _, s := range sessions {
		lines = append(lines, tmuxPrefix+s)
	}
	for _, d := range dirs {
		lines = append(lines, zoxidePrefix+d)
	}
	return lines
}

// Lines collects and formats in one step.
func Lines(ctx context.Context, t *tmux.Client, z *zoxide.Client, opts Options) []string {
	sessions, dirs := Collect(ctx, t, z, opts)
	return Format(sessions, dirs, opts)
}
