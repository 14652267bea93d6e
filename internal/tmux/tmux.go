// Package tmux wraps the tmux binary behind a small client.
//
// Listing operations are best-effort (a missing tmux degrades to an empty
// list at the call site); action operations return errors that name the
// failing tmux command.
package tmux

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/timvw/nitro/internal/shell"
)

// Client runs tmux commands through a shell.Runner.
type Client struct {
	bin string
	run shell.Runner
}

// New creates a tmux client. An empty bin defaults to "tmux".
func New(run shell.Runner, bin string) *Client {
	if bin == "" {
		bin = "tmux"
	}
	return &Client{bin: bin, run: run}
}

// ListSessions returns the names of all tmux sessions, sorted ascending.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	out, err := c.run.Output(ctx, c.bin, "list-sessions", "-F", "#S")
	if err != nil {
		return nil, fmt.Errorf("tmux list-sessions: %w", err)
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ActiveSession returns the name of the session the current client is in,
// or the first attached session as a fallback. Empty when not determinable.
func (c *Client) ActiveSession(ctx context.Context) string {
	out, err := c.run.Output(ctx, c.bin, "display-message", "-p", "-F", "#S")
	if err == nil {
		if name := strings.TrimSpace(firstLine(out)); name != "" {
			return name
		}
	}

	out, err = c.run.Output(ctx, c.bin, "list-sessions", "-F", "#{?session_attached,1,0}\t#S")
	if err != nil {
		return ""
	}
	var attached []string
	for _, line := range strings.Split(out, "\n") {
		flag, name, ok := strings.Cut(line, "\t")
		if !ok || flag != "1" {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			attached = append(attached, name)
		}
	}
	sort.Strings(attached)
	if len(attached) > 0 {
		return attached[0]
	}
	return ""
}

// HasSession reports whether a session with the given name exists.
func (c *Client) HasSession(ctx context.Context, name string) bool {
	return c.run.Run(ctx, c.bin, "has-session", "-t", name) == nil
}

// NewSession creates a detached session at the given working directory.
func (c *Client) NewSession(ctx context.Context, name, dir string) error {
	if _, err := c.run.Output(ctx, c.bin, "new-session", "-ds", name, "-c", dir); err != nil {
		return fmt.Errorf("tmux new-session -ds %s -c %s: %w", name, dir, err)
	}
	return nil
}

// Attach attaches the terminal to a session. Needs a TTY.
func (c *Client) Attach(ctx context.Context, name string) error {
	if err := c.run.Interactive(ctx, c.bin, "attach", "-t", name); err != nil {
		return fmt.Errorf("tmux attach -t %s: %w", name, err)
	}
	return nil
}

// SwitchClient switches the current client to a session, staying inside tmux.
func (c *Client) SwitchClient(ctx context.Context, name string) error {
	if _, err := c.run.Output(ctx, c.bin, "switch-client", "-t", name); err != nil {
		return fmt.Errorf("tmux switch-client -t %s: %w", name, err)
	}
	return nil
}

// InsideClient reports whether the process runs inside a tmux client.
func (c *Client) InsideClient() bool {
	return c.run.Getenv("TMUX") != ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// SessionName turns an arbitrary label into a tmux-safe session name:
// ':' and '#' become '-', whitespace runs collapse to a single '-', and
// leading/trailing dashes are trimmed.
func SessionName(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ':' || r == '#':
			b.WriteByte('-')
			lastDash = false
		case strings.ContainsRune(" \t\n\v\f\r", r):
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		default:
			b.WriteRune(r)
			lastDash = false
		}
	}
	return strings.Trim(b.String(), "-")
}
