// Package connect turns parsed targets into tmux attach or switch actions.
package connect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timvw/nitro/internal/list"
	"github.com/timvw/nitro/internal/tmux"
	"github.com/timvw/nitro/internal/zoxide"
)

// Connector resolves targets and issues the attach-or-switch actions.
type Connector struct {
	tmux   *tmux.Client
	zoxide *zoxide.Client
}

// New creates a Connector over the given clients.
func New(t *tmux.Client, z *zoxide.Client) *Connector {
	return &Connector{tmux: t, zoxide: z}
}

// Resolve picks the working directory for a new session. First match wins:
//
//  1. explicitDir (the --dir override)
//  2. the path embedded in the target line
//  3. zoxide's best match for the session name
//  4. the home directory
//
// The chain never comes up empty; there is always a destination.
func (c *Connector) Resolve(ctx context.Context, t list.Target, explicitDir string) string {
	switch {
	case explicitDir != "":
		return explicitDir
	case t.Path != "":
		return t.Path
	}
	if name := tmux.SessionName(t.Name); name != "" {
		if dir, ok := c.zoxide.BestMatch(ctx, name); ok {
			return dir
		}
	}
	return homeDir()
}

// Run connects each target in order. Whether to attach or switch-client is
// decided once for the whole invocation (it depends on where nitro runs, not
// on the target). A failing target does not stop the rest; failures are
// collected and returned together, alongside the number of targets that did
// connect, so the caller can account for both halves of a partial failure.
func (c *Connector) Run(ctx context.Context, targets []list.Target, explicitDir string) (int, error) {
	inside := c.tmux.InsideClient()

	connected := 0
	var errs []error
	for _, t := range targets {
		if err := c.connect(ctx, t, explicitDir, inside); err != nil {
			errs = append(errs, err)
			continue
		}
		connected++
	}
	return connected, errors.Join(errs...)
}

func (c *Connector) connect(ctx context.Context, t list.Target, explicitDir string, inside bool) error {
	name := tmux.SessionName(t.Name)
	if name == "" && t.Path != "" {
		// A picked directory line has no name; the basename serves.
		name = tmux.SessionName(filepath.Base(t.Path))
	}
	if name == "" {
		return fmt.Errorf("no usable session name in %q", t.Name)
	}

	// An existing session keeps its directory; resolution only matters when
	// the session has to be created.
	if !c.tmux.HasSession(ctx, name) {
		dir := c.Resolve(ctx, t, explicitDir)
		if err := c.tmux.NewSession(ctx, name, dir); err != nil {
			return fmt.Errorf("create session %q: %w", name, err)
		}
	}

	if inside {
		return c.tmux.SwitchClient(ctx, name)
	}
	return c.tmux.Attach(ctx, name)
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "/"
}
