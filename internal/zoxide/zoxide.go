// Package zoxide queries the zoxide frecency index.
package zoxide

import (
	"context"
	"fmt"
	"strings"

	"github.com/timvw/nitro/internal/shell"
)

// Client runs zoxide commands through a shell.Runner.
type Client struct {
	bin string
	run shell.Runner
}

// New creates a zoxide client. An empty bin defaults to "zoxide".
func New(run shell.Runner, bin string) *Client {
	if bin == "" {
		bin = "zoxide"
	}
	return &Client{bin: bin, run: run}
}

// List returns ranked directories from the index, best match first.
// The returned order is zoxide's relevance order and must not be re-sorted.
// A limit > 0 caps the result to the top entries.
func (c *Client) List(ctx context.Context, limit int) ([]string, error) {
	out, err := c.run.Output(ctx, c.bin, "query", "-l")
	if err != nil {
		return nil, fmt.Errorf("zoxide query -l: %w", err)
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paths = append(paths, p)
		}
	}
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths, nil
}

// BestMatch returns zoxide's single best directory for a query.
// Misses (no match, empty index, missing binary) report ok=false.
func (c *Client) BestMatch(ctx context.Context, query string) (string, bool) {
	out, err := c.run.Output(ctx, c.bin, "query", query)
	if err != nil {
		return "", false
	}
	line, _, _ := strings.Cut(out, "\n")
	if p := strings.TrimSpace(line); p != "" {
		return p, true
	}
	return "", false
}
