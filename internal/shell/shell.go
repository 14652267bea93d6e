// Package shell abstracts external process execution.
//
// The tmux and zoxide layers talk to their binaries exclusively through the
// Runner interface, so tests can script tool output with Scripted instead of
// spawning real processes.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Runner is the capability set nitro needs from the outside world:
// run a command and read its output, run a command for its exit status,
// run a command attached to the terminal, and read environment variables.
type Runner interface {
	// Output runs the command and returns its stdout.
	// A non-zero exit is an error that includes the command's stderr.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run runs the command for its exit status only; output is discarded.
	Run(ctx context.Context, name string, args ...string) error

	// Interactive runs the command with the caller's stdin/stdout/stderr.
	// tmux attach needs a real TTY, so output cannot be captured here.
	Interactive(ctx context.Context, name string, args ...string) error

	// Getenv returns the value of an environment variable.
	Getenv(key string) string
}

// System is the Runner backed by os/exec and the process environment.
type System struct{}

// NewSystem returns a Runner that spawns real processes.
func NewSystem() *System {
	return &System{}
}

// Output runs the command and returns its stdout.
func (s *System) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s: %w: %s", name, err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// Run runs the command and reports only whether it succeeded.
func (s *System) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Interactive runs the command wired to the caller's terminal.
func (s *System) Interactive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Getenv returns the value of an environment variable.
func (s *System) Getenv(key string) string {
	return os.Getenv(key)
}
