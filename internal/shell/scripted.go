package shell

import (
	"context"
	"fmt"
	"strings"
)

// Scripted is a test double for Runner that returns canned results instead
// of spawning processes. Commands are keyed by their full command line,
// e.g. "tmux list-sessions -F #S".
//
// NOTE: this file is a regular (non-test) file because test packages across
// internal/ share it.
type Scripted struct {
	// Outputs maps a command line to the stdout Output returns for it.
	Outputs map[string]string
	// Fail marks command lines whose Output/Run/Interactive calls fail.
	Fail map[string]bool
	// Env holds environment variables visible through Getenv.
	Env map[string]string

	// Calls records every command line executed, in order.
	Calls []string
}

// NewScripted returns an empty Scripted runner.
func NewScripted() *Scripted {
	return &Scripted{
		Outputs: make(map[string]string),
		Fail:    make(map[string]bool),
		Env:     make(map[string]string),
	}
}

// With scripts stdout for a command line and returns the runner for chaining.
func (s *Scripted) With(output string, name string, args ...string) *Scripted {
	s.Outputs[commandLine(name, args)] = output
	return s
}

// Failing marks a command line as failing.
func (s *Scripted) Failing(name string, args ...string) *Scripted {
	s.Fail[commandLine(name, args)] = true
	return s
}

// WithEnv sets an environment variable.
func (s *Scripted) WithEnv(key, value string) *Scripted {
	s.Env[key] = value
	return s
}

// Output returns the scripted stdout for the command line, or empty output
// when nothing was scripted (mirrors a tool that prints nothing).
func (s *Scripted) Output(_ context.Context, name string, args ...string) (string, error) {
	line := commandLine(name, args)
	s.Calls = append(s.Calls, line)
	if s.Fail[line] {
		return "", fmt.Errorf("%s: scripted failure", line)
	}
	return s.Outputs[line], nil
}

// Run reports the scripted exit status for the command line.
func (s *Scripted) Run(_ context.Context, name string, args ...string) error {
	line := commandLine(name, args)
	s.Calls = append(s.Calls, line)
	if s.Fail[line] {
		return fmt.Errorf("%s: scripted failure", line)
	}
	return nil
}

// Interactive behaves like Run; there is no terminal to wire up.
func (s *Scripted) Interactive(ctx context.Context, name string, args ...string) error {
	return s.Run(ctx, name, args...)
}

// Getenv returns the scripted environment variable.
func (s *Scripted) Getenv(key string) string {
	return s.Env[key]
}

// Called reports whether a command line was executed.
func (s *Scripted) Called(name string, args ...string) bool {
	line := commandLine(name, args)
	for _, c := range s.Calls {
		if c == line {
			return true
		}
	}
	return false
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
