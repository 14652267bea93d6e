package tmux

import (
	"context"
	"testing"

	"github.com/timvw/nitro/internal/shell"
)

func TestListSessions_SortsAndSkipsBlanks(t *testing.T) {
	sc := shell.NewScripted().With("b\na\n\n", "tmux", "list-sessions", "-F", "#S")
	c := New(sc, "")

	got, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("session %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListSessions_ErrorNamesCommand(t *testing.T) {
	sc := shell.NewScripted().Failing("tmux", "list-sessions", "-F", "#S")
	c := New(sc, "")

	if _, err := c.ListSessions(context.Background()); err == nil {
		t.Fatal("expected error when tmux fails")
	}
}

func TestHasSession(t *testing.T) {
	sc := shell.NewScripted().Failing("tmux", "has-session", "-t", "gone")
	c := New(sc, "")

	if !c.HasSession(context.Background(), "web") {
		t.Error("expected web to exist")
	}
	if c.HasSession(context.Background(), "gone") {
		t.Error("expected gone to be missing")
	}
}

func TestNewSession_UsesDirectory(t *testing.T) {
	sc := shell.NewScripted()
	c := New(sc, "")

	if err := c.NewSession(context.Background(), "web", "/srv/web"); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !sc.Called("tmux", "new-session", "-ds", "web", "-c", "/srv/web") {
		t.Errorf("unexpected calls: %v", sc.Calls)
	}
}

func TestInsideClient(t *testing.T) {
	out := New(shell.NewScripted(), "")
	if out.InsideClient() {
		t.Error("expected outside tmux without TMUX env")
	}
	in := New(shell.NewScripted().WithEnv("TMUX", "/tmp/tmux-1000/default,123,0"), "")
	if !in.InsideClient() {
		t.Error("expected inside tmux with TMUX env")
	}
}

func TestActiveSession_FallsBackToAttachedScan(t *testing.T) {
	sc := shell.NewScripted().
		With("\n", "tmux", "display-message", "-p", "-F", "#S").
		With("0\tidle\n1\twork\n", "tmux", "list-sessions", "-F", "#{?session_attached,1,0}\t#S")
	c := New(sc, "")

	if got := c.ActiveSession(context.Background()); got != "work" {
		t.Errorf("ActiveSession: got %q, want %q", got, "work")
	}
}

func TestActiveSession_PrefersDisplayMessage(t *testing.T) {
	sc := shell.NewScripted().With("work\n", "tmux", "display-message", "-p", "-F", "#S")
	c := New(sc, "")

	if got := c.ActiveSession(context.Background()); got != "work" {
		t.Errorf("ActiveSession: got %q, want %q", got, "work")
	}
}

func TestCustomBinary(t *testing.T) {
	sc := shell.NewScripted().With("a\n", "/opt/tmux", "list-sessions", "-F", "#S")
	c := New(sc, "/opt/tmux")

	got, err := c.ListSessions(context.Background())
	if err != nil || len(got) != 1 || got[0] != "a" {
		t.Errorf("ListSessions with custom binary: got %v, %v", got, err)
	}
}

func TestSessionName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"web", "web"},
		{"my session", "my-session"},
		{"a:b#c", "a-b-c"},
		{"  spaced   out  ", "spaced-out"},
		{"-web-", "web"},
		{":::", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SessionName(tt.in); got != tt.want {
			t.Errorf("SessionName(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
