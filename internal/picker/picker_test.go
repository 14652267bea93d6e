package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/timvw/nitro/internal/list"
)

func testItems() []Item {
	return []Item{
		{Kind: KindSession, Label: "api"},
		{Kind: KindSession, Label: "web"},
		{Kind: KindDir, Label: "/home/u/webapp"},
	}
}

func TestFilter_NarrowsByLabelSubstring(t *testing.T) {
	m := newModel(testItems(), "", false)

	for _, r := range "web" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		next, _ := m.Update(msg)
		m = next.(*model)
	}

	if len(m.filtered) != 2 {
		t.Fatalf("filtered: got %d rows, want 2", len(m.filtered))
	}
	if m.items[m.filtered[0]].Label != "web" || m.items[m.filtered[1]].Label != "/home/u/webapp" {
		t.Errorf("unexpected filter result: %v", m.filtered)
	}
}

func TestFilter_ClampsCursor(t *testing.T) {
	m := newModel(testItems(), "", false)
	m.cursor = 2

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	next, _ := m.Update(msg)
	m = next.(*model)

	// "a" matches api and /home/u/webapp; cursor must stay in range.
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor %d out of range for %d rows", m.cursor, len(m.filtered))
	}
}

func TestKeys_NavigationAndChoice(t *testing.T) {
	m := newModel(testItems(), "", false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(*model)
	if m.cursor != 1 {
		t.Fatalf("cursor after down: got %d, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(*model)
	if m.cursor != 0 {
		t.Fatalf("cursor after up: got %d, want 0", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*model)
	if m.choice == nil || m.choice.Label != "api" {
		t.Errorf("choice: got %+v, want api", m.choice)
	}
}

func TestKeys_EscapeDismissesWithoutChoice(t *testing.T) {
	m := newModel(testItems(), "", false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(*model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(*model)

	if m.choice != nil {
		t.Errorf("escape must not choose, got %+v", m.choice)
	}
}

func TestView_BadgesActiveSession(t *testing.T) {
	m := newModel(testItems(), "web", false)
	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	// The attached badge follows the active session label.
	if want := "(attached)"; !contains(view, want) {
		t.Errorf("view missing %q", want)
	}
}

// Rows carry the same prefixes as list output: ASCII tags by default, glyphs
// with two trailing spaces in icon mode.
func TestView_PrefixesFollowIconMode(t *testing.T) {
	ascii := newModel(testItems(), "", false).View()
	if !contains(ascii, list.TagTmux+" api") {
		t.Errorf("ascii view missing tagged session row:\n%s", ascii)
	}
	if !contains(ascii, list.TagZoxide+" /home/u/webapp") {
		t.Errorf("ascii view missing tagged directory row:\n%s", ascii)
	}

	icons := newModel(testItems(), "", true).View()
	if !contains(icons, list.IconTmux+"  api") {
		t.Errorf("icon view missing glyph session row:\n%s", icons)
	}
	if !contains(icons, list.IconZoxide+"  /home/u/webapp") {
		t.Errorf("icon view missing glyph directory row:\n%s", icons)
	}
	if contains(icons, list.TagTmux) || contains(icons, list.TagZoxide) {
		t.Error("icon view still renders ASCII tags")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
