// Package picker provides the interactive session picker for "nitro pick".
//
// It shows the merged tmux/zoxide list, filters it as the user types, and
// returns the chosen entry so the caller can connect to it. The same flow as
// piping "nitro list" through an external fuzzy finder, without the finder.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timvw/nitro/internal/list"
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tmuxStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	zoxideStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Kind says which source an item came from.
type Kind int

const (
	KindSession Kind = iota
	KindDir
)

// Item is one selectable row: a tmux session or a zoxide directory.
type Item struct {
	Kind  Kind
	Label string // session name or absolute path
}

// model implements tea.Model.
type model struct {
	items    []Item
	filtered []int // indices into items matching the current filter
	cursor   int   // index into filtered
	input    textinput.Model
	active   string // current tmux session name, badged in the list
	icons    bool   // glyph prefixes instead of ASCII tags
	choice   *Item
	height   int
}

func newModel(items []Item, active string, icons bool) *model {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "> "
	ti.Focus()

	m := &model{
		items:  items,
		input:  ti,
		active: active,
		icons:  icons,
		height: 24,
	}
	m.refilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.choice = nil
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				it := m.items[m.filtered[m.cursor]]
				m.choice = &it
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the visible rows from the filter text and clamps the
// cursor. Matching is a case-insensitive substring test on the label.
func (m *model) refilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	m.filtered = m.filtered[:0]
	for i, it := range m.items {
		if query == "" || strings.Contains(strings.ToLower(it.Label), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("nitro") + "  " + dimStyle.Render("sessions and directories"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.height - 7
	if visible < 1 {
		visible = 1
	}

	for row, idx := range m.filtered {
		if row >= visible {
			b.WriteString(dimStyle.Render("  ...") + "\n")
			break
		}
		it := m.items[idx]

		// Same prefixes as list output, two spaces after a glyph.
		var prefix string
		switch {
		case it.Kind == KindSession && m.icons:
			prefix = tmuxStyle.Render(list.IconTmux) + "  "
		case it.Kind == KindSession:
			prefix = tmuxStyle.Render(list.TagTmux) + " "
		case m.icons:
			prefix = zoxideStyle.Render(list.IconZoxide) + "  "
		default:
			prefix = zoxideStyle.Render(list.TagZoxide) + " "
		}

		label := it.Label
		if it.Kind == KindSession && it.Label == m.active {
			label += " " + activeStyle.Render("(attached)")
		}

		line := prefix + label
		if row == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ move • enter connect • esc quit"))
	return b.String()
}

// Run shows the picker and returns the chosen item, or nil if dismissed.
func Run(items []Item, active string, icons bool) (*Item, error) {
	m := newModel(items, active, icons)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*model).choice, nil
}
