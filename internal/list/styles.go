package list

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles holds the prefix styles for the two sources.
// Magenta for tmux, blue for zoxide.
type styles struct {
	tmux   lipgloss.Style
	zoxide lipgloss.Style
}

// newStyles builds prefix styles on a renderer with an explicit color
// profile, independent of the terminal lipgloss would otherwise detect:
// plain ANSI when color is enabled, no escapes at all when it is not.
func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		tmux:   r.NewStyle().Foreground(lipgloss.Color("5")),
		zoxide: r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}
