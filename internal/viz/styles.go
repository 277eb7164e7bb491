package viz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bonsai/internal/bonsai"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
)

// cellStyle maps an engine style onto the 16 color ANSI palette.
func cellStyle(s bonsai.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(int(s.Foreground)))).
		Bold(s.Bold)
}
