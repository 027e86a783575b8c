package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorProject  = "35"  // Green for #project tags
	ColorPerson   = "33"  // Blue for @person tags
	ColorTodo     = "170" // Magenta for open todo markers
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)).
			Bold(true)

	// Tag highlighting in the entry editor and log view
	ProjectTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorProject)).
			Bold(true)

	PersonTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPerson)).
			Bold(true)

	TodoOpenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTodo))

	TodoDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Strikethrough(true)

	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorWhite)).
			Foreground(lipgloss.Color("0"))

	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorWarning)).
			Padding(0, 1)
)

// helpBar renders alternating key/description pairs the way every screen's
// bottom bar shows them.
func helpBar(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += HelpStyle.Render("  ")
		}
		out += HelpKeyStyle.Render(pairs[i]) + HelpStyle.Render(" "+pairs[i+1])
	}
	return out
}
