package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	TurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// pieceStyles returns the board piece styles for a theme. The default theme
// leans on the terminal palette; dark and light pick explicit contrasts.
func pieceStyles(theme string) (white, black lipgloss.Style) {
	switch theme {
	case "dark":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	case "light":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	}
}
