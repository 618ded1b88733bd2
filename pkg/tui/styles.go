package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(1)

	historyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("215")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			PaddingLeft(2)
)

// typeIcon returns the display marker for an item type.
func typeIcon(itemType string) string {
	switch itemType {
	case "project":
		return "◆"
	case "endorsement":
		return "✦"
	case "activity":
		return "●"
	default:
		return "○"
	}
}
