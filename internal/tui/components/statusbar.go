package components

import (
	"strings"

	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional flash message in the middle, and session info on the right.
func RenderStatusBar(width int, flash string, flashErr bool, info string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Gain).Background(t.Surface).Bold(true)
	if flashErr {
		flashStyle = flashStyle.Foreground(t.Loss)
	}

	left := base.Render(" [?]help  [a]dd day  [r]eset  [q]uit")
	right := base.Render(info + " ")
	mid := ""
	if flash != "" {
		mid = flashStyle.Render("  " + flash)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(mid)-lipgloss.Width(right), 0)
	return left + mid + base.Render(strings.Repeat(" ", padding)) + right
}
