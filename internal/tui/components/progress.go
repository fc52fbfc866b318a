package components

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a labeled bar for a 0-100 share with its percentage.
func ShareBar(label string, pct float64, color lipgloss.Color, labelW, barW int) string {
	t := theme.Active
	frac := max(0, min(pct/100, 1))

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.Border)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space + bar.ViewAs(frac) + space +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// GoalBar renders progress of net savings toward the total savings goal.
// A negative net renders an empty bar in the Loss color.
func GoalBar(net, goal float64, width int) string {
	t := theme.Active

	frac := 0.0
	if goal > 0 {
		frac = max(0, min(net/goal, 1))
	}
	color := t.Gain
	if net < 0 {
		color = t.Loss
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width-6, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.Border)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	return bar.ViewAs(frac) + space + pctStyle.Render(fmt.Sprintf("%3.0f%%", frac*100))
}
