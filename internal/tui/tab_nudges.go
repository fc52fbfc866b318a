package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderNudgesTab(cw int) string {
	t := theme.Active

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dayStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if len(a.nudges) == 0 {
		return components.ContentCard("Behavioral Nudges",
			muted.Render("No biases detected, nothing to suggest."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	var b strings.Builder
	blank := lipgloss.NewStyle().Background(t.Surface)
	msgW := max(innerW-8-17, 20)
	for i, n := range a.nudges {
		day := blank.Render(strings.Repeat(" ", 8))
		if i == 0 || a.nudges[i-1].Day != n.Day {
			day = dayStyle.Render(fmt.Sprintf("%-8s", fmt.Sprintf("Day %d", n.Day)))
		}
		tag := lipgloss.NewStyle().Foreground(t.Bias(n.Bias)).Background(t.Surface).
			Render(fmt.Sprintf("%-17s", n.Bias.Label()))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, day, tag, msgStyle.Width(msgW).Render(n.Message)))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("%d nudges across %d biased days", len(a.nudges), a.stats.BiasedDays)))

	return components.ContentCard("Behavioral Nudges", b.String(), cw)
}
