package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBiasesTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.stats.Days == 0 {
		return components.ContentCard("Bias Heatmap", muted.Render("No days yet. Press [a] to add one."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	labelW := len(model.NoBiasLabel)
	barW := max(min(innerW-labelW-7, 50), 10)

	var shares strings.Builder
	for _, bs := range a.biasStats {
		shares.WriteString(components.ShareBar(bs.Bias.Label(), bs.SharePercent, t.Bias(bs.Bias), labelW, barW))
		shares.WriteString(muted.Render(fmt.Sprintf("  %d days", bs.Days)))
		shares.WriteString("\n")
	}
	clean := 0.0
	if a.stats.Days > 0 {
		clean = float64(a.stats.CleanDays) / float64(a.stats.Days) * 100
	}
	shares.WriteString(components.ShareBar(model.NoBiasLabel, clean, t.Gain, labelW, barW))
	shares.WriteString(muted.Render(fmt.Sprintf("  %d days", a.stats.CleanDays)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Share of Days per Bias", shares.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Bias Heatmap", components.Heatmap(a.matrix, innerW), cw))
	return b.String()
}
