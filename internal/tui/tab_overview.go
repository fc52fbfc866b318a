package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/pipeline"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.stats

	if stats.Days == 0 {
		return components.ContentCard("Overview",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
				Render("No days yet. Press [a] to add one."),
			cw)
	}

	netTone := t.Gain
	if stats.NetSavings.IsNegative() {
		netTone = t.Loss
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{
			Label: "Days",
			Value: cli.FormatNumber(int64(stats.Days)),
			Delta: fmt.Sprintf("%d clean", stats.CleanDays),
		},
		{
			Label: "Net Savings",
			Value: cli.FormatSignedMoney(a.currency, stats.NetSavings),
			Delta: "vs " + cli.FormatMoney(a.currency, stats.TotalGoal) + " goal",
			Tone:  netTone,
		},
		{
			Label: "Spent",
			Value: cli.FormatMoney(a.currency, stats.TotalActual),
			Delta: "planned " + cli.FormatMoney(a.currency, stats.TotalPlanned),
		},
		{
			Label: "Biased Days",
			Value: cli.FormatNumber(int64(stats.BiasedDays)),
			Delta: fmt.Sprintf("avg impulse %.1f", stats.AvgImpulse),
		},
	}, cw))
	b.WriteString("\n")

	days := a.ledger.Days()
	labels := dayLabels(days)
	planned, actual := pipeline.SpendSeries(a.ledger)
	savings := pipeline.SavingsSeries(a.ledger)

	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}

	spendCard := func(w int) string {
		return components.ContentCard("Spending vs Planned",
			components.PairedBarChart(planned, actual, labels, components.CardInnerWidth(w), chartH), w)
	}
	savingsCard := func(w int) string {
		return components.ContentCard("Cumulative Savings",
			components.SignedBarChart(savings, labels, components.CardInnerWidth(w), chartH), w)
	}

	if a.isCompactLayout() {
		b.WriteString(spendCard(cw))
		b.WriteString("\n")
		b.WriteString(savingsCard(cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{spendCard(halves[0]), savingsCard(halves[1])}))
	}
	b.WriteString("\n")

	goalBody := components.GoalBar(
		stats.NetSavings.InexactFloat64(), stats.TotalGoal.InexactFloat64(),
		components.CardInnerWidth(cw))
	b.WriteString(components.ContentCard("Savings Goal Progress", goalBody, cw))

	return b.String()
}
