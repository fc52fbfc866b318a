package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/tui/components"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ledgerState tracks the day table's cursor and scroll offset.
type ledgerState struct {
	cursor int
	offset int
}

func (s *ledgerState) clamp(n int) {
	s.cursor = max(0, min(s.cursor, n-1))
	s.offset = max(0, min(s.offset, s.cursor))
}

// handleKey moves the cursor and reports whether key was consumed.
func (s *ledgerState) handleKey(key string, n, page int) bool {
	switch key {
	case "j", "down":
		s.cursor++
	case "k", "up":
		s.cursor--
	case "g", "home":
		s.cursor = 0
	case "G", "end":
		s.cursor = n - 1
	case "ctrl+d":
		s.cursor += page / 2
	case "ctrl+u":
		s.cursor -= page / 2
	default:
		return false
	}
	s.clamp(n)
	if s.cursor >= s.offset+page {
		s.offset = s.cursor - page + 1
	}
	return true
}

func (a App) renderLedgerTab(cw int) string {
	t := theme.Active
	days := a.ledger.Days()

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(days) == 0 {
		return components.ContentCard("Ledger", muted.Render("No days yet. Press [a] to add one."), cw)
	}

	header := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	row := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selected := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	gain := lipgloss.NewStyle().Foreground(t.Gain).Background(t.Surface)
	loss := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	const cols = "%5s  %9s  %9s  %9s  %-7s  %9s  %10s  "
	fixedW := lipgloss.Width(fmt.Sprintf(cols, "", "", "", "", "", "", ""))
	biasW := max(innerW-fixedW, 12)

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf(cols+"%-*s", "Day", "Planned", "Actual", "Goal", "Impulse", "Net", "Cumulative", biasW, "Biases")))
	b.WriteString("\n")

	page := a.pageSize()
	end := min(a.ledgerState.offset+page, len(days))
	for i := a.ledgerState.offset; i < end; i++ {
		d := days[i]
		cum := a.cumulative[i]

		netStyle, cumStyle := gain, gain
		if d.Net().IsNegative() {
			netStyle = loss
		}
		if cum.IsNegative() {
			cumStyle = loss
		}

		base := row
		if i == a.ledgerState.cursor {
			base = selected
			netStyle = netStyle.Background(t.SurfaceHover)
			cumStyle = cumStyle.Background(t.SurfaceHover)
		}

		b.WriteString(base.Render(fmt.Sprintf("%5d  %9s  %9s  %9s  %-7s  ",
			d.Day,
			cli.FormatMoney(a.currency, d.PlannedSpend),
			cli.FormatMoney(a.currency, d.ActualSpend),
			cli.FormatMoney(a.currency, d.SavingsGoal),
			cli.FormatImpulse(d.ImpulseLevel))))
		b.WriteString(netStyle.Render(fmt.Sprintf("%9s  ", cli.FormatSignedMoney(a.currency, d.Net()))))
		b.WriteString(cumStyle.Render(fmt.Sprintf("%10s  ", cli.FormatSignedMoney(a.currency, cum))))
		b.WriteString(a.renderBiasCell(d.Biases, base, biasW))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("%d-%d of %d  [j/k] move  [g/G] first/last", a.ledgerState.offset+1, end, len(days))))

	return components.ContentCard("Ledger", b.String(), cw)
}

func (a App) renderBiasCell(bs model.Biases, base lipgloss.Style, w int) string {
	t := theme.Active
	if len(bs) == 0 {
		return base.Foreground(t.TextDim).Render(fmt.Sprintf("%-*s", w, model.NoBiasLabel))
	}
	var b strings.Builder
	used := 0
	for i, bias := range bs {
		label := bias.Label()
		if i > 0 {
			label = ", " + label
		}
		if used+len(label) > w {
			break
		}
		b.WriteString(base.Foreground(t.Bias(bias)).Render(label))
		used += len(label)
	}
	b.WriteString(base.Render(strings.Repeat(" ", w-used)))
	return b.String()
}
