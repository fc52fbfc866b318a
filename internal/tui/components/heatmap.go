package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Heatmap renders a label-by-day indicator grid with rows in
// model.AllBiases order followed by the no-bias row. Set cells take the
// bias color; the no-bias row uses the Gain color.
// When the days do not fit in width, the most recent days are shown.
func Heatmap(m model.BiasMatrix, width int) string {
	if len(m.Rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	for _, r := range m.Rows {
		labelW = max(labelW, lipgloss.Width(r))
	}
	const cellW = 3 // two blocks + gap

	first := 0
	if fit := max((width-labelW-1)/cellW, 1); len(m.Days) > fit {
		first = len(m.Days) - fit
	}

	bg := lipgloss.NewStyle().Background(t.Surface)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(bg.Render(strings.Repeat(" ", labelW+1)))
	for _, d := range m.Days[first:] {
		b.WriteString(dim.Render(fmt.Sprintf("%-*s", cellW, shortDay(d))))
	}
	b.WriteString("\n")

	for i, name := range m.Rows {
		color := t.Gain
		if i < len(model.AllBiases) {
			color = t.Bias(model.AllBiases[i])
		}
		on := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

		b.WriteString(label.Render(fmt.Sprintf("%-*s ", labelW, name)))
		for _, v := range m.Cells[i][first:] {
			if v > 0 {
				b.WriteString(on.Render("██") + bg.Render(" "))
			} else {
				b.WriteString(dim.Render("··") + bg.Render(" "))
			}
		}
		if i < len(m.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func shortDay(d int) string {
	if d < 100 {
		return fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%d", d%100)
}
