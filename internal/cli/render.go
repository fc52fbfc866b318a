package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Palette, warm paper tones with the dashboard's signal red.
var (
	ColorBorder    = lipgloss.Color("#403E3C")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#D32F2F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	gainStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	lossStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// BiasColor returns the display color for a bias label.
func BiasColor(b model.Bias) lipgloss.Color {
	switch b {
	case model.ImpulseSpending:
		return ColorOrange
	case model.PresentBias:
		return ColorPurple
	case model.LossAversion:
		return ColorBlue
	default:
		return ColorTextMuted
	}
}

// RenderBiases renders a day's labels, colored per bias.
func RenderBiases(bs model.Biases) string {
	if len(bs) == 0 {
		return mutedStyle.Render(model.NoBiasLabel)
	}
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = lipgloss.NewStyle().Foreground(BiasColor(b)).Render(b.Label())
	}
	return strings.Join(parts, mutedStyle.Render(", "))
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// LeftAlign marks columns rendered left-aligned; column 0 always is.
	LeftAlign map[int]bool
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row consisting of the single cell "---" renders as a separator.
// Cells may contain ANSI styling; widths are measured visually.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	line := func(cells []string, style lipgloss.Style, header bool) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if header || i == 0 || t.LeftAlign[i] {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle, true))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, valueStyle, false))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
// Values are scaled between the series minimum and maximum so negative
// running totals still show their shape.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderSignedBar renders one row of a diverging bar chart centered on zero:
// negative values grow left in red, positive values grow right in green.
// half is the width of each side.
func RenderSignedBar(label string, value, maxAbs float64, half int, valueText string) string {
	n := 0
	if maxAbs > 0 {
		n = int(math.Abs(value) / maxAbs * float64(half))
	}
	n = min(n, half)

	left := strings.Repeat(" ", half)
	right := ""
	if value < 0 {
		left = strings.Repeat(" ", half-n) + lossStyle.Render(strings.Repeat("█", n))
	} else {
		right = gainStyle.Render(strings.Repeat("█", n))
	}
	return fmt.Sprintf("  %s %s%s%s %s",
		mutedStyle.Render(label), left, dimStyle.Render("│"), right, valueStyle.Render(valueText))
}
