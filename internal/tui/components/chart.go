package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline scaled between the series min and max.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := 1 + int((v-lo)/span*float64(len(blocks)-2))
		buf.WriteRune(blocks[max(1, min(idx, len(blocks)-1))])
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// yScale is a vertical axis fitted to a maximum magnitude.
type yScale struct {
	ceiling float64
	rows    int
	labels  map[int]string // row (1-based from the baseline) -> tick label
	labelW  int
}

func newYScale(maxVal float64, height int) yScale {
	if maxVal <= 0 {
		maxVal = 1
	}
	step := chartTickStep(maxVal)
	maxIntervals := max(height/2, 1)
	for int(math.Ceil(maxVal/step)) > maxIntervals {
		step *= 2
	}
	ceiling := math.Ceil(maxVal/step) * step
	intervals := max(int(math.Round(ceiling/step)), 1)
	perTick := max(height/intervals, 1)

	s := yScale{
		ceiling: ceiling,
		rows:    perTick * intervals,
		labels:  make(map[int]string, intervals),
		labelW:  max(len(formatChartLabel(ceiling))+2, 4),
	}
	for i := 1; i <= intervals; i++ {
		s.labels[i*perTick] = formatChartLabel(step * float64(i))
	}
	return s
}

// cell returns the block for a bar of magnitude v in the given row.
func (s yScale) cell(v float64, row int) rune {
	top := s.ceiling * float64(row) / float64(s.rows)
	bottom := s.ceiling * float64(row-1) / float64(s.rows)
	switch {
	case v >= top:
		return '█'
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		return blocks[max(1, min(idx, 8))]
	default:
		return ' '
	}
}

// hangingCell is cell for bars that grow down from the baseline.
func (s yScale) hangingCell(v float64, row int) rune {
	switch c := s.cell(v, row); c {
	case '█', ' ':
		return c
	default:
		if c >= '▅' {
			return '█'
		}
		return '▀'
	}
}

// PairedBarChart renders planned and actual values side by side for each
// label, sharing one axis starting at zero.
func PairedBarChart(planned, actual []float64, labels []string, width, height int) string {
	n := min(len(planned), len(actual))
	if n == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for i := 0; i < n; i++ {
		peak = max(peak, planned[i], actual[i])
	}
	s := newYScale(peak, height)

	chartW := max(width-s.labelW-1, 5)
	barW := max(min((chartW-(n-1))/(2*n), 3), 1)
	groupW := 2 * barW
	axisLen := n*groupW + (n - 1)

	bg := lipgloss.NewStyle().Background(t.Surface)
	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	plannedStyle := lipgloss.NewStyle().Foreground(t.Planned).Background(t.Surface)
	actualStyle := lipgloss.NewStyle().Foreground(t.Actual).Background(t.Surface)

	var b strings.Builder
	for row := s.rows; row >= 1; row-- {
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", s.labelW, s.labels[row])))
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(bg.Render(" "))
			}
			b.WriteString(plannedStyle.Render(strings.Repeat(string(s.cell(planned[i], row)), barW)))
			b.WriteString(actualStyle.Render(strings.Repeat(string(s.cell(actual[i], row)), barW)))
		}
		b.WriteString("\n")
	}
	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", s.labelW, "0", strings.Repeat("─", axisLen))))

	if lbl := xLabels(labels, n, groupW+1, axisLen); lbl != "" {
		b.WriteString("\n")
		b.WriteString(bg.Render(strings.Repeat(" ", s.labelW+1)))
		b.WriteString(axis.Render(lbl))
	}
	b.WriteString("\n")
	b.WriteString(bg.Render(strings.Repeat(" ", s.labelW+1)))
	b.WriteString(plannedStyle.Render("█") + axis.Render(" planned  "))
	b.WriteString(actualStyle.Render("█") + axis.Render(" actual"))
	return b.String()
}

// SignedBarChart renders a diverging bar chart around a zero baseline.
// Positive values rise in the Gain color, negative values hang in the Loss color.
func SignedBarChart(values []float64, labels []string, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	t := theme.Active

	peak, hasPos, hasNeg := 0.0, false, false
	for _, v := range values {
		peak = max(peak, math.Abs(v))
		hasPos = hasPos || v > 0
		hasNeg = hasNeg || v < 0
	}
	half := height
	if hasPos && hasNeg {
		half = max(height/2, 2)
	}
	s := newYScale(peak, half)

	chartW := max(width-s.labelW-1, 5)
	barW := max(min((chartW-(n-1))/n, 6), 1)
	axisLen := n*barW + (n - 1)

	bg := lipgloss.NewStyle().Background(t.Surface)
	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gain := lipgloss.NewStyle().Foreground(t.Gain).Background(t.Surface)
	loss := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface)

	var b strings.Builder
	row := func(label string, cellFor func(v float64) (rune, lipgloss.Style)) {
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", s.labelW, label)))
		for i, v := range values {
			if i > 0 {
				b.WriteString(bg.Render(" "))
			}
			r, st := cellFor(v)
			b.WriteString(st.Render(strings.Repeat(string(r), barW)))
		}
		b.WriteString("\n")
	}

	if hasPos || !hasNeg {
		for r := s.rows; r >= 1; r-- {
			row(s.labels[r], func(v float64) (rune, lipgloss.Style) {
				if v <= 0 {
					return ' ', bg
				}
				return s.cell(v, r), gain
			})
		}
	}
	b.WriteString(axis.Render(fmt.Sprintf("%*s┼%s", s.labelW, "0", strings.Repeat("─", axisLen))))
	b.WriteString("\n")
	if hasNeg {
		for r := 1; r <= s.rows; r++ {
			label := ""
			if l, ok := s.labels[r]; ok {
				label = "-" + l
			}
			row(label, func(v float64) (rune, lipgloss.Style) {
				if v >= 0 {
					return ' ', bg
				}
				return s.hangingCell(-v, r), loss
			})
		}
	}

	if lbl := xLabels(labels, n, barW+1, axisLen); lbl != "" {
		b.WriteString(bg.Render(strings.Repeat(" ", s.labelW+1)))
		b.WriteString(axis.Render(lbl))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// xLabels lays labels out under bars that start every stride columns,
// skipping any that would overlap the previous one.
func xLabels(labels []string, n, stride, axisLen int) string {
	if len(labels) != n || n == 0 {
		return ""
	}
	buf := []byte(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, lbl := range labels {
		pos := i * stride
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
