package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, LayoutRow(10, 3))
	assert.Nil(t, LayoutRow(10, 0))
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "Content", 22)
	tall := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)
	shortLines := lipgloss.Height(short)
	tallLines := lipgloss.Height(tall)
	require.Less(t, shortLines, tallLines)

	lines := strings.Split(CardRow([]string{tall, short}), "\n")
	require.Len(t, lines, tallLines)

	for i, line := range lines {
		assert.Equal(t, 44, lipgloss.Width(line), "line %d width", i)
		if i >= shortLines {
			assert.Contains(t, line, "\x1b[", "padding line %d has no styling", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("paper")

	row := MetricCardRow([]Metric{
		{Label: "Days", Value: "7"},
		{Label: "Net", Value: "+$35", Tone: theme.Active.Gain},
		{Label: "Biased", Value: "3", Delta: "of 7 days"},
	}, 61)
	for _, line := range strings.Split(row, "\n") {
		assert.Equal(t, 61, lipgloss.Width(line))
	}
}

func TestTabVisualWidth(t *testing.T) {
	for _, tab := range Tabs {
		assert.Equal(t, len(tab.Name)+2, TabVisualWidth(tab, true), tab.Name)
		want := len(tab.Name) + 2
		if tab.KeyPos < 0 {
			want += 3
		}
		assert.Equal(t, want, TabVisualWidth(tab, false), tab.Name)
	}
}

func TestTabIdxByKey(t *testing.T) {
	assert.Equal(t, 0, TabIdxByKey('o'))
	assert.Equal(t, 4, TabIdxByKey('x'))
	assert.Equal(t, -1, TabIdxByKey('z'))
}

func TestPairedBarChart(t *testing.T) {
	out := PairedBarChart([]float64{20, 50}, []float64{25, 10}, []string{"D1", "D2"}, 40, 8)
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "D1")
	assert.Contains(t, out, "planned")
	assert.Empty(t, PairedBarChart(nil, nil, nil, 40, 8))
}

func TestSignedBarChart_BothSigns(t *testing.T) {
	out := SignedBarChart([]float64{-5, 35, 35, 33}, []string{"D1", "D2", "D3", "D4"}, 40, 8)
	assert.Contains(t, out, "┼")
	assert.Contains(t, out, "-") // negative tick label
	assert.Contains(t, out, "D4")

	axisAt := -1
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "┼") {
			axisAt = i
		}
	}
	assert.Greater(t, axisAt, 0, "positive rows render above the baseline")
}

func TestSignedBarChart_Empty(t *testing.T) {
	assert.Empty(t, SignedBarChart(nil, nil, 40, 8))
}

func TestHeatmap(t *testing.T) {
	m := model.BiasMatrix{
		Rows:  []string{"Impulse Spending", "Present Bias", "Loss Aversion", model.NoBiasLabel},
		Days:  []int{1, 2},
		Cells: [][]int{{1, 0}, {0, 0}, {0, 1}, {0, 0}},
	}
	out := Heatmap(m, 80)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Impulse Spending")
	assert.Contains(t, lines[1], "██")
	assert.NotContains(t, lines[2], "██")
	assert.Contains(t, lines[4], model.NoBiasLabel)
}

func TestHeatmap_ShowsMostRecentDays(t *testing.T) {
	days := make([]int, 40)
	cells := [][]int{make([]int, 40)}
	for i := range days {
		days[i] = i + 1
	}
	out := Heatmap(model.BiasMatrix{Rows: []string{"X"}, Days: days, Cells: cells}, 20)
	header := strings.Split(out, "\n")[0]
	assert.Contains(t, header, "40")
	assert.NotContains(t, header, " 1 ")
}

func TestGoalBar(t *testing.T) {
	assert.Contains(t, GoalBar(25, 50, 30), "50%")
	assert.Contains(t, GoalBar(-5, 50, 30), "0%")
	assert.Contains(t, GoalBar(80, 50, 30), "100%")
}
