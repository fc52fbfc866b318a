package pipeline

import (
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLedger(t *testing.T) Ledger {
	t.Helper()
	l, err := NewLedger(
		raw(20, 25, 15, 3), // impulse
		raw(50, 10, 5, 1),  // loss aversion
		raw(30, 30, 10, 2), // none
		raw(10, 12, 20, 5), // impulse + present
	)
	require.NoError(t, err)
	return l
}

func TestAggregate(t *testing.T) {
	stats := Aggregate(sampleLedger(t))

	assert.Equal(t, 4, stats.Days)
	assert.Equal(t, 3, stats.BiasedDays)
	assert.Equal(t, 1, stats.CleanDays)
	assert.True(t, stats.TotalPlanned.Equal(dec(110)), "planned = %s", stats.TotalPlanned)
	assert.True(t, stats.TotalActual.Equal(dec(77)), "actual = %s", stats.TotalActual)
	assert.True(t, stats.TotalGoal.Equal(dec(50)), "goal = %s", stats.TotalGoal)
	assert.True(t, stats.NetSavings.Equal(dec(33)), "net = %s", stats.NetSavings)
	assert.True(t, stats.Overspend.Equal(dec(7)), "overspend = %s", stats.Overspend)
	assert.InDelta(t, 2.75, stats.AvgImpulse, 1e-9)
}

func TestAggregate_NetMatchesLastCumulative(t *testing.T) {
	l := sampleLedger(t)
	cum := CumulativeSavings(l)
	assert.True(t, Aggregate(l).NetSavings.Equal(cum[len(cum)-1]))
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(Ledger{})
	assert.Zero(t, stats.Days)
	assert.True(t, stats.NetSavings.IsZero())
	assert.True(t, stats.AvgActualSpend.IsZero())
}

func TestAggregateBiases(t *testing.T) {
	got := AggregateBiases(sampleLedger(t))
	require.Len(t, got, 3)

	assert.Equal(t, model.ImpulseSpending, got[0].Bias)
	assert.Equal(t, 2, got[0].Days)
	assert.InDelta(t, 50.0, got[0].SharePercent, 1e-9)

	assert.Equal(t, model.PresentBias, got[1].Bias)
	assert.Equal(t, 1, got[1].Days)

	assert.Equal(t, model.LossAversion, got[2].Bias)
	assert.Equal(t, 1, got[2].Days)
}

func TestBiasMatrix(t *testing.T) {
	m := BiasMatrix(sampleLedger(t))

	assert.Equal(t, []string{"Impulse Spending", "Present Bias", "Loss Aversion", "No Bias Detected"}, m.Rows)
	assert.Equal(t, []int{1, 2, 3, 4}, m.Days)
	assert.Equal(t, [][]int{
		{1, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}, m.Cells)
}

func TestFilterByBias(t *testing.T) {
	days := FilterByBias(sampleLedger(t).Days(), model.ImpulseSpending)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 4, days[1].Day)
}

func TestSeries(t *testing.T) {
	l := sampleLedger(t)
	planned, actual := SpendSeries(l)
	assert.Equal(t, []float64{20, 50, 30, 10}, planned)
	assert.Equal(t, []float64{25, 10, 30, 12}, actual)
	assert.Equal(t, []float64{-5, 35, 35, 33}, SavingsSeries(l))
}
