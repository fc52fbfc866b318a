package nudge

import (
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawDay(planned, actual, savings int64) model.RawDay {
	return model.RawDay{
		PlannedSpend: decimal.NewFromInt(planned),
		ActualSpend:  decimal.NewFromInt(actual),
		SavingsGoal:  decimal.NewFromInt(savings),
		ImpulseLevel: 3,
	}
}

func TestForDay_Impulse(t *testing.T) {
	l, err := pipeline.NewLedger(rawDay(20, 25, 15))
	require.NoError(t, err)
	d, _ := l.Last()

	got := ForDay(d, "$")
	require.Len(t, got, 1)
	assert.Equal(t, model.ImpulseSpending, got[0].Bias)
	assert.Equal(t, "Day 1: Try automating $5 into savings to prevent overspending.", got[0].String())
}

func TestForDay_ImpulseFractionalAmount(t *testing.T) {
	l, err := pipeline.NewLedger(model.RawDay{
		PlannedSpend: decimal.NewFromInt(20),
		ActualSpend:  decimal.RequireFromString("32.5"),
		SavingsGoal:  decimal.NewFromInt(0),
		ImpulseLevel: 2,
	})
	require.NoError(t, err)
	d, _ := l.Last()

	got := ForDay(d, "$")
	require.Len(t, got, 1)
	assert.Equal(t, "Try automating $12.50 into savings to prevent overspending.", got[0].Message)
}

func TestForDay_NoBias(t *testing.T) {
	l, err := pipeline.NewLedger(rawDay(20, 20, 0))
	require.NoError(t, err)
	d, _ := l.Last()
	assert.Empty(t, ForDay(d, "$"))
}

func TestForLedger_Order(t *testing.T) {
	l, err := pipeline.NewLedger(
		rawDay(10, 12, 20), // impulse + present
		rawDay(50, 10, 5),  // loss
	)
	require.NoError(t, err)

	got := ForLedger(l, "€")
	require.Len(t, got, 3)

	assert.Equal(t, 1, got[0].Day)
	assert.Equal(t, "Try automating €2 into savings to prevent overspending.", got[0].Message)
	assert.Equal(t, 1, got[1].Day)
	assert.Equal(t, "Consider small investments to grow savings over time.", got[1].Message)
	assert.Equal(t, 2, got[2].Day)
	assert.Equal(t, model.LossAversion, got[2].Bias)
	assert.Equal(t, "You may be avoiding necessary spending; try allocating funds strategically.", got[2].Message)
}
