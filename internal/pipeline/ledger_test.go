package pipeline

import (
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func raw(planned, actual, savings int64, impulse int) model.RawDay {
	return model.RawDay{
		PlannedSpend: dec(planned),
		ActualSpend:  dec(actual),
		SavingsGoal:  dec(savings),
		ImpulseLevel: impulse,
	}
}

func assertDecimals(t *testing.T, want []int64, got []decimal.Decimal) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, got[i].Equal(dec(want[i])), "entry %d = %s, want %d", i, got[i], want[i])
	}
}

func TestLedger_AppendScenario(t *testing.T) {
	l, err := NewLedger(raw(20, 25, 15, 3))
	require.NoError(t, err)

	first, ok := l.Day(1)
	require.True(t, ok)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, model.Biases{model.ImpulseSpending}, first.Biases)
	assertDecimals(t, []int64{-5}, CumulativeSavings(l))

	l, err = l.Append(raw(50, 10, 5, 1))
	require.NoError(t, err)

	second, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, 2, second.Day)
	assert.Equal(t, model.Biases{model.LossAversion}, second.Biases)
	assertDecimals(t, []int64{-5, 35}, CumulativeSavings(l))
}

func TestLedger_AppendRejectsInvalidInput(t *testing.T) {
	base, err := NewLedger(raw(20, 25, 15, 3))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  model.RawDay
	}{
		{"negative actual", raw(20, -1, 15, 3)},
		{"negative planned", raw(-3, 10, 15, 3)},
		{"negative savings", raw(20, 10, -15, 3)},
		{"impulse too low", raw(20, 10, 15, 0)},
		{"impulse too high", raw(20, 10, 15, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Append(tt.raw)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 1, got.Len())
			assert.Equal(t, base.Days(), got.Days())
		})
	}
}

func TestLedger_AppendBoundaryImpulse(t *testing.T) {
	l, err := NewLedger(raw(0, 0, 0, MinImpulse), raw(0, 0, 0, MaxImpulse))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
}

func TestLedger_DaysStrictlyIncreasing(t *testing.T) {
	var l Ledger
	for i := 0; i < 30; i++ {
		var err error
		l, err = l.Append(raw(int64(10+i), int64(12+i), 5, 1+i%5))
		require.NoError(t, err)
	}
	for i, d := range l.Days() {
		assert.Equal(t, i+1, d.Day)
	}
}

func TestLedger_BranchesDoNotShareStorage(t *testing.T) {
	base, err := NewLedger(raw(10, 10, 10, 1), raw(10, 10, 10, 1))
	require.NoError(t, err)

	a, err := base.Append(raw(40, 5, 0, 2))
	require.NoError(t, err)
	b, err := base.Append(raw(5, 40, 0, 4))
	require.NoError(t, err)

	lastA, _ := a.Last()
	lastB, _ := b.Last()
	assert.Equal(t, model.Biases{model.LossAversion}, lastA.Biases)
	assert.Equal(t, model.Biases{model.ImpulseSpending}, lastB.Biases)
	assert.Equal(t, 2, base.Len())
}

func TestLedger_DaysReturnsCopy(t *testing.T) {
	l, err := NewLedger(raw(20, 25, 15, 3))
	require.NoError(t, err)

	days := l.Days()
	days[0].ActualSpend = dec(0)
	days[0].Biases = nil

	stored, _ := l.Day(1)
	assert.True(t, stored.ActualSpend.Equal(dec(25)))
	assert.Equal(t, model.Biases{model.ImpulseSpending}, stored.Biases)
}

func TestLedger_BiasesCannotBeRelabeled(t *testing.T) {
	l, err := NewLedger(raw(20, 25, 15, 3))
	require.NoError(t, err)

	days := l.Days()
	days[0].Biases[0] = model.LossAversion
	stored, _ := l.Day(1)
	assert.Equal(t, model.Biases{model.ImpulseSpending}, stored.Biases)

	day, _ := l.Day(1)
	day.Biases[0] = model.PresentBias
	again, _ := l.Day(1)
	assert.Equal(t, model.Biases{model.ImpulseSpending}, again.Biases)

	last, _ := l.Last()
	last.Biases[0] = model.PresentBias
	again, _ = l.Last()
	assert.Equal(t, model.Biases{model.ImpulseSpending}, again.Biases)
}

func TestNewLedger_WrapsSeedError(t *testing.T) {
	_, err := NewLedger(raw(1, 1, 1, 1), raw(1, 1, 1, 9))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "seeding day 2")
}

func TestCumulativeSavings_Empty(t *testing.T) {
	assert.Empty(t, CumulativeSavings(Ledger{}))
}

func TestCumulativeSavings_StepEqualsDailyNet(t *testing.T) {
	l, err := NewLedger(
		raw(20, 25, 15, 3),
		raw(50, 10, 5, 1),
		raw(33, 33, 40, 2),
		raw(12, 30, 0, 5),
	)
	require.NoError(t, err)

	cum := CumulativeSavings(l)
	days := l.Days()
	prev := decimal.Zero
	for i, d := range days {
		assert.Truef(t, cum[i].Sub(prev).Equal(d.PlannedSpend.Sub(d.ActualSpend)),
			"step %d = %s, want %s", i, cum[i].Sub(prev), d.Net())
		prev = cum[i]
	}
}
