package cmd

import (
	"errors"
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawDay(t *testing.T) {
	raw, err := parseRawDay("30", "42.50", "20", 4)
	require.NoError(t, err)
	assert.True(t, raw.PlannedSpend.Equal(decimal.NewFromInt(30)))
	assert.True(t, raw.ActualSpend.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, 4, raw.ImpulseLevel)

	_, err = parseRawDay("thirty", "1", "1", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--planned")
}

func TestParseRawDayLeavesRangeChecksToLedger(t *testing.T) {
	raw, err := parseRawDay("-5", "1", "1", 9)
	require.NoError(t, err)

	_, err = pipeline.Ledger{}.Append(raw)
	assert.True(t, errors.Is(err, pipeline.ErrInvalidInput))
}

func TestParseBias(t *testing.T) {
	for _, in := range []string{"PresentBias", "Present Bias"} {
		b, err := parseBias(in)
		require.NoError(t, err, in)
		assert.Equal(t, model.PresentBias, b)
	}

	_, err := parseBias("Anchoring")
	assert.Error(t, err)
}

func TestRenderDayTableShowsCumulative(t *testing.T) {
	l, err := pipeline.NewLedger(
		model.RawDay{PlannedSpend: decimal.NewFromInt(20), ActualSpend: decimal.NewFromInt(30), SavingsGoal: decimal.NewFromInt(5), ImpulseLevel: 2},
		model.RawDay{PlannedSpend: decimal.NewFromInt(40), ActualSpend: decimal.NewFromInt(10), SavingsGoal: decimal.NewFromInt(5), ImpulseLevel: 1},
	)
	require.NoError(t, err)

	last, _ := l.Last()
	out := renderDayTable([]model.DayRecord{last}, pipeline.CumulativeSavings(l), "$")
	assert.Contains(t, out, "+$20")
	assert.Contains(t, out, "Loss Aversion")
}
