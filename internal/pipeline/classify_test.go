package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name                     string
		planned, actual, savings string
		want                     model.Biases
	}{
		{"overspend only", "20", "25", "15", model.Biases{model.ImpulseSpending}},
		{"underspend below half", "50", "10", "5", model.Biases{model.LossAversion}},
		{"goal above spend", "30", "28", "40", model.Biases{model.PresentBias}},
		{"impulse and present", "10", "12", "20", model.Biases{model.ImpulseSpending, model.PresentBias}},
		{"present and loss", "40", "10", "15", model.Biases{model.PresentBias, model.LossAversion}},
		{"on plan", "20", "20", "20", model.Biases{}},
		{"exactly half is not loss", "20", "10", "0", model.Biases{}},
		{"zero plan makes loss vacuous", "0", "0", "0", model.Biases{}},
		{"fractional amounts", "10.50", "10.51", "0", model.Biases{model.ImpulseSpending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(
				decimal.RequireFromString(tt.planned),
				decimal.RequireFromString(tt.actual),
				decimal.RequireFromString(tt.savings),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_CleanDayEncodesEmptyArray(t *testing.T) {
	got := Classify(decimal.NewFromInt(20), decimal.NewFromInt(20), decimal.NewFromInt(5))
	require.NotNil(t, got)

	data, err := json.Marshal(model.DayRecord{Day: 1, Biases: got})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"biases":[]`)
}

func TestClassify_RuleProperties(t *testing.T) {
	for planned := int64(0); planned <= 60; planned += 3 {
		for actual := int64(0); actual <= 60; actual += 2 {
			for savings := int64(0); savings <= 60; savings += 7 {
				p, a, s := decimal.NewFromInt(planned), decimal.NewFromInt(actual), decimal.NewFromInt(savings)
				got := Classify(p, a, s)

				assert.Equal(t, actual > planned, got.Has(model.ImpulseSpending))
				assert.Equal(t, savings > actual, got.Has(model.PresentBias))
				assert.Equal(t, 2*actual < planned, got.Has(model.LossAversion))
				assert.False(t, got.Has(model.ImpulseSpending) && got.Has(model.LossAversion),
					"planned=%d actual=%d fired both impulse and loss aversion", planned, actual)

				assertCanonicalOrder(t, got)
			}
		}
	}
}

func assertCanonicalOrder(t *testing.T, got model.Biases) {
	t.Helper()
	idx := -1
	for _, b := range got {
		pos := -1
		for i, c := range model.AllBiases {
			if c == b {
				pos = i
			}
		}
		assert.Greater(t, pos, idx, "biases out of order: %v", got)
		idx = pos
	}
}

func TestBiasesString(t *testing.T) {
	assert.Equal(t, "No Bias Detected", model.Biases(nil).String())
	assert.Equal(t, "Impulse Spending, Present Bias",
		model.Biases{model.ImpulseSpending, model.PresentBias}.String())
}
