// Package pipeline classifies daily spending and aggregates ledger metrics.
package pipeline

import (
	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Classify returns the biases triggered by one day's amounts, in canonical order.
// Inputs are taken as-is; validation belongs to Append. The result is never
// nil, so a clean day encodes as an empty JSON array.
func Classify(planned, actual, savings decimal.Decimal) model.Biases {
	biases := model.Biases{}
	if actual.GreaterThan(planned) {
		biases = append(biases, model.ImpulseSpending)
	}
	if savings.GreaterThan(actual) {
		biases = append(biases, model.PresentBias)
	}
	if actual.LessThan(planned.Mul(half)) {
		biases = append(biases, model.LossAversion)
	}
	return biases
}

// ClassifyRaw classifies a raw day.
func ClassifyRaw(raw model.RawDay) model.Biases {
	return Classify(raw.PlannedSpend, raw.ActualSpend, raw.SavingsGoal)
}
