// Package model defines domain types for econopsych ledgers and bias metrics.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Bias is a behavioral-economics pattern detected in one day's spending.
type Bias string

// Bias labels, declared in canonical display order.
const (
	ImpulseSpending Bias = "ImpulseSpending"
	PresentBias     Bias = "PresentBias"
	LossAversion    Bias = "LossAversion"
)

// NoBiasLabel is shown for a day where no rule fired.
const NoBiasLabel = "No Bias Detected"

// AllBiases lists every bias in canonical order.
var AllBiases = []Bias{ImpulseSpending, PresentBias, LossAversion}

// Label returns the human-readable form, e.g. "Impulse Spending".
func (b Bias) Label() string {
	switch b {
	case ImpulseSpending:
		return "Impulse Spending"
	case PresentBias:
		return "Present Bias"
	case LossAversion:
		return "Loss Aversion"
	default:
		return string(b)
	}
}

// Biases is an ordered set of bias labels.
type Biases []Bias

// Has reports whether b is in the set.
func (bs Biases) Has(b Bias) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

// String joins labels with ", ", or returns NoBiasLabel for an empty set.
func (bs Biases) String() string {
	if len(bs) == 0 {
		return NoBiasLabel
	}
	labels := make([]string, len(bs))
	for i, b := range bs {
		labels[i] = b.Label()
	}
	return strings.Join(labels, ", ")
}

// RawDay holds the user-supplied fields of one day, before classification.
type RawDay struct {
	PlannedSpend decimal.Decimal `json:"planned_spend"`
	ActualSpend  decimal.Decimal `json:"actual_spend"`
	SavingsGoal  decimal.Decimal `json:"savings_goal"`
	ImpulseLevel int             `json:"impulse_level"`
}

// DayRecord is one classified day in a ledger.
type DayRecord struct {
	Day          int             `json:"day"`
	PlannedSpend decimal.Decimal `json:"planned_spend"`
	ActualSpend  decimal.Decimal `json:"actual_spend"`
	SavingsGoal  decimal.Decimal `json:"savings_goal"`
	ImpulseLevel int             `json:"impulse_level"`
	Biases       Biases          `json:"biases"`
}

// Net returns planned minus actual spend for the day.
func (d DayRecord) Net() decimal.Decimal {
	return d.PlannedSpend.Sub(d.ActualSpend)
}

// Overspend returns how far actual spend exceeded the plan, or zero.
func (d DayRecord) Overspend() decimal.Decimal {
	if d.ActualSpend.GreaterThan(d.PlannedSpend) {
		return d.ActualSpend.Sub(d.PlannedSpend)
	}
	return decimal.Zero
}
