// Package nudge turns detected biases into short behavioral suggestions.
package nudge

import (
	"fmt"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/model"
	"github.com/theirongolddev/econopsych/internal/pipeline"
)

// Nudge is one suggestion for one day.
type Nudge struct {
	Day     int        `json:"day"`
	Bias    model.Bias `json:"bias"`
	Message string     `json:"message"`
}

// String renders the nudge as "Day N: message".
func (n Nudge) String() string {
	return fmt.Sprintf("Day %d: %s", n.Day, n.Message)
}

// ForDay returns one nudge per bias on d, in the record's bias order.
// currency prefixes amounts, e.g. "$".
func ForDay(d model.DayRecord, currency string) []Nudge {
	out := make([]Nudge, 0, len(d.Biases))
	for _, b := range d.Biases {
		out = append(out, Nudge{Day: d.Day, Bias: b, Message: message(d, b, currency)})
	}
	return out
}

// ForLedger returns every day's nudges in day order.
func ForLedger(l pipeline.Ledger, currency string) []Nudge {
	var out []Nudge
	for _, d := range l.Days() {
		out = append(out, ForDay(d, currency)...)
	}
	return out
}

func message(d model.DayRecord, b model.Bias, currency string) string {
	switch b {
	case model.ImpulseSpending:
		return fmt.Sprintf("Try automating %s into savings to prevent overspending.",
			cli.FormatMoney(currency, d.Overspend()))
	case model.PresentBias:
		return "Consider small investments to grow savings over time."
	case model.LossAversion:
		return "You may be avoiding necessary spending; try allocating funds strategically."
	default:
		return b.Label()
	}
}
