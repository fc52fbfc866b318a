// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatMoney formats an amount with the currency symbol, thousands separators,
// and cents only when the amount is fractional.
// e.g., ("$", 1234) -> "$1,234", ("$", -5.5) -> "-$5.50"
func FormatMoney(symbol string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	if d.Equal(d.Truncate(0)) {
		return sign + symbol + humanize.Comma(d.IntPart())
	}
	r := d.Round(2)
	whole := r.Truncate(0)
	cents := r.Sub(whole).StringFixed(2) // "0.xx"
	return sign + symbol + humanize.Comma(whole.IntPart()) + cents[1:]
}

// FormatSignedMoney is FormatMoney with an explicit "+" for positive amounts.
func FormatSignedMoney(symbol string, d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + FormatMoney(symbol, d)
	}
	return FormatMoney(symbol, d)
}

// FormatPercent formats a 0-100 share as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatImpulse renders an impulse level as filled and empty pips, e.g. "●●●○○".
func FormatImpulse(level int) string {
	const pips = 5
	if level < 0 {
		level = 0
	}
	if level > pips {
		level = pips
	}
	out := make([]rune, 0, pips)
	for i := 0; i < pips; i++ {
		if i < level {
			out = append(out, '●')
		} else {
			out = append(out, '○')
		}
	}
	return string(out)
}
