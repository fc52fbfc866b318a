package pipeline

import (
	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
)

// Aggregate computes summary statistics across every day in the ledger.
func Aggregate(l Ledger) model.SummaryStats {
	stats := model.SummaryStats{
		TotalPlanned: decimal.Zero,
		TotalActual:  decimal.Zero,
		TotalGoal:    decimal.Zero,
		NetSavings:   decimal.Zero,
		Overspend:    decimal.Zero,
	}

	impulseSum := 0
	for _, d := range l.days {
		stats.Days++
		stats.TotalPlanned = stats.TotalPlanned.Add(d.PlannedSpend)
		stats.TotalActual = stats.TotalActual.Add(d.ActualSpend)
		stats.TotalGoal = stats.TotalGoal.Add(d.SavingsGoal)
		stats.Overspend = stats.Overspend.Add(d.Overspend())
		impulseSum += d.ImpulseLevel

		if len(d.Biases) > 0 {
			stats.BiasedDays++
		} else {
			stats.CleanDays++
		}
	}

	stats.NetSavings = stats.TotalPlanned.Sub(stats.TotalActual)

	if stats.Days > 0 {
		stats.AvgImpulse = float64(impulseSum) / float64(stats.Days)
		stats.AvgActualSpend = stats.TotalActual.Div(decimal.NewFromInt(int64(stats.Days)))
	} else {
		stats.AvgActualSpend = decimal.Zero
	}

	return stats
}

// AggregateBiases counts the days each bias fired, in canonical bias order.
func AggregateBiases(l Ledger) []model.BiasStats {
	out := make([]model.BiasStats, len(model.AllBiases))
	for i, b := range model.AllBiases {
		out[i].Bias = b
	}

	for _, d := range l.days {
		for i, b := range model.AllBiases {
			if d.Biases.Has(b) {
				out[i].Days++
			}
		}
	}

	if n := len(l.days); n > 0 {
		for i := range out {
			out[i].SharePercent = float64(out[i].Days) / float64(n) * 100
		}
	}
	return out
}

// BiasMatrix builds the label-by-day indicator grid. The last row marks days with no bias.
func BiasMatrix(l Ledger) model.BiasMatrix {
	m := model.BiasMatrix{
		Rows:  make([]string, 0, len(model.AllBiases)+1),
		Days:  make([]int, len(l.days)),
		Cells: make([][]int, len(model.AllBiases)+1),
	}
	for _, b := range model.AllBiases {
		m.Rows = append(m.Rows, b.Label())
	}
	m.Rows = append(m.Rows, model.NoBiasLabel)

	for r := range m.Cells {
		m.Cells[r] = make([]int, len(l.days))
	}

	noneRow := len(model.AllBiases)
	for c, d := range l.days {
		m.Days[c] = d.Day
		if len(d.Biases) == 0 {
			m.Cells[noneRow][c] = 1
			continue
		}
		for r, b := range model.AllBiases {
			if d.Biases.Has(b) {
				m.Cells[r][c] = 1
			}
		}
	}
	return m
}

// FilterByBias returns the days on which bias fired.
func FilterByBias(days []model.DayRecord, bias model.Bias) []model.DayRecord {
	var result []model.DayRecord
	for _, d := range days {
		if d.Biases.Has(bias) {
			result = append(result, d)
		}
	}
	return result
}

// SpendSeries splits the ledger into planned and actual float series for charting.
func SpendSeries(l Ledger) (planned, actual []float64) {
	planned = make([]float64, len(l.days))
	actual = make([]float64, len(l.days))
	for i, d := range l.days {
		planned[i] = d.PlannedSpend.InexactFloat64()
		actual[i] = d.ActualSpend.InexactFloat64()
	}
	return planned, actual
}

// SavingsSeries returns CumulativeSavings as floats for charting.
func SavingsSeries(l Ledger) []float64 {
	cum := CumulativeSavings(l)
	out := make([]float64, len(cum))
	for i, v := range cum {
		out[i] = v.InexactFloat64()
	}
	return out
}
