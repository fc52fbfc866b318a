package model

import "github.com/shopspring/decimal"

// SummaryStats holds the top-level aggregate across a ledger.
type SummaryStats struct {
	Days       int
	BiasedDays int
	CleanDays  int

	TotalPlanned decimal.Decimal
	TotalActual  decimal.Decimal
	TotalGoal    decimal.Decimal
	NetSavings   decimal.Decimal
	Overspend    decimal.Decimal

	AvgImpulse     float64
	AvgActualSpend decimal.Decimal
}

// BiasStats holds how often one bias fired across a ledger.
type BiasStats struct {
	Bias         Bias
	Days         int
	SharePercent float64
}

// BiasMatrix is a label-by-day indicator grid (the heatmap source).
// Rows holds one label per row; Cells[row][col] is 1 when the label applies to Days[col].
type BiasMatrix struct {
	Rows  []string
	Days  []int
	Cells [][]int
}
