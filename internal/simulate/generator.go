// Package simulate generates synthetic spending days for a fresh session.
package simulate

import (
	"math/rand/v2"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultSeed and DefaultDays match the dashboard's initial sample.
const (
	DefaultSeed = 42
	DefaultDays = 7
)

// Source produces raw days to pre-seed a ledger.
type Source interface {
	Generate(n int) []model.RawDay
}

// Seeded draws days from a deterministic PCG stream.
type Seeded struct {
	seed uint64
}

// NewSeeded returns a Source that yields the same days for the same seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{seed: seed}
}

// Seed returns the generator's seed.
func (s *Seeded) Seed() uint64 {
	return s.seed
}

// Generate returns n days, drawing one column at a time:
//
//	planned in [10, 50), actual = planned + [-5, 10), savings in [10, 50), impulse in [1, 5]
func (s *Seeded) Generate(n int) []model.RawDay {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15)) //nolint:gosec // synthetic data

	planned := make([]int64, n)
	for i := range planned {
		planned[i] = 10 + r.Int64N(40)
	}
	actual := make([]int64, n)
	for i := range actual {
		actual[i] = planned[i] - 5 + r.Int64N(15)
	}
	savings := make([]int64, n)
	for i := range savings {
		savings[i] = 10 + r.Int64N(40)
	}
	impulse := make([]int, n)
	for i := range impulse {
		impulse[i] = 1 + r.IntN(5)
	}

	days := make([]model.RawDay, n)
	for i := range days {
		days[i] = model.RawDay{
			PlannedSpend: decimal.NewFromInt(planned[i]),
			ActualSpend:  decimal.NewFromInt(actual[i]),
			SavingsGoal:  decimal.NewFromInt(savings[i]),
			ImpulseLevel: impulse[i],
		}
	}
	return days
}

// Empty is a Source that yields no days.
type Empty struct{}

// Generate always returns nil.
func (Empty) Generate(int) []model.RawDay { return nil }
