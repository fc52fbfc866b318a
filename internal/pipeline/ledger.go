package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/theirongolddev/econopsych/internal/model"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned by Append for negative amounts or an out-of-range impulse level.
var ErrInvalidInput = errors.New("invalid input")

// Impulse level bounds, inclusive.
const (
	MinImpulse = 1
	MaxImpulse = 5
)

// Ledger is the append-only, chronologically ordered history of one session.
// The zero value is an empty ledger.
type Ledger struct {
	days []model.DayRecord
}

// NewLedger builds a ledger pre-seeded with raws, in order.
func NewLedger(raws ...model.RawDay) (Ledger, error) {
	var l Ledger
	for i, raw := range raws {
		next, err := l.Append(raw)
		if err != nil {
			return Ledger{}, fmt.Errorf("seeding day %d: %w", i+1, err)
		}
		l = next
	}
	return l, nil
}

// Validate checks the raw fields Append would accept.
func Validate(raw model.RawDay) error {
	if raw.PlannedSpend.IsNegative() {
		return fmt.Errorf("%w: planned spend %s is negative", ErrInvalidInput, raw.PlannedSpend)
	}
	if raw.ActualSpend.IsNegative() {
		return fmt.Errorf("%w: actual spend %s is negative", ErrInvalidInput, raw.ActualSpend)
	}
	if raw.SavingsGoal.IsNegative() {
		return fmt.Errorf("%w: savings goal %s is negative", ErrInvalidInput, raw.SavingsGoal)
	}
	if raw.ImpulseLevel < MinImpulse || raw.ImpulseLevel > MaxImpulse {
		return fmt.Errorf("%w: impulse level %d outside %d-%d",
			ErrInvalidInput, raw.ImpulseLevel, MinImpulse, MaxImpulse)
	}
	return nil
}

// Append classifies raw as the next day and returns the extended ledger.
// On error the returned ledger is the receiver, unchanged.
func (l Ledger) Append(raw model.RawDay) (Ledger, error) {
	if err := Validate(raw); err != nil {
		return l, err
	}

	rec := model.DayRecord{
		Day:          len(l.days) + 1,
		PlannedSpend: raw.PlannedSpend,
		ActualSpend:  raw.ActualSpend,
		SavingsGoal:  raw.SavingsGoal,
		ImpulseLevel: raw.ImpulseLevel,
		Biases:       ClassifyRaw(raw),
	}

	// Clip so ledgers sharing a prefix never write into each other's backing array.
	return Ledger{days: append(slices.Clip(l.days), rec)}, nil
}

// Len returns the number of days.
func (l Ledger) Len() int {
	return len(l.days)
}

// Days returns a copy of the records in day order. Bias sets are copied too,
// so callers cannot relabel a stored day.
func (l Ledger) Days() []model.DayRecord {
	out := slices.Clone(l.days)
	for i := range out {
		out[i].Biases = slices.Clone(out[i].Biases)
	}
	return out
}

// Day returns a copy of the record for a 1-based day number.
func (l Ledger) Day(n int) (model.DayRecord, bool) {
	if n < 1 || n > len(l.days) {
		return model.DayRecord{}, false
	}
	d := l.days[n-1]
	d.Biases = slices.Clone(d.Biases)
	return d, true
}

// Last returns the most recent record.
func (l Ledger) Last() (model.DayRecord, bool) {
	return l.Day(len(l.days))
}

// CumulativeSavings returns, for each prefix of the ledger, total planned minus total actual.
func CumulativeSavings(l Ledger) []decimal.Decimal {
	out := make([]decimal.Decimal, len(l.days))
	running := decimal.Zero
	for i, d := range l.days {
		running = running.Add(d.Net())
		out[i] = running
	}
	return out
}
