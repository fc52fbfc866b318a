package simulate

import "github.com/theirongolddev/econopsych/internal/pipeline"

// NewLedger pre-seeds a fresh session ledger with n days drawn from src.
func NewLedger(src Source, n int) (pipeline.Ledger, error) {
	return pipeline.NewLedger(src.Generate(n)...)
}

// SourceFor returns the seeded generator, or Empty when empty is set.
func SourceFor(seed uint64, empty bool) Source {
	if empty {
		return Empty{}
	}
	return NewSeeded(seed)
}
