package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedger_Seeded(t *testing.T) {
	l, err := NewLedger(NewSeeded(DefaultSeed), DefaultDays)
	require.NoError(t, err)
	require.Equal(t, DefaultDays, l.Len())

	for i, d := range l.Days() {
		assert.Equal(t, i+1, d.Day)
	}
}

func TestNewLedger_Empty(t *testing.T) {
	l, err := NewLedger(SourceFor(DefaultSeed, true), DefaultDays)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestSourceFor(t *testing.T) {
	s, ok := SourceFor(9, false).(*Seeded)
	require.True(t, ok)
	assert.Equal(t, uint64(9), s.Seed())

	_, ok = SourceFor(9, true).(Empty)
	assert.True(t, ok)
}
