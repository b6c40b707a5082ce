package seasonal

import (
	"testing"
	"time"

	"FinDash/internal/services/randsrc"

	"github.com/stretchr/testify/assert"
)

func day(m time.Month, d int) time.Time { return time.Date(2026, m, d, 12, 0, 0, 0, time.UTC) }

func TestEquityIndexMonths(t *testing.T) {
	h := New(WithRandom(randsrc.NewSequence(0.99)))
	for _, sym := range []string{"ES", "NQ", "YM", "RTY", "ESZ6", "mnq"} {
		assert.True(t, h.IsFavorableSeason(day(time.November, 3), sym), sym)
		assert.True(t, h.IsFavorableSeason(day(time.April, 30), sym), sym)
		assert.False(t, h.IsFavorableSeason(day(time.September, 15), sym), sym)
		assert.False(t, h.IsFavorableSeason(day(time.January, 2), sym), sym)
	}
}

func TestCrudeAndGoldMonths(t *testing.T) {
	h := New(WithRandom(randsrc.NewSequence(0.0)))
	assert.True(t, h.IsFavorableSeason(day(time.February, 1), "CL"))
	assert.False(t, h.IsFavorableSeason(day(time.March, 1), "CL"))
	assert.True(t, h.IsFavorableSeason(day(time.September, 1), "GC"))
	assert.False(t, h.IsFavorableSeason(day(time.June, 1), "GC"))
}

func TestDayWithinMonthIgnored(t *testing.T) {
	h := New()
	for d := 1; d <= 31; d++ {
		assert.True(t, h.IsFavorableSeason(day(time.December, d), "ES"))
	}
}

func TestOtherSymbolsUseProbability(t *testing.T) {
	h := New(WithRandom(randsrc.NewSequence(0.59, 0.6, 0.2, 0.95)))
	assert.True(t, h.IsFavorableSeason(day(time.March, 1), "ZN"))
	assert.False(t, h.IsFavorableSeason(day(time.March, 1), "ZN"))
	assert.True(t, h.IsFavorableSeason(day(time.March, 1), "6E"))
	assert.False(t, h.IsFavorableSeason(day(time.March, 1), "NG"))
}

func TestProbabilityOverride(t *testing.T) {
	h := New(WithRandom(randsrc.NewSequence(0.3)), WithProbability(0.25))
	assert.False(t, h.IsFavorableSeason(day(time.March, 1), "ZN"))
}

func TestPatterns(t *testing.T) {
	h := New(WithRandom(randsrc.NewSequence(0.0)))
	p := h.Patterns(day(time.November, 3), "ES")
	assert.Equal(t, PhaseBullish, p.CurrentPhase)
	assert.Equal(t, "60%", p.Consistency)
	assert.Equal(t, "+0.5%", p.AverageReturn)

	p = h.Patterns(day(time.September, 3), "ES")
	assert.Equal(t, PhaseNeutral, p.CurrentPhase)
	assert.Equal(t, "45%", p.Consistency)
	assert.Equal(t, "-0.8%", p.AverageReturn)
}
