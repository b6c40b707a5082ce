package synth

import (
	"testing"
	"time"

	"FinDash/internal/domain/models"
	"FinDash/internal/services/history"
	"FinDash/internal/services/randsrc"
	"FinDash/internal/services/seasonal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() time.Time { return time.Date(2026, 10, 16, 16, 0, 0, 0, time.UTC) }

// fixedHistory returns canned points.
type fixedHistory struct {
	points []models.PricePoint
	base   float64
}

func (f fixedHistory) Generate(string, int) []models.PricePoint { return f.points }
func (f fixedHistory) BasePrice(string) float64                  { return f.base }

func newSynth(h fixedHistory) *Synthesizer {
	src := randsrc.NewSequence(0.5)
	return New(h, seasonal.New(seasonal.WithRandom(src)), WithRandom(src), WithClock(clock))
}

func TestBands(t *testing.T) {
	sup, res := Bands(200)
	assert.Equal(t, []float64{198, 194, 190}, sup)
	assert.Equal(t, []float64{202, 206, 210}, res)
}

func TestSnapshotFromHistory(t *testing.T) {
	s := newSynth(fixedHistory{points: []models.PricePoint{
		{Date: "2026-10-15", Price: 100, Volume: 700_000},
		{Date: "2026-10-16", Price: 102, Volume: 800_000},
	}, base: 99})

	snap := s.Snapshot("zzz")
	assert.Equal(t, "ZZZ", snap.Symbol)
	assert.Equal(t, 102.0, snap.CurrentPrice)
	assert.Equal(t, 2.0, snap.DailyChange)
	assert.Equal(t, 2.0, snap.DailyChangePercent)
	assert.Equal(t, int64(800_000), snap.Volume)
	assert.Equal(t, PlaceholderVolatility, snap.Volatility)
	assert.Equal(t, PlaceholderSentiment, snap.Sentiment)
	assert.Equal(t, []float64{100.98, 98.94, 96.9}, snap.Support)
	assert.Equal(t, []float64{103.02, 105.06, 107.1}, snap.Resistance)
	require.NotNil(t, snap.AIAnalysis)
	assert.Contains(t, snap.AIAnalysis.Summary, "ZZZ")
	assert.Contains(t, snap.AIAnalysis.Summary, "100.98")
	assert.Len(t, snap.RecentActivity, 4)
	assert.Len(t, snap.CalendarSpreads, 2)
	require.NotNil(t, snap.SeasonalPatterns)
	assert.True(t, Finite(snap))
}

func TestSnapshotDegenerateHistory(t *testing.T) {
	s := newSynth(fixedHistory{base: 50})
	snap := s.Snapshot("ZZZ")
	assert.Equal(t, 50.0, snap.CurrentPrice)
	assert.Equal(t, 0.0, snap.DailyChange)
	assert.True(t, Finite(snap))

	s = newSynth(fixedHistory{base: 50, points: []models.PricePoint{{Date: "2026-10-16", Price: 51}}})
	snap = s.Snapshot("ZZZ")
	assert.Equal(t, 51.0, snap.CurrentPrice)
	assert.Equal(t, 0.0, snap.DailyChangePercent)
}

func TestRecentActivityNewestFirst(t *testing.T) {
	s := newSynth(fixedHistory{})
	ticks := s.RecentActivity(100)
	require.Len(t, ticks, 4)
	assert.Equal(t, []string{"15:45", "15:30", "15:15", "15:00"},
		[]string{ticks[0].Time, ticks[1].Time, ticks[2].Time, ticks[3].Time})
	for _, tk := range ticks {
		assert.InDelta(t, 100, tk.Price, 0.1)
	}
}

func TestCalendarSpreads(t *testing.T) {
	s := newSynth(fixedHistory{})
	rows := s.CalendarSpreads(1000)
	require.Len(t, rows, 2)
	assert.Equal(t, 1.5, rows[0].Spread)
	assert.Equal(t, 3.2, rows[1].Spread)
	assert.Equal(t, "Nov", rows[0].FrontMonth)
	assert.Equal(t, "Feb", rows[0].BackMonth)
	assert.Equal(t, "Feb", rows[1].FrontMonth)
	assert.Equal(t, "May", rows[1].BackMonth)
}

func TestFillKeepsPresentFields(t *testing.T) {
	s := newSynth(fixedHistory{})
	own := &models.SeasonalPatterns{CurrentPhase: "custom"}
	snap := models.Snapshot{Symbol: "ZZZ", CurrentPrice: 10, SeasonalPatterns: own}
	s.Fill(&snap)
	assert.Same(t, own, snap.SeasonalPatterns)
	assert.NotNil(t, snap.AIAnalysis)
	assert.Len(t, snap.RecentActivity, 4)
	assert.Len(t, snap.CalendarSpreads, 2)
}

func TestWithRealGenerator(t *testing.T) {
	src := randsrc.Seeded(1)
	gen := history.New(history.WithRandom(src), history.WithClock(clock))
	s := New(gen, seasonal.New(seasonal.WithRandom(src)), WithRandom(src), WithClock(clock), WithHistoryDays(10))
	snap := s.Snapshot("ZZZ")
	assert.Equal(t, 10, s.HistoryDays())
	assert.Len(t, snap.RecentActivity, 4)
	assert.Len(t, snap.CalendarSpreads, 2)
	assert.True(t, Finite(snap))
}
