package seasonal

import (
	"fmt"
	"strings"
	"time"

	"FinDash/internal/domain/models"
	domsvc "FinDash/internal/domain/service"
	"FinDash/internal/services/randsrc"
	"FinDash/pkg/util"
)

// DefaultFavorableProbability is the chance an instrument without a month
// table is reported as seasonally favorable. Placeholder, not a statistic.
const DefaultFavorableProbability = 0.6

const (
	PhaseBullish = "Seasonally Bullish"
	PhaseNeutral = "Seasonally Neutral"
)

var (
	equityIndexRoots = []string{"ES", "NQ", "YM", "RTY"}

	equityMonths = monthSet(time.April, time.May, time.June, time.July, time.November, time.December)
	crudeMonths  = monthSet(time.January, time.February, time.July, time.August)
	goldMonths   = monthSet(time.January, time.August, time.September, time.December)
)

func monthSet(ms ...time.Month) map[time.Month]struct{} {
	m := make(map[time.Month]struct{}, len(ms))
	for _, v := range ms {
		m[v] = struct{}{}
	}
	return m
}

// Heuristic classifies seasonality from fixed month tables. Only the
// calendar month of the date is consulted.
type Heuristic struct {
	rnd         domsvc.RandomSource
	probability float64
}

type Option func(*Heuristic)

func WithRandom(src domsvc.RandomSource) Option {
	return func(h *Heuristic) {
		if src != nil {
			h.rnd = src
		}
	}
}

// WithProbability overrides DefaultFavorableProbability.
func WithProbability(p float64) Option {
	return func(h *Heuristic) { h.probability = p }
}

func New(opts ...Option) *Heuristic {
	h := &Heuristic{rnd: randsrc.Global{}, probability: DefaultFavorableProbability}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// months returns the month table for symbol, or nil when none applies.
// Equity index roots match by substring so contract codes like ESZ6 qualify.
func months(symbol string) map[time.Month]struct{} {
	for _, root := range equityIndexRoots {
		if strings.Contains(symbol, root) {
			return equityMonths
		}
	}
	switch symbol {
	case "CL":
		return crudeMonths
	case "GC":
		return goldMonths
	}
	return nil
}

func (h *Heuristic) IsFavorableSeason(date time.Time, symbol string) bool {
	table := months(util.NormalizeSymbol(symbol))
	if table == nil {
		return h.rnd.Float64() < h.probability
	}
	_, ok := table[date.Month()]
	return ok
}

// Patterns renders the seasonal block for a synthesized snapshot. The
// consistency and average return figures are illustrative.
func (h *Heuristic) Patterns(date time.Time, symbol string) models.SeasonalPatterns {
	if h.IsFavorableSeason(date, symbol) {
		return models.SeasonalPatterns{
			CurrentPhase:  PhaseBullish,
			Consistency:   fmt.Sprintf("%.0f%%", 60+h.rnd.Float64()*25),
			AverageReturn: fmt.Sprintf("%+.1f%%", 0.5+h.rnd.Float64()*2.5),
		}
	}
	return models.SeasonalPatterns{
		CurrentPhase:  PhaseNeutral,
		Consistency:   fmt.Sprintf("%.0f%%", 45+h.rnd.Float64()*15),
		AverageReturn: fmt.Sprintf("%+.1f%%", (h.rnd.Float64()-0.5)*1.5),
	}
}

var _ domsvc.SeasonalClassifier = (*Heuristic)(nil)
