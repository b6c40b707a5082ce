package history

import (
	"time"

	"FinDash/internal/domain/models"
	domsvc "FinDash/internal/domain/service"
	"FinDash/internal/mockdata"
	"FinDash/internal/services/randsrc"
	"FinDash/pkg/util"
)

const (
	DefaultDays = 90

	// maxDailyMove bounds the uniform daily return to [-1%, +1%].
	maxDailyMove = 0.01
	minVolume    = 500_000
	volumeRange  = 1_000_000
)

// Generator builds weekday-only multiplicative random walks.
type Generator struct {
	rnd   domsvc.RandomSource
	now   domsvc.Clock
	bases map[string]float64
}

type Option func(*Generator)

// WithRandom injects the random source.
func WithRandom(src domsvc.RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.rnd = src
		}
	}
}

// WithClock injects "now".
func WithClock(c domsvc.Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.now = c
		}
	}
}

// WithBasePrices replaces the starting-price table.
func WithBasePrices(m map[string]float64) Option {
	return func(g *Generator) {
		g.bases = make(map[string]float64, len(m))
		for k, v := range m {
			g.bases[util.NormalizeSymbol(k)] = v
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rnd:   randsrc.Global{},
		now:   time.Now,
		bases: mockdata.BasePrices(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BasePrice returns the walk's starting price for symbol.
func (g *Generator) BasePrice(symbol string) float64 {
	if p, ok := g.bases[util.NormalizeSymbol(symbol)]; ok {
		return p
	}
	return mockdata.DefaultBasePrice
}

// Generate walks the last `days` calendar days ending today, skipping
// weekends. Each retained day compounds a uniform return in [-1%, +1%]
// onto the running price. days <= 0 yields an empty series.
func (g *Generator) Generate(symbol string, days int) []models.PricePoint {
	if days <= 0 {
		return []models.PricePoint{}
	}
	today := util.StartOfDay(g.now())
	price := g.BasePrice(symbol)
	out := make([]models.PricePoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if util.IsWeekend(day) {
			continue
		}
		r := (g.rnd.Float64()*2 - 1) * maxDailyMove
		price = util.Round2(price * (1 + r))
		vol := int64(minVolume + g.rnd.Float64()*volumeRange)
		out = append(out, models.PricePoint{
			Date:   util.FormatDate(day),
			Price:  price,
			Volume: vol,
		})
	}
	return out
}

var _ domsvc.HistoryGenerator = (*Generator)(nil)
