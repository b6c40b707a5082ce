// Package synth fabricates plausible snapshot data for instruments the
// catalog does not know, or for fields the upstream response left out.
package synth

import (
	"fmt"
	"math"
	"time"

	"FinDash/internal/domain/models"
	domsvc "FinDash/internal/domain/service"
	"FinDash/internal/services/randsrc"
	"FinDash/pkg/util"
)

const (
	PlaceholderVolatility   = 18.5
	PlaceholderSentiment    = 0.0
	PlaceholderOpenInterest = 250_000

	activityTicks    = 4
	activityStep     = 15 * time.Minute
	activityMaxShift = 0.002
	activityTimeFmt  = "15:04"
)

var (
	supportFactors    = []float64{0.99, 0.97, 0.95}
	resistanceFactors = []float64{1.01, 1.03, 1.05}
	spreadFactors     = []float64{0.0015, 0.0032}
)

// Synthesizer builds full snapshots and per-field defaults.
type Synthesizer struct {
	history  domsvc.HistoryGenerator
	seasonal domsvc.SeasonalClassifier
	rnd      domsvc.RandomSource
	now      domsvc.Clock
	days     int
}

type Option func(*Synthesizer)

func WithRandom(src domsvc.RandomSource) Option {
	return func(s *Synthesizer) {
		if src != nil {
			s.rnd = src
		}
	}
}

func WithClock(c domsvc.Clock) Option {
	return func(s *Synthesizer) {
		if c != nil {
			s.now = c
		}
	}
}

// WithHistoryDays sets the window used when synthesizing a full record.
func WithHistoryDays(days int) Option {
	return func(s *Synthesizer) { s.days = days }
}

func New(history domsvc.HistoryGenerator, seasonal domsvc.SeasonalClassifier, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		history:  history,
		seasonal: seasonal,
		rnd:      randsrc.Global{},
		now:      time.Now,
		days:     90,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HistoryDays reports the configured synthesis window.
func (s *Synthesizer) HistoryDays() int { return s.days }

// Snapshot synthesizes a complete record for symbol from a generated history.
// The latest point becomes the current price and the last two points give the
// daily change. With fewer than two points the change is zero; with none the
// base price is used.
func (s *Synthesizer) Snapshot(symbol string) models.Snapshot {
	symbol = util.NormalizeSymbol(symbol)
	points := s.history.Generate(symbol, s.days)

	price := s.history.BasePrice(symbol)
	var volume int64
	change, changePct := 0.0, 0.0
	if n := len(points); n > 0 {
		last := points[n-1]
		price = last.Price
		volume = last.Volume
		if n > 1 {
			prev := points[n-2].Price
			change = util.Round2(price - prev)
			if prev != 0 {
				changePct = util.Round2((price - prev) / prev * 100)
			}
		}
	}

	support, resistance := Bands(price)
	snap := models.Snapshot{
		Symbol:             symbol,
		Name:               symbol,
		CurrentPrice:       price,
		DailyChange:        change,
		DailyChangePercent: changePct,
		Volume:             volume,
		OpenInterest:       PlaceholderOpenInterest,
		Volatility:         PlaceholderVolatility,
		Support:            support,
		Resistance:         resistance,
		Sentiment:          PlaceholderSentiment,
	}
	s.Fill(&snap)
	return snap
}

// Fill sets every absent composite field on snap to its generic default.
// Present fields are left untouched.
func (s *Synthesizer) Fill(snap *models.Snapshot) {
	if snap.AIAnalysis == nil {
		snap.AIAnalysis = s.AIAnalysis(snap.Symbol, snap.CurrentPrice, snap.Support, snap.Resistance)
	}
	if snap.RecentActivity == nil {
		snap.RecentActivity = s.RecentActivity(snap.CurrentPrice)
	}
	if snap.CalendarSpreads == nil {
		snap.CalendarSpreads = s.CalendarSpreads(snap.CurrentPrice)
	}
	if snap.SeasonalPatterns == nil {
		snap.SeasonalPatterns = s.SeasonalPatterns(snap.Symbol)
	}
}

// Bands returns support at -1/-3/-5% and resistance at +1/+3/+5% of price.
func Bands(price float64) (support, resistance []float64) {
	support = make([]float64, len(supportFactors))
	for i, f := range supportFactors {
		support[i] = util.Round2(price * f)
	}
	resistance = make([]float64, len(resistanceFactors))
	for i, f := range resistanceFactors {
		resistance[i] = util.Round2(price * f)
	}
	return support, resistance
}

// AIAnalysis writes a neutral narrative around the nearest levels. Empty
// level lists are replaced by bands around price.
func (s *Synthesizer) AIAnalysis(symbol string, price float64, support, resistance []float64) *models.AIAnalysis {
	bandS, bandR := Bands(price)
	if len(support) == 0 {
		support = bandS
	}
	if len(resistance) == 0 {
		resistance = bandR
	}
	sup, res := support[0], resistance[0]
	return &models.AIAnalysis{
		Summary: fmt.Sprintf("%s is trading between support at %.2f and resistance at %.2f with no dominant trend.", symbol, sup, res),
		TechnicalAnalysis: fmt.Sprintf("A sustained break above %.2f would target %.2f; a close below %.2f opens %.2f.",
			res, resistance[len(resistance)-1], sup, support[len(support)-1]),
		FundamentalAnalysis: fmt.Sprintf("No curated fundamental coverage is available for %s.", symbol),
		Outlook:             "Neutral",
		Correlations:        []models.Correlation{},
		Risk: models.RiskAssessment{
			Level:   "moderate",
			Score:   0.5,
			Factors: []string{"Limited data coverage"},
		},
	}
}

// RecentActivity returns four ticks at -15, -30, -45 and -60 minutes, newest
// first, each within ±0.1% of price.
func (s *Synthesizer) RecentActivity(price float64) []models.Activity {
	now := s.now()
	out := make([]models.Activity, 0, activityTicks)
	for i := 1; i <= activityTicks; i++ {
		p := price * (1 + (s.rnd.Float64()-0.5)*activityMaxShift)
		out = append(out, models.Activity{
			Time:   now.Add(-time.Duration(i) * activityStep).Format(activityTimeFmt),
			Price:  util.Round2(p),
			Volume: int64(100 + s.rnd.Float64()*900),
			Note:   "Synthetic tick",
		})
	}
	return out
}

// CalendarSpreads returns two rows for the next quarterly-style expirations.
func (s *Synthesizer) CalendarSpreads(price float64) []models.CalendarSpread {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]models.CalendarSpread, 0, len(spreadFactors))
	for i, f := range spreadFactors {
		front := first.AddDate(0, 1+3*i, 0)
		back := front.AddDate(0, 3, 0)
		out = append(out, models.CalendarSpread{
			FrontMonth: front.Format("Jan"),
			BackMonth:  back.Format("Jan"),
			Spread:     util.Round2(price * f),
			ZScore:     util.Round2((s.rnd.Float64() - 0.5) * 2),
		})
	}
	return out
}

// SeasonalPatterns renders the seasonal block for the current date.
func (s *Synthesizer) SeasonalPatterns(symbol string) *models.SeasonalPatterns {
	p := s.SeasonalAt(s.now(), symbol)
	return &p
}

func (s *Synthesizer) SeasonalAt(date time.Time, symbol string) models.SeasonalPatterns {
	return s.seasonal.Patterns(date, symbol)
}

// History generates a daily series for symbol.
func (s *Synthesizer) History(symbol string, days int) []models.PricePoint {
	return s.history.Generate(symbol, days)
}

// Finite reports whether every numeric field of snap is a real number.
func Finite(snap models.Snapshot) bool {
	ok := func(xs ...float64) bool {
		for _, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
		return true
	}
	if !ok(snap.CurrentPrice, snap.DailyChange, snap.DailyChangePercent, snap.Volatility, snap.Sentiment) {
		return false
	}
	if !ok(snap.Support...) || !ok(snap.Resistance...) {
		return false
	}
	for _, a := range snap.RecentActivity {
		if !ok(a.Price) {
			return false
		}
	}
	for _, c := range snap.CalendarSpreads {
		if !ok(c.Spread, c.ZScore) {
			return false
		}
	}
	if snap.AIAnalysis != nil {
		if !ok(snap.AIAnalysis.Risk.Score) {
			return false
		}
		for _, c := range snap.AIAnalysis.Correlations {
			if !ok(c.Coefficient) {
				return false
			}
		}
	}
	return true
}
