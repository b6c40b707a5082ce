package usecase

import (
	"context"
	"fmt"
	"time"

	"FinDash/internal/domain/models"
	domrepo "FinDash/internal/domain/repository"
	"FinDash/internal/services/features"
	"FinDash/internal/services/seasonal"
	"FinDash/internal/services/synth"
	applogger "FinDash/pkg/logger"
	"FinDash/pkg/util"
)

const kindFutures = "futures"

// FuturesService serves instrument snapshots. It prefers the upstream
// backend and patches or replaces its answer from the catalog and the
// synthesizer, so Fetch always yields a complete snapshot.
type FuturesService struct {
	base
	backend domrepo.Backend
	catalog domrepo.Catalog
	synth   *synth.Synthesizer
}

func NewFuturesService(backend domrepo.Backend, catalog domrepo.Catalog, s *synth.Synthesizer, opts ...Option) *FuturesService {
	return &FuturesService{
		base:    newBase(opts),
		backend: backend,
		catalog: catalog,
		synth:   s,
	}
}

// Fetch returns Live when the upstream answered and Fallback otherwise.
// Upstream failures are logged and counted, never returned.
func (s *FuturesService) Fetch(ctx context.Context, symbol string) models.FuturesResult {
	symbol = util.NormalizeSymbol(symbol)
	started := s.obs.now()

	partial, err := s.fetchUpstream(ctx, symbol)
	if err != nil {
		reason := s.obs.fallback(kindFutures, symbol, err, started)
		return models.Fallback(s.Reconcile(symbol, nil), reason)
	}

	merged := s.Reconcile(symbol, partial)
	s.obs.live(kindFutures, started)
	s.obs.metrics.RecordLastPrice(symbol, merged.CurrentPrice)
	return models.Live(merged)
}

func (s *FuturesService) fetchUpstream(ctx context.Context, symbol string) (*models.Snapshot, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	partial, err := s.backend.Futures(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch futures %s: %w", symbol, err)
	}
	if partial == nil {
		return nil, fmt.Errorf("fetch futures %s: %w", symbol, domrepo.ErrEmptyResponse)
	}
	return partial, nil
}

// Reconcile merges an upstream payload with baseline data.
//
// With partial == nil the catalog record is returned as is, or a full record
// is synthesized for symbols the catalog does not know. Otherwise partial is
// kept and only its absent composite fields (aiAnalysis, recentActivity,
// calendarSpreads, seasonalPatterns) are filled, from the catalog when the
// symbol is known and from generic defaults when it is not.
func (s *FuturesService) Reconcile(symbol string, partial *models.Snapshot) models.Snapshot {
	symbol = util.NormalizeSymbol(symbol)
	known, ok := s.catalog.Lookup(symbol)

	if partial == nil {
		if ok {
			return known
		}
		return s.synth.Snapshot(symbol)
	}

	out := partial.Clone()
	if out.Symbol == "" {
		out.Symbol = symbol
	}
	if ok {
		if out.AIAnalysis == nil {
			out.AIAnalysis = known.AIAnalysis
		}
		if out.RecentActivity == nil {
			out.RecentActivity = known.RecentActivity
		}
		if out.CalendarSpreads == nil {
			out.CalendarSpreads = known.CalendarSpreads
		}
		if out.SeasonalPatterns == nil {
			out.SeasonalPatterns = known.SeasonalPatterns
		}
	}
	// whatever neither side provided
	s.synth.Fill(&out)
	return out
}

// History generates a synthetic series with summary statistics.
func (s *FuturesService) History(symbol string, days int) models.History {
	symbol = util.NormalizeSymbol(symbol)
	points := s.synth.History(symbol, days)
	s.obs.log.Debug("history generated",
		applogger.String("symbol", symbol),
		applogger.Int("days", days),
		applogger.Int("points", len(points)),
	)
	return models.History{
		Symbol:  symbol,
		Days:    days,
		Points:  points,
		Summary: features.Summarize(points),
	}
}

// Seasonal classifies date for symbol.
func (s *FuturesService) Seasonal(symbol string, date time.Time) models.SeasonalView {
	symbol = util.NormalizeSymbol(symbol)
	p := s.synth.SeasonalAt(date, symbol)
	return models.SeasonalView{
		Symbol:    symbol,
		Date:      util.FormatDate(date),
		Favorable: p.CurrentPhase == seasonal.PhaseBullish,
		Patterns:  p,
	}
}

// Symbols lists the catalog's instruments.
func (s *FuturesService) Symbols() []string { return s.catalog.Symbols() }

// Wait blocks until queued fallback events are published.
func (s *FuturesService) Wait() { s.obs.wait() }
