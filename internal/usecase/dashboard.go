package usecase

import (
	"context"
	"fmt"

	"FinDash/internal/domain/models"
	domrepo "FinDash/internal/domain/repository"
	"FinDash/pkg/util"
)

const (
	kindSentiment       = "sentiment"
	kindNews            = "news"
	kindMacroIndicators = "macro_indicators"
	kindMacroAnalysis   = "macro_analysis"
	kindMacroNews       = "macro_news"
	kindMacroDates      = "macro_dates"

	// sentimentLabelBand is the |score| below which sentiment reads neutral.
	sentimentLabelBand = 0.2
	// sentimentNeutralShare is the fixed neutral share of a derived split.
	sentimentNeutralShare = 20.0
)

// DashboardService fronts the sibling dashboard endpoints. Each call has
// the same availability guarantee as FuturesService.Fetch: upstream
// failures turn into Fallback results.
type DashboardService struct {
	base
	backend domrepo.Backend
	catalog domrepo.Catalog
}

func NewDashboardService(backend domrepo.Backend, catalog domrepo.Catalog, opts ...Option) *DashboardService {
	return &DashboardService{base: newBase(opts), backend: backend, catalog: catalog}
}

// serve runs one upstream call under the configured timeout.
func serve[T any](ctx context.Context, b *base, kind, subject string, call func(context.Context) (T, error), fallback func() T) models.Result[T] {
	started := b.obs.now()
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	v, err := call(ctx)
	if err != nil {
		reason := b.obs.fallback(kind, subject, fmt.Errorf("fetch %s %s: %w", kind, subject, err), started)
		return models.Fallback(fallback(), reason)
	}
	b.obs.live(kind, started)
	return models.Live(v)
}

// nonNil turns a nil pointer payload into ErrEmptyResponse.
func nonNil[T any](v *T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, domrepo.ErrEmptyResponse
	}
	return *v, nil
}

// list keeps JSON output as [] rather than null.
func list[T any](v []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}

func (s *DashboardService) Sentiment(ctx context.Context, symbol string) models.Result[models.Sentiment] {
	symbol = util.NormalizeSymbol(symbol)
	return serve(ctx, &s.base, kindSentiment, symbol,
		func(ctx context.Context) (models.Sentiment, error) {
			return nonNil(s.backend.Sentiment(ctx, symbol))
		},
		func() models.Sentiment {
			score := 0.0
			if snap, ok := s.catalog.Lookup(symbol); ok {
				score = snap.Sentiment
			}
			return DeriveSentiment(symbol, score)
		})
}

// DeriveSentiment expands a [-1, 1] score into a label and a percentage split.
func DeriveSentiment(symbol string, score float64) models.Sentiment {
	label := "neutral"
	switch {
	case score >= sentimentLabelBand:
		label = "bullish"
	case score <= -sentimentLabelBand:
		label = "bearish"
	}
	directional := 100 - sentimentNeutralShare
	bullish := util.Round2(directional * (1 + score) / 2)
	return models.Sentiment{
		Symbol:  symbol,
		Score:   score,
		Label:   label,
		Bullish: bullish,
		Bearish: util.Round2(directional - bullish),
		Neutral: sentimentNeutralShare,
	}
}

func (s *DashboardService) News(ctx context.Context, category string) models.Result[[]models.NewsItem] {
	return serve(ctx, &s.base, kindNews, category,
		func(ctx context.Context) ([]models.NewsItem, error) {
			return list(s.backend.News(ctx, category))
		},
		func() []models.NewsItem { return []models.NewsItem{} })
}

func (s *DashboardService) MacroIndicators(ctx context.Context, month string) models.Result[[]models.MacroIndicator] {
	return serve(ctx, &s.base, kindMacroIndicators, month,
		func(ctx context.Context) ([]models.MacroIndicator, error) {
			return list(s.backend.MacroIndicators(ctx, month))
		},
		func() []models.MacroIndicator { return []models.MacroIndicator{} })
}

func (s *DashboardService) MacroAnalysis(ctx context.Context, date string) models.Result[models.MacroAnalysis] {
	return serve(ctx, &s.base, kindMacroAnalysis, date,
		func(ctx context.Context) (models.MacroAnalysis, error) {
			return nonNil(s.backend.MacroAnalysis(ctx, date))
		},
		func() models.MacroAnalysis {
			return models.MacroAnalysis{
				Date:       date,
				Summary:    "Macro analysis is temporarily unavailable.",
				Highlights: []string{},
			}
		})
}

func (s *DashboardService) MacroNews(ctx context.Context, date string) models.Result[[]models.NewsItem] {
	return serve(ctx, &s.base, kindMacroNews, date,
		func(ctx context.Context) ([]models.NewsItem, error) {
			return list(s.backend.MacroNews(ctx, date))
		},
		func() []models.NewsItem { return []models.NewsItem{} })
}

func (s *DashboardService) MacroDates(ctx context.Context) models.Result[[]string] {
	return serve(ctx, &s.base, kindMacroDates, "",
		func(ctx context.Context) ([]string, error) {
			return list(s.backend.MacroDates(ctx))
		},
		func() []string { return []string{} })
}

// Wait blocks until queued fallback events are published.
func (s *DashboardService) Wait() { s.obs.wait() }
