package repository

import (
	"context"

	"FinDash/internal/domain/models"
)

// Backend is the upstream dashboard API. Every method returns an error for
// transport failures, non-2xx statuses and undecodable bodies alike.
type Backend interface {
	Futures(ctx context.Context, symbol string) (*models.Snapshot, error)
	Sentiment(ctx context.Context, symbol string) (*models.Sentiment, error)
	News(ctx context.Context, category string) ([]models.NewsItem, error)
	MacroIndicators(ctx context.Context, month string) ([]models.MacroIndicator, error)
	MacroAnalysis(ctx context.Context, date string) (*models.MacroAnalysis, error)
	MacroNews(ctx context.Context, date string) ([]models.NewsItem, error)
	MacroDates(ctx context.Context) ([]string, error)
}

// Catalog is the read-only store of curated instrument snapshots.
type Catalog interface {
	Lookup(symbol string) (models.Snapshot, bool)
	Symbols() []string
}

// EventPublisher ships fallback events to an external sink.
type EventPublisher interface {
	PublishFallback(ctx context.Context, ev models.FallbackEvent) error
	Close() error
}

type Metrics interface {
	RecordFallback(kind, reason string)
	RecordLive(kind string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
