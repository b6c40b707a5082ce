package repository

import (
	"context"
	"errors"
	"time"

	"FinDash/internal/domain/models"
	"FinDash/internal/domain/repository"
	"FinDash/pkg/cache"
	applogger "FinDash/pkg/logger"
)

// CachedBackend is a read-through cache in front of the upstream backend.
// Only successful answers are stored; failures always reach the caller so
// the fallback path stays in charge of them. Cache errors are logged and
// treated as misses.
type CachedBackend struct {
	next  repository.Backend
	cache cache.Service
	ttl   time.Duration
	log   *applogger.Logger
}

func NewCachedBackend(next repository.Backend, c cache.Service, ttl time.Duration, l *applogger.Logger) *CachedBackend {
	if l == nil {
		l = applogger.Nop()
	}
	return &CachedBackend{next: next, cache: c, ttl: ttl, log: l}
}

// readThrough serves key from cache or loads and stores it.
func readThrough[T any](ctx context.Context, b *CachedBackend, key string, load func(context.Context) (T, error)) (T, error) {
	var v T
	err := b.cache.Get(ctx, key, &v)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		b.log.Warn("cache get failed", applogger.String("key", key), applogger.Error(err))
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}
	if serr := b.cache.Set(ctx, key, v, b.ttl); serr != nil {
		b.log.Warn("cache set failed", applogger.String("key", key), applogger.Error(serr))
	}
	return v, nil
}

// readThroughPtr skips caching nil payloads.
func readThroughPtr[T any](ctx context.Context, b *CachedBackend, key string, load func(context.Context) (*T, error)) (*T, error) {
	var cached T
	if err := b.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		b.log.Warn("cache get failed", applogger.String("key", key), applogger.Error(err))
	}

	v, err := load(ctx)
	if err != nil || v == nil {
		return v, err
	}
	if serr := b.cache.Set(ctx, key, v, b.ttl); serr != nil {
		b.log.Warn("cache set failed", applogger.String("key", key), applogger.Error(serr))
	}
	return v, nil
}

func (b *CachedBackend) Futures(ctx context.Context, symbol string) (*models.Snapshot, error) {
	return readThroughPtr(ctx, b, cache.Key("futures", symbol), func(ctx context.Context) (*models.Snapshot, error) {
		return b.next.Futures(ctx, symbol)
	})
}

func (b *CachedBackend) Sentiment(ctx context.Context, symbol string) (*models.Sentiment, error) {
	return readThroughPtr(ctx, b, cache.Key("sentiment", symbol), func(ctx context.Context) (*models.Sentiment, error) {
		return b.next.Sentiment(ctx, symbol)
	})
}

func (b *CachedBackend) News(ctx context.Context, category string) ([]models.NewsItem, error) {
	return readThrough(ctx, b, cache.Key("news", category), func(ctx context.Context) ([]models.NewsItem, error) {
		return b.next.News(ctx, category)
	})
}

func (b *CachedBackend) MacroIndicators(ctx context.Context, month string) ([]models.MacroIndicator, error) {
	return readThrough(ctx, b, cache.Key("macro", "indicators", month), func(ctx context.Context) ([]models.MacroIndicator, error) {
		return b.next.MacroIndicators(ctx, month)
	})
}

func (b *CachedBackend) MacroAnalysis(ctx context.Context, date string) (*models.MacroAnalysis, error) {
	return readThroughPtr(ctx, b, cache.Key("macro", "analysis", date), func(ctx context.Context) (*models.MacroAnalysis, error) {
		return b.next.MacroAnalysis(ctx, date)
	})
}

func (b *CachedBackend) MacroNews(ctx context.Context, date string) ([]models.NewsItem, error) {
	return readThrough(ctx, b, cache.Key("macro", "news", date), func(ctx context.Context) ([]models.NewsItem, error) {
		return b.next.MacroNews(ctx, date)
	})
}

func (b *CachedBackend) MacroDates(ctx context.Context) ([]string, error) {
	return readThrough(ctx, b, cache.Key("macro", "dates"), b.next.MacroDates)
}

var _ repository.Backend = (*CachedBackend)(nil)
