package repository

import (
	"context"
	"fmt"

	"FinDash/internal/domain/models"
	"FinDash/internal/domain/repository"
)

// errOffline is returned by every OfflineBackend call.
var errOffline = fmt.Errorf("no backend configured: %w", repository.ErrUnavailable)

// OfflineBackend stands in when no upstream URL is configured, so every
// response is served from catalog or synthetic data.
type OfflineBackend struct{}

func (OfflineBackend) Futures(context.Context, string) (*models.Snapshot, error) {
	return nil, errOffline
}

func (OfflineBackend) Sentiment(context.Context, string) (*models.Sentiment, error) {
	return nil, errOffline
}

func (OfflineBackend) News(context.Context, string) ([]models.NewsItem, error) {
	return nil, errOffline
}

func (OfflineBackend) MacroIndicators(context.Context, string) ([]models.MacroIndicator, error) {
	return nil, errOffline
}

func (OfflineBackend) MacroAnalysis(context.Context, string) (*models.MacroAnalysis, error) {
	return nil, errOffline
}

func (OfflineBackend) MacroNews(context.Context, string) ([]models.NewsItem, error) {
	return nil, errOffline
}

func (OfflineBackend) MacroDates(context.Context) ([]string, error) {
	return nil, errOffline
}

var _ repository.Backend = OfflineBackend{}
