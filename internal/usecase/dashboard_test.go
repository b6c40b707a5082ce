package usecase

import (
	"context"
	"testing"

	"FinDash/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentFallbackFromCatalog(t *testing.T) {
	svc := NewDashboardService(&stubBackend{err: errNetwork}, catalog)
	res := svc.Sentiment(context.Background(), "es")
	require.True(t, res.IsFallback())
	assert.Equal(t, "ES", res.Data.Symbol)
	assert.Equal(t, 0.35, res.Data.Score)
	assert.Equal(t, "bullish", res.Data.Label)
	assert.Equal(t, 54.0, res.Data.Bullish)
	assert.Equal(t, 26.0, res.Data.Bearish)
	assert.Equal(t, 20.0, res.Data.Neutral)
}

func TestSentimentFallbackUnknown(t *testing.T) {
	svc := NewDashboardService(&stubBackend{err: errNetwork}, catalog)
	res := svc.Sentiment(context.Background(), "ZZZ")
	assert.Equal(t, 0.0, res.Data.Score)
	assert.Equal(t, "neutral", res.Data.Label)
}

func TestSentimentEmptyBodyFallsBack(t *testing.T) {
	svc := NewDashboardService(&stubBackend{}, catalog)
	res := svc.Sentiment(context.Background(), "ES")
	assert.Equal(t, ReasonEmpty, res.Reason)
}

func TestSentimentLive(t *testing.T) {
	live := &models.Sentiment{Symbol: "ES", Score: -0.5, Label: "bearish"}
	m := newRecordingMetrics()
	svc := NewDashboardService(&stubBackend{sentiment: live}, catalog, WithMetrics(m))
	res := svc.Sentiment(context.Background(), "ES")
	assert.False(t, res.IsFallback())
	assert.Equal(t, *live, res.Data)
	assert.Equal(t, 1, m.live["sentiment"])
}

func TestListFallbacksAreEmptyNotNil(t *testing.T) {
	svc := NewDashboardService(&stubBackend{err: errNetwork}, catalog)
	ctx := context.Background()

	news := svc.News(ctx, "general")
	assert.True(t, news.IsFallback())
	assert.NotNil(t, news.Data)
	assert.Empty(t, news.Data)

	ind := svc.MacroIndicators(ctx, "2026-10")
	assert.NotNil(t, ind.Data)
	mn := svc.MacroNews(ctx, "2026-10-16")
	assert.NotNil(t, mn.Data)
	dates := svc.MacroDates(ctx)
	assert.NotNil(t, dates.Data)

	an := svc.MacroAnalysis(ctx, "2026-10-16")
	assert.True(t, an.IsFallback())
	assert.Equal(t, "2026-10-16", an.Data.Date)
	assert.NotEmpty(t, an.Data.Summary)
}

func TestLiveNilListBecomesEmpty(t *testing.T) {
	svc := NewDashboardService(&stubBackend{}, catalog)
	res := svc.News(context.Background(), "general")
	assert.False(t, res.IsFallback())
	assert.NotNil(t, res.Data)
}

func TestLiveLists(t *testing.T) {
	b := &stubBackend{
		news:       []models.NewsItem{{ID: "n1", Title: "Fed holds"}},
		indicators: []models.MacroIndicator{{Name: "CPI", Value: 3.1}},
		dates:      []string{"2026-10-16"},
		analysis:   &models.MacroAnalysis{Date: "2026-10-16", Summary: "Calm"},
	}
	svc := NewDashboardService(b, catalog)
	ctx := context.Background()
	assert.Equal(t, "n1", svc.News(ctx, "general").Data[0].ID)
	assert.Equal(t, "CPI", svc.MacroIndicators(ctx, "2026-10").Data[0].Name)
	assert.Equal(t, []string{"2026-10-16"}, svc.MacroDates(ctx).Data)
	assert.Equal(t, "Calm", svc.MacroAnalysis(ctx, "2026-10-16").Data.Summary)
}

func TestDeriveSentimentSplit(t *testing.T) {
	s := DeriveSentiment("X", -1)
	assert.Equal(t, "bearish", s.Label)
	assert.Equal(t, 0.0, s.Bullish)
	assert.Equal(t, 80.0, s.Bearish)
}
