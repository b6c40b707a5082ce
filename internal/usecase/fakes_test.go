package usecase

import (
	"context"
	"sync"
	"time"

	"FinDash/internal/domain/models"
	"FinDash/internal/mockdata"
	"FinDash/internal/services/history"
	"FinDash/internal/services/randsrc"
	"FinDash/internal/services/seasonal"
	"FinDash/internal/services/synth"
)

// Friday 2026-10-16 afternoon.
func testClock() time.Time { return time.Date(2026, 10, 16, 16, 0, 0, 0, time.UTC) }

func newTestSynth(days int) *synth.Synthesizer {
	src := randsrc.Seeded(11)
	gen := history.New(history.WithRandom(src), history.WithClock(testClock))
	return synth.New(gen, seasonal.New(seasonal.WithRandom(src)),
		synth.WithRandom(src), synth.WithClock(testClock), synth.WithHistoryDays(days))
}

// stubBackend answers from fixed fields; err fails every call.
type stubBackend struct {
	err        error
	futures    *models.Snapshot
	sentiment  *models.Sentiment
	news       []models.NewsItem
	indicators []models.MacroIndicator
	analysis   *models.MacroAnalysis
	dates      []string
	block      bool
}

func (b *stubBackend) wait(ctx context.Context) error {
	if b.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return b.err
}

func (b *stubBackend) Futures(ctx context.Context, _ string) (*models.Snapshot, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	if b.futures == nil {
		return nil, nil
	}
	c := b.futures.Clone()
	return &c, nil
}

func (b *stubBackend) Sentiment(ctx context.Context, _ string) (*models.Sentiment, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.sentiment, nil
}

func (b *stubBackend) News(ctx context.Context, _ string) ([]models.NewsItem, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.news, nil
}

func (b *stubBackend) MacroIndicators(ctx context.Context, _ string) ([]models.MacroIndicator, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.indicators, nil
}

func (b *stubBackend) MacroAnalysis(ctx context.Context, _ string) (*models.MacroAnalysis, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.analysis, nil
}

func (b *stubBackend) MacroNews(ctx context.Context, _ string) ([]models.NewsItem, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.news, nil
}

func (b *stubBackend) MacroDates(ctx context.Context) ([]string, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.dates, nil
}

type recordingMetrics struct {
	mu        sync.Mutex
	fallbacks map[string]int
	live      map[string]int
	prices    map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{fallbacks: map[string]int{}, live: map[string]int{}, prices: map[string]float64{}}
}

func (m *recordingMetrics) RecordFallback(kind, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[kind+"/"+reason]++
}

func (m *recordingMetrics) RecordLive(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[kind]++
}

func (m *recordingMetrics) RecordError(string) {}

func (m *recordingMetrics) RecordLastPrice(symbol string, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[symbol] = price
}

func (m *recordingMetrics) RecordLatency(string, float64) {}

type capturePublisher struct {
	mu     sync.Mutex
	events []models.FallbackEvent
}

func (p *capturePublisher) PublishFallback(_ context.Context, ev models.FallbackEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) all() []models.FallbackEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.FallbackEvent(nil), p.events...)
}

var catalog = mockdata.Default()
