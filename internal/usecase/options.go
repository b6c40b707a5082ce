package usecase

import (
	"time"

	domrepo "FinDash/internal/domain/repository"
	domsvc "FinDash/internal/domain/service"
	applogger "FinDash/pkg/logger"
)

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 5 * time.Second

// base carries what every fetching service shares.
type base struct {
	obs     *observer
	timeout time.Duration
}

func newBase(opts []Option) base {
	b := base{obs: newObserver(), timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now reads the injected clock.
func (b *base) Now() time.Time { return b.obs.now() }

type Option func(*base)

func WithLogger(l *applogger.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.obs.log = l
		}
	}
}

func WithMetrics(m domrepo.Metrics) Option {
	return func(b *base) {
		if m != nil {
			b.obs.metrics = m
		}
	}
}

// WithEvents publishes a FallbackEvent for every fallback served.
func WithEvents(p domrepo.EventPublisher) Option {
	return func(b *base) { b.obs.events = p }
}

// WithTimeout sets the per-call upstream deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(b *base) { b.timeout = d }
}

func WithClock(c domsvc.Clock) Option {
	return func(b *base) {
		if c != nil {
			b.obs.now = c
		}
	}
}
