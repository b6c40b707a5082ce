package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"FinDash/internal/domain/models"
	domrepo "FinDash/internal/domain/repository"
	applogger "FinDash/pkg/logger"
)

// Fallback reasons. They double as metric label values, so keep the set small.
const (
	ReasonTimeout     = "timeout"
	ReasonCanceled    = "canceled"
	ReasonCircuitOpen = "circuit_open"
	ReasonUnavailable = "unavailable"
	ReasonEmpty       = "empty_response"
	ReasonError       = "error"
)

const publishTimeout = 5 * time.Second

// ReasonFor maps an upstream error to a fallback reason.
func ReasonFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	case errors.Is(err, domrepo.ErrCircuitOpen):
		return ReasonCircuitOpen
	case errors.Is(err, domrepo.ErrUnavailable):
		return ReasonUnavailable
	case errors.Is(err, domrepo.ErrEmptyResponse):
		return ReasonEmpty
	default:
		return ReasonError
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordFallback(string, string)   {}
func (nopMetrics) RecordLive(string)               {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)   {}

// observer logs, counts and optionally publishes the outcome of an upstream call.
type observer struct {
	log     *applogger.Logger
	metrics domrepo.Metrics
	events  domrepo.EventPublisher
	now     func() time.Time
	wg      sync.WaitGroup
}

func newObserver() *observer {
	return &observer{log: applogger.Nop(), metrics: nopMetrics{}, now: time.Now}
}

func (o *observer) live(kind string, started time.Time) {
	o.metrics.RecordLive(kind)
	o.metrics.RecordLatency(kind, o.now().Sub(started).Seconds())
}

// fallback records a failed upstream call and returns its reason.
func (o *observer) fallback(kind, subject string, err error, started time.Time) string {
	reason := ReasonFor(err)
	o.log.Warn("upstream call failed, serving fallback",
		applogger.String("kind", kind),
		applogger.String("subject", subject),
		applogger.String("reason", reason),
		applogger.Error(err),
	)
	o.metrics.RecordError(kind)
	o.metrics.RecordFallback(kind, reason)
	o.metrics.RecordLatency(kind, o.now().Sub(started).Seconds())

	if o.events != nil {
		ev := models.FallbackEvent{
			ID:       uuid.NewString(),
			Kind:     kind,
			Subject:  subject,
			Reason:   reason,
			Occurred: o.now().UTC(),
		}
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if perr := o.events.PublishFallback(ctx, ev); perr != nil {
				o.log.Error("publish fallback event",
					applogger.String("event_id", ev.ID),
					applogger.Error(perr),
				)
			}
		}()
	}
	return reason
}

// wait blocks until in-flight event publishes finish.
func (o *observer) wait() { o.wg.Wait() }
