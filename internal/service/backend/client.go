// Package backend is the HTTP client for the upstream dashboard API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"FinDash/internal/domain/models"
	domrepo "FinDash/internal/domain/repository"
	xhttp "FinDash/pkg/http"
	applogger "FinDash/pkg/logger"
)

// ErrUnavailable wraps non-2xx answers and breaker rejections.
var ErrUnavailable = domrepo.ErrUnavailable

// BreakerSettings tunes the circuit breaker. A zero Failures disables it.
type BreakerSettings struct {
	Failures    uint32        // consecutive failures that open the circuit
	OpenTimeout time.Duration // how long the circuit stays open
	HalfOpenMax uint32        // trial requests allowed while half-open
}

type Client struct {
	baseURL string
	http    *xhttp.Client
	cb      *gobreaker.CircuitBreaker
	log     *applogger.Logger
}

type Option func(*clientOptions)

type clientOptions struct {
	timeout   time.Duration
	transport http.RoundTripper
	breaker   BreakerSettings
	log       *applogger.Logger
}

// WithTimeout caps every request, independent of the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

func WithBreaker(s BreakerSettings) Option {
	return func(o *clientOptions) { o.breaker = s }
}

func WithLogger(l *applogger.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	o := clientOptions{timeout: 10 * time.Second, log: applogger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(o.timeout), xhttp.WithTransport(o.transport)),
		log:     o.log,
	}
	if o.breaker.Failures > 0 {
		c.cb = gobreaker.NewCircuitBreaker(c.breakerSettings(o.breaker))
	}
	return c
}

func (c *Client) breakerSettings(s BreakerSettings) gobreaker.Settings {
	failures := s.Failures
	return gobreaker.Settings{
		Name:        "backend",
		MaxRequests: s.HalfOpenMax,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Caller cancellations and 4xx answers say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var se *xhttp.StatusError
			return errors.As(err, &se) && se.Code < http.StatusInternalServerError
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed",
				applogger.String("breaker", name),
				applogger.String("from", from.String()),
				applogger.String("to", to.String()),
			)
		},
	}
}

// State reports the breaker state, or "disabled".
func (c *Client) State() string {
	if c.cb == nil {
		return "disabled"
	}
	return c.cb.State().String()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	call := func() (interface{}, error) {
		return nil, c.http.GetJSON(ctx, c.baseURL+path, query, dest)
	}

	var err error
	if c.cb == nil {
		_, err = call()
	} else {
		_, err = c.cb.Execute(call)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("GET %s: %w", path, domrepo.ErrCircuitOpen)
	}
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("GET %s: %w: %w", path, ErrUnavailable, err)
	}
	return fmt.Errorf("GET %s: %w", path, err)
}

func symbolPath(symbol string, suffix string) string {
	return "/api/futures/" + url.PathEscape(symbol) + suffix
}

func (c *Client) Futures(ctx context.Context, symbol string) (*models.Snapshot, error) {
	var out *models.Snapshot
	if err := c.get(ctx, symbolPath(symbol, ""), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Sentiment(ctx context.Context, symbol string) (*models.Sentiment, error) {
	var out *models.Sentiment
	if err := c.get(ctx, symbolPath(symbol, "/sentiment"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) News(ctx context.Context, category string) ([]models.NewsItem, error) {
	var out []models.NewsItem
	err := c.get(ctx, "/api/news", url.Values{"category": {category}}, &out)
	return out, err
}

func (c *Client) MacroIndicators(ctx context.Context, month string) ([]models.MacroIndicator, error) {
	var out []models.MacroIndicator
	err := c.get(ctx, "/api/macro/indicators", optional("month", month), &out)
	return out, err
}

func (c *Client) MacroAnalysis(ctx context.Context, date string) (*models.MacroAnalysis, error) {
	var out *models.MacroAnalysis
	if err := c.get(ctx, "/api/macro/analysis", optional("date", date), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MacroNews(ctx context.Context, date string) ([]models.NewsItem, error) {
	var out []models.NewsItem
	err := c.get(ctx, "/api/macro/news", optional("date", date), &out)
	return out, err
}

func (c *Client) MacroDates(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/api/macro/dates", nil, &out)
	return out, err
}

func optional(key, value string) url.Values {
	if value == "" {
		return nil
	}
	return url.Values{key: {value}}
}

var _ domrepo.Backend = (*Client)(nil)
