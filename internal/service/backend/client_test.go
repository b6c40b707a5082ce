package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domrepo "FinDash/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuturesDecodesPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/futures/ES", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"ES","currentPrice":5660.5,"support":[5600]}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	snap, err := c.Futures(context.Background(), "ES")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 5660.5, snap.CurrentPrice)
	assert.Equal(t, []float64{5600}, snap.Support)
	assert.Nil(t, snap.AIAnalysis)
	assert.Nil(t, snap.RecentActivity)
}

func TestNullBodyYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	snap, err := New(srv.URL).Futures(context.Background(), "ES")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestNon2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Futures(context.Background(), "ES")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDecodeErrorIsNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Sentiment(context.Background(), "ES")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/news":
			assert.Equal(t, "energy", r.URL.Query().Get("category"))
			_, _ = w.Write([]byte(`[{"id":"1","title":"OPEC"}]`))
		case "/api/macro/indicators":
			assert.Equal(t, "2026-10", r.URL.Query().Get("month"))
			_, _ = w.Write([]byte(`[{"name":"CPI","value":3.1}]`))
		case "/api/macro/analysis":
			assert.Empty(t, r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"date":"2026-10-16","summary":"ok"}`))
		case "/api/macro/dates":
			_, _ = w.Write([]byte(`["2026-10-15","2026-10-16"]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	news, err := c.News(ctx, "energy")
	require.NoError(t, err)
	assert.Equal(t, "OPEC", news[0].Title)

	ind, err := c.MacroIndicators(ctx, "2026-10")
	require.NoError(t, err)
	assert.Equal(t, 3.1, ind[0].Value)

	an, err := c.MacroAnalysis(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ok", an.Summary)

	dates, err := c.MacroDates(ctx)
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	_, err = c.MacroNews(ctx, "2026-10-16")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, WithBreaker(BreakerSettings{Failures: 2, OpenTimeout: time.Minute, HalfOpenMax: 1}))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Futures(ctx, "ES")
		assert.ErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, "open", c.State())

	_, err := c.Futures(ctx, "ES")
	assert.ErrorIs(t, err, domrepo.ErrCircuitOpen)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), hits.Load())
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, WithBreaker(BreakerSettings{Failures: 1, OpenTimeout: time.Minute}))
	for i := 0; i < 3; i++ {
		_, err := c.Futures(context.Background(), "ZZZ")
		assert.ErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, "closed", c.State())
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := New(srv.URL).Futures(ctx, "ES")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDisabledBreakerState(t *testing.T) {
	assert.Equal(t, "disabled", New("http://localhost").State())
}
