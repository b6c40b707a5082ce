package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordLive("futures")
	r.RecordFallback("futures", "timeout")
	r.RecordFallback("futures", "timeout")
	r.RecordError("futures")
	r.RecordLastPrice("ES", 5234.5)
	r.RecordLatency("futures", 0.12)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.responses.WithLabelValues("futures", "live")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.responses.WithLabelValues("futures", "fallback")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.fallbacks.WithLabelValues("futures", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("futures")))
	assert.Equal(t, 5234.5, testutil.ToFloat64(r.lastPrice.WithLabelValues("ES")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))
}

func TestRecorderSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
