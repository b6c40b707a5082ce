package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu      sync.Mutex
	topic   string
	batches [][]AggregatedLogEntry
}

func (c *capturePublisher) PublishMessage(_ context.Context, topic string, payload interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topic = topic
	c.batches = append(c.batches, payload.([]AggregatedLogEntry))
	return nil
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Component("futures").Info("served", String("symbol", "ES"), Float64("price", 5657.75), Error(nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "served", entry["message"])
	assert.Equal(t, "futures", entry["component"])
	assert.Equal(t, "ES", entry["symbol"])
	assert.Equal(t, 5657.75, entry["price"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&Config{Level: "warn"}, &buf)
	require.NoError(t, err)
	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInvalidLevel(t *testing.T) {
	_, err := NewWithWriter(&Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCollectorAggregates(t *testing.T) {
	pub := &capturePublisher{}
	l, err := NewWithWriter(&Config{Level: "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 100, Topic: "logs", Publisher: pub})

	for i := 0; i < 3; i++ {
		l.Error("upstream down", String("symbol", "ES"), Error(errors.New("boom")))
	}
	l.RemoveCollector()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.batches, 1)
	require.Len(t, pub.batches[0], 1)
	assert.Equal(t, "logs", pub.topic)
	assert.Equal(t, 3, pub.batches[0][0].Count)
	assert.Equal(t, "boom", pub.batches[0][0].Fields["error"])
}

func TestCollectorThreshold(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 2, Publisher: pub})
	c.AddLog("error", "a", nil, "x.go:1")
	c.AddLog("error", "b", nil, "x.go:2")
	c.Close()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.batches, 1)
	assert.Len(t, pub.batches[0], 2)
}

func TestCollectorWithoutPublisher(t *testing.T) {
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour})
	c.AddLog("warn", "noop", nil, "x.go:1")
	c.Close()
}
