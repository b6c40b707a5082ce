package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "futures:ES", Key("futures", "ES"))
	assert.Equal(t, "news:general:3", Key("news", "general", 3))
}

func TestMemoryRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", payload{"ES", 5657.75}, time.Minute))
	var got payload
	require.NoError(t, mc.Get(ctx, "a", &got))
	assert.Equal(t, payload{"ES", 5657.75}, got)

	ok, _ := mc.Exists(ctx, "a")
	assert.True(t, ok)
	require.NoError(t, mc.Delete(ctx, "a"))
	assert.ErrorIs(t, mc.Get(ctx, "a", &got), ErrCacheMiss)
}

func TestMemoryExpiry(t *testing.T) {
	mc := NewMemoryCache(WithMemoryCleanup(0))
	defer mc.Close()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", "v", time.Second))
	now = now.Add(2 * time.Second)
	var s string
	assert.ErrorIs(t, mc.Get(ctx, "k", &s), ErrCacheMiss)
	assert.Equal(t, 0, mc.Len())
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2), WithMemoryCleanup(0))
	defer mc.Close()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { return now }
	ctx := context.Background()

	_ = mc.Set(ctx, "a", "1", time.Hour)
	now = now.Add(time.Second)
	_ = mc.Set(ctx, "b", "2", time.Hour)
	now = now.Add(time.Second)
	var s string
	require.NoError(t, mc.Get(ctx, "a", &s))
	now = now.Add(time.Second)
	_ = mc.Set(ctx, "c", "3", time.Hour)

	assert.NoError(t, mc.Get(ctx, "a", &s))
	assert.ErrorIs(t, mc.Get(ctx, "b", &s), ErrCacheMiss)
	assert.NoError(t, mc.Get(ctx, "c", &s))
}

func TestMemoryValuesAreCopies(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()
	in := []float64{1, 2}
	require.NoError(t, mc.Set(ctx, "s", in, 0))
	in[0] = 99
	var out []float64
	require.NoError(t, mc.Get(ctx, "s", &out))
	assert.Equal(t, []float64{1, 2}, out)
}

func TestRedisGetSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rc := NewRedisCacheFromClient(db, "findash")
	ctx := context.Background()

	mock.ExpectSet("findash:futures:ES", []byte(`{"symbol":"ES","price":1}`), time.Minute).SetVal("OK")
	require.NoError(t, rc.Set(ctx, "futures:ES", payload{"ES", 1}, time.Minute))

	mock.ExpectGet("findash:futures:ES").SetVal(`{"symbol":"ES","price":1}`)
	var got payload
	require.NoError(t, rc.Get(ctx, "futures:ES", &got))
	assert.Equal(t, "ES", got.Symbol)

	mock.ExpectGet("findash:missing").RedisNil()
	assert.ErrorIs(t, rc.Get(ctx, "missing", &got), ErrCacheMiss)

	boom := errors.New("connection reset")
	mock.ExpectGet("findash:broken").SetErr(boom)
	assert.ErrorIs(t, rc.Get(ctx, "broken", &got), boom)

	mock.ExpectExists("findash:futures:ES").SetVal(1)
	ok, err := rc.Exists(ctx, "futures:ES")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectUnlink("findash:futures:ES").SetVal(1)
	require.NoError(t, rc.Delete(ctx, "futures:ES"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayeredPromotesFromRemote(t *testing.T) {
	db, mock := redismock.NewClientMock()
	lc := NewLayeredCache(NewRedisCacheFromClient(db, ""), WithLayeredMemoryTTL(time.Minute))
	ctx := context.Background()

	mock.ExpectGet("k").SetVal(`{"symbol":"GC","price":2650}`)
	var got payload
	require.NoError(t, lc.Get(ctx, "k", &got))
	assert.Equal(t, 2650.0, got.Price)

	// second read is served from memory; no further Redis expectation
	got = payload{}
	require.NoError(t, lc.Get(ctx, "k", &got))
	assert.Equal(t, "GC", got.Symbol)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayeredWriteThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	lc := NewLayeredCache(NewRedisCacheFromClient(db, ""))
	ctx := context.Background()

	mock.ExpectSet("k", []byte("v"), 10*time.Second).SetErr(errors.New("readonly"))
	assert.Error(t, lc.Set(ctx, "k", "v", 10*time.Second))

	var s string
	mock.ExpectGet("k").RedisNil()
	assert.ErrorIs(t, lc.Get(ctx, "k", &s), ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}
