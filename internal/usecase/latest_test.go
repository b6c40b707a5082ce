package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestBeginCancelsPrevious(t *testing.T) {
	var l Latest
	ctx1, t1 := l.Begin(context.Background())
	ctx2, t2 := l.Begin(context.Background())

	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())
	assert.False(t, l.Current(t1))
	assert.True(t, l.Current(t2))

	l.End(t2)
	assert.ErrorIs(t, ctx2.Err(), context.Canceled)
}

func TestLatestDoSuperseded(t *testing.T) {
	var l Latest
	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = l.Do(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := l.Do(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrSuperseded)
}

func TestLatestDoPassesError(t *testing.T) {
	var l Latest
	err := l.Do(context.Background(), func(context.Context) error { return errNetwork })
	assert.ErrorIs(t, err, errNetwork)
}

func TestLatestStop(t *testing.T) {
	var l Latest
	ctx, tk := l.Begin(context.Background())
	l.Stop()
	assert.Error(t, ctx.Err())
	assert.False(t, l.Current(tk))
}
