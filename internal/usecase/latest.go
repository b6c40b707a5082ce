package usecase

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Latest.Do when a newer request started
// before the guarded call finished.
var ErrSuperseded = errors.New("request superseded")

// Ticket identifies one request generation.
type Ticket uint64

// Latest lets only the most recent request publish its result. Begin
// cancels the previous request's context and issues a new generation.
// The zero value is ready to use.
type Latest struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func (l *Latest) Begin(ctx context.Context) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	l.cancel = cancel
	return ctx, Ticket(l.gen)
}

// Current reports whether t is still the newest generation.
func (l *Latest) Current(t Ticket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(t) == l.gen
}

// End releases t's context if t is still current.
func (l *Latest) End(t Ticket) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if uint64(t) == l.gen && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Stop cancels whatever is in flight and invalidates every issued ticket.
func (l *Latest) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

// Do runs fn as a new generation. fn's result must only be applied when Do
// returns nil; ErrSuperseded means a later call has taken over.
func (l *Latest) Do(ctx context.Context, fn func(context.Context) error) error {
	ctx, t := l.Begin(ctx)
	err := fn(ctx)
	if !l.Current(t) {
		return ErrSuperseded
	}
	l.End(t)
	return err
}
