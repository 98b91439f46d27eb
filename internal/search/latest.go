// Package search runs list fetches for views whose query can change while a
// fetch is still in flight.
package search

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Run when a newer fetch for the same view was
// started before this one finished.
var ErrSuperseded = errors.New("superseded by a newer request")

// Latest serializes the fetches of one view: starting a fetch cancels the
// previous in-flight one, so only the most recent query can deliver a result.
type Latest[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Run cancels any in-flight fetch, then runs fetch with a fresh context
// derived from ctx. A result from a fetch that was superseded while running
// is discarded and ErrSuperseded is returned instead.
func (l *Latest[T]) Run(ctx context.Context, fetch func(ctx context.Context) (T, error)) (T, error) {
	fetchCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	result, err := fetch(fetchCtx)

	l.mu.Lock()
	current := seq == l.seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()
	cancel()

	if !current {
		var zero T
		return zero, ErrSuperseded
	}
	return result, err
}

// Cancel aborts the in-flight fetch, if any, e.g. when the view is closed.
func (l *Latest[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}
