package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatest_SingleRun(t *testing.T) {
	var l Latest[string]

	got, err := l.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "rooms", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "rooms", got)
}

func TestLatest_NewRunCancelsPrevious(t *testing.T) {
	var l Latest[string]
	started := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		_, err := l.Run(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "stale", ctx.Err()
		})
		firstDone <- err
	}()
	<-started

	got, err := l.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)

	select {
	case err := <-firstDone:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}
}

func TestLatest_SupersededResultIsDiscarded(t *testing.T) {
	var l Latest[int]
	release := make(chan struct{})
	started := make(chan struct{})
	firstDone := make(chan struct {
		v   int
		err error
	}, 1)

	go func() {
		v, err := l.Run(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-release // ignores cancellation on purpose
			return 1, nil
		})
		firstDone <- struct {
			v   int
			err error
		}{v, err}
	}()
	<-started

	got, err := l.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	close(release)
	res := <-firstDone
	assert.ErrorIs(t, res.err, ErrSuperseded)
	assert.Zero(t, res.v)
}

func TestLatest_PropagatesErrors(t *testing.T) {
	var l Latest[string]
	boom := errors.New("db down")

	_, err := l.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestLatest_Cancel(t *testing.T) {
	var l Latest[string]
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := l.Run(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		})
		done <- err
	}()
	<-started
	l.Cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}
}
