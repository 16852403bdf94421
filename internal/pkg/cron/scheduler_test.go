package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnceExecutesAllJobs(t *testing.T) {
	var first, second atomic.Int32

	s := NewScheduler()
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceStopsAtFirstFailure(t *testing.T) {
	var reached atomic.Bool
	boom := errors.New("boom")

	s := NewScheduler()
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return boom
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		reached.Store(true)
		return nil
	})

	err := s.RunOnce(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.False(t, reached.Load())
}

func TestStartRunsJobImmediatelyAndStopCancels(t *testing.T) {
	ran := make(chan struct{}, 1)

	s := NewScheduler()
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	s := NewScheduler()
	s.AddJob("never", time.Hour, func(ctx context.Context) error { return nil })
	s.Stop()
}

func TestExecutePassesBoundedContext(t *testing.T) {
	var sawDeadline atomic.Bool

	s := NewScheduler()
	s.AddJob("deadline", time.Hour, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		return nil
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, sawDeadline.Load, 2*time.Second, 10*time.Millisecond)
}
