package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayerLevels_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	done     chan struct{}
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	j.done <- struct{}{}
	return nil
}

func waitN(t *testing.T, done <-chan struct{}, n int) {
	t.Helper()
	timeout := time.After(TestJobWaitTimeout * time.Millisecond)
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-timeout:
			t.Fatalf("timed out after %d of %d jobs", i, n)
		}
	}
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed, done: make(chan struct{}, TestQueueSize)}
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))

	waitN(t, job.done, TestExpectedJobRuns)
	assert.Equal(t, int32(TestExpectedJobRuns), atomic.LoadInt32(&executed))
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	done := make(chan struct{}, 1)
	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { panic("host exploded") }))
	pool.Enqueue(JobFunc(func(context.Context) error {
		done <- struct{}{}
		return nil
	}))

	waitN(t, done, 1)
}

func TestPool_StopCancelsContextAndRejects(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	<-started

	pool.Stop()
	pool.Stop()

	select {
	case <-cancelled:
	default:
		t.Fatal("running job did not observe cancellation")
	}
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start()
		done := make(chan struct{}, 1)
		pool.Enqueue(JobFunc(func(context.Context) error {
			done <- struct{}{}
			return nil
		}))
		waitN(t, done, 1)
		pool.Stop()
	})
}
