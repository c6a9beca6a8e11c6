package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlayerLevels_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	atomic.AddInt32(&m.RunCount, 1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func newPool(t *testing.T) *worker.Pool {
	pool := worker.NewPool(1, 10)
	pool.Start()
	t.Cleanup(pool.Stop)
	return pool
}

func TestScheduler(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_ScheduleAfterWaitsForDelay(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	start := time.Now()
	sched.ScheduleAfter(50*time.Millisecond, time.Hour, job)

	select {
	case <-job.Done:
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for delayed job")
	}
}

func TestScheduler_CancelStopsFutureRuns(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	cancel := sched.ScheduleAfter(time.Hour, time.Hour, job)
	cancel()
	cancel()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&job.RunCount))
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	sched := New(newPool(t))
	sched.Schedule(time.Hour, &MockJob{Done: make(chan struct{}, 1)})

	sched.Stop()
	sched.Stop()
}
