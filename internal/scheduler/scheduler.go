package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/PlayerLevels_Go/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) func() {
	return s.ScheduleAfter(interval, interval, job)
}

// ScheduleAfter runs job first after delay and then every interval until the
// returned cancel func or Stop is called. A zero delay runs it immediately.
func (s *Scheduler) ScheduleAfter(delay, interval time.Duration, job worker.Job) func() {
	cancel := make(chan struct{})
	var once sync.Once

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-cancel:
			return
		case <-s.quit:
			return
		}
		// blocks while the pool queue is full, which delays the next tick
		s.workerPool.Enqueue(job)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-cancel:
				return
			case <-s.quit:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(cancel) }) }
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
