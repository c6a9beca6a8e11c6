package local

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PlayerLevels_Go/internal/host"
	"github.com/osse101/PlayerLevels_Go/internal/logger"
	"github.com/osse101/PlayerLevels_Go/internal/scheduler"
	"github.com/osse101/PlayerLevels_Go/internal/worker"
)

// Log messages
const (
	LogMsgMainLoopPanicked = "Main loop task panicked"
	LogMsgMainLoopStopped  = "Main loop task dropped, runtime stopped"
)

// Runtime implements host.Scheduler: async work runs on a worker pool,
// repeating work on a ticker scheduler, and sync work on one main-loop goroutine.
type Runtime struct {
	pool     *worker.Pool
	sched    *scheduler.Scheduler
	mainLoop chan func()

	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
	workersOnce sync.Once
	stopOnce    sync.Once
}

// NewRuntime starts the worker pool and the main loop
func NewRuntime(workers, queueSize int) *Runtime {
	pool := worker.NewPool(workers, queueSize)
	pool.Start()

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runtime{
		pool:     pool,
		sched:    scheduler.New(pool),
		mainLoop: make(chan func(), queueSize),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Runtime) loop() {
	defer close(r.done)
	for {
		select {
		case task := <-r.mainLoop:
			r.runMain(task)
		case <-r.ctx.Done():
			// drain what was already queued so replies are not lost
			for {
				select {
				case task := <-r.mainLoop:
					r.runMain(task)
				default:
					return
				}
			}
		}
	}
}

func (r *Runtime) runMain(task func()) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(r.ctx).Error(LogMsgMainLoopPanicked, "panic", rec)
		}
	}()
	task()
}

// RunAsync implements host.Scheduler
func (r *Runtime) RunAsync(task host.Task) {
	r.pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
		task(ctx)
		return nil
	}))
}

// RunRepeatingAsync implements host.Scheduler
func (r *Runtime) RunRepeatingAsync(delay, interval time.Duration, task host.Task) func() {
	return r.sched.ScheduleAfter(delay, interval, worker.JobFunc(func(ctx context.Context) error {
		task(ctx)
		return nil
	}))
}

// RunSync implements host.Scheduler
func (r *Runtime) RunSync(task func()) {
	select {
	case <-r.ctx.Done():
		logger.FromContext(r.ctx).Warn(LogMsgMainLoopStopped)
		return
	default:
	}
	select {
	case r.mainLoop <- task:
	case <-r.ctx.Done():
		logger.FromContext(r.ctx).Warn(LogMsgMainLoopStopped)
	}
}

// Call runs task on the main loop and waits for it to finish
func (r *Runtime) Call(task func()) {
	done := make(chan struct{})
	r.RunSync(func() {
		defer close(done)
		task()
	})
	select {
	case <-done:
	case <-r.done:
	}
}

// StopWorkers halts repeating tasks and waits for running async tasks.
// The main loop keeps accepting sync work until Stop.
func (r *Runtime) StopWorkers() {
	r.workersOnce.Do(func() {
		r.sched.Stop()
		r.pool.Stop()
	})
}

// Stop halts repeating tasks, the workers and finally the main loop
func (r *Runtime) Stop() {
	r.stopOnce.Do(func() {
		r.StopWorkers()
		r.cancel()
		<-r.done
	})
}

// Immediate is a host.Scheduler that runs everything inline on the caller.
// Repeating tasks run once immediately and never again.
type Immediate struct{}

// RunAsync implements host.Scheduler
func (Immediate) RunAsync(task host.Task) { task(context.Background()) }

// RunRepeatingAsync implements host.Scheduler
func (Immediate) RunRepeatingAsync(_, _ time.Duration, task host.Task) func() {
	task(context.Background())
	return func() {}
}

// RunSync implements host.Scheduler
func (Immediate) RunSync(task func()) { task() }
