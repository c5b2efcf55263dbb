package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/worker"
)

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

type entry struct {
	interval time.Duration
	job      worker.Job
	runNow   bool
}

// Scheduler hands jobs to a worker pool at fixed intervals
type Scheduler struct {
	pool    Enqueuer
	entries []entry
	quit    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	stopped bool
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. When runNow is set the job is also queued at Start.
// Jobs registered after Start begin ticking immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{interval: interval, job: job, runNow: runNow}
	s.entries = append(s.entries, e)
	if s.started && !s.stopped {
		s.launch(e)
	}
}

// Start begins ticking every registered job
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.launch(e)
	}
}

func (s *Scheduler) launch(e entry) {
	log := logger.FromContext(context.Background())
	log.Info(LogMsgJobScheduled, "job", worker.JobName(e.job), "interval", e.interval, "runNow", e.runNow)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if e.runNow {
			s.pool.TryEnqueue(e.job)
		}

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// A full queue drops this tick; the next tick tries again.
				s.pool.TryEnqueue(e.job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Jobs already queued are left to the pool.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.quit)
	s.mu.Unlock()

	s.wg.Wait()
}
