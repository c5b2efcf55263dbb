package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs report their name in logs and metrics
type Named interface {
	Name() string
}

// JobFunc adapts a function to Job
type JobFunc struct {
	JobName string
	Fn      func(ctx context.Context) error
}

func (f JobFunc) Process(ctx context.Context) error { return f.Fn(ctx) }
func (f JobFunc) Name() string                      { return f.JobName }

// JobName returns the job's name, or UnnamedJob
func JobName(job Job) string {
	if n, ok := job.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return UnnamedJob
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	stopOnce   sync.Once
}

// NewPool creates a new worker pool. Each job runs with jobTimeout; zero means DefaultJobTimeout.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	name := JobName(job)
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	start := time.Now()
	err := safeProcess(ctx, job)
	if err != nil {
		metrics.JobRuns.WithLabelValues(name, metrics.OutcomeFailed).Inc()
		log.Error(LogMsgWorkerJobFailed, "job", name, "error", err)
		return
	}
	metrics.JobRuns.WithLabelValues(name, metrics.OutcomeSucceeded).Inc()
	log.Debug(LogMsgWorkerJobCompleted, "job", name, "duration", time.Since(start))
}

// safeProcess turns a panicking job into an error so the worker survives
func safeProcess(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "job", JobName(job), "panic", r)
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job.Process(ctx)
}

// TryEnqueue adds a job without blocking. It reports false when the queue is full or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		metrics.JobRuns.WithLabelValues(JobName(job), metrics.OutcomeSkipped).Inc()
		logger.FromContext(p.ctx).Warn(LogMsgQueueFull, "job", JobName(job))
		return false
	}
}

// Enqueue blocks until the job is queued, ctx is done or the pool stops
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		logger.FromContext(p.ctx).Info(LogMsgPoolStopping)
		p.cancel()
		p.wg.Wait()
	})
}
