package bootstrap

import (
	"log/slog"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/scheduler"
	"github.com/osse101/PromoAdmin_Go/internal/worker"
)

// BackgroundJobs is the worker pool and the scheduler that feeds it
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// NewBackgroundJobs creates a started worker pool. Scheduled jobs begin once StartSchedules is called.
func NewBackgroundJobs() *BackgroundJobs {
	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize, worker.DefaultJobTimeout)
	pool.Start()
	return &BackgroundJobs{Pool: pool, Scheduler: scheduler.New(pool)}
}

// StartSchedules registers the maintenance jobs and starts ticking.
// Audit cleanup is skipped when retention is zero or negative.
func (b *BackgroundJobs) StartSchedules(auditSvc audit.Service, authSvc auth.Service, retentionDays int) {
	if retentionDays > 0 {
		b.Scheduler.Schedule(AuditCleanupInterval, audit.NewCleanupJob(auditSvc, retentionDays), true)
	}
	b.Scheduler.Schedule(SessionPurgeInterval, auth.NewPurgeJob(authSvc), true)
	b.Scheduler.Start()
	slog.Info(LogMsgBackgroundJobsStarted, "audit_retention_days", retentionDays)
}
