package audit

import (
	"context"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// CleanupJob deletes audit entries past the retention window
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job. A retention of zero or less keeps everything.
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Name identifies the job in logs
func (j *CleanupJob) Name() string { return "audit_cleanup" }

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if j.retentionDays <= 0 {
		log.Debug(LogMsgCleanupDisabled)
		return nil
	}
	log.Info(LogMsgCleanupJobStarting, "retentionDays", j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEntries(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deletedCount", count, "duration", duration)
	return nil
}
