package auth

import (
	"context"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// PurgeJob deletes stored sessions that have expired
type PurgeJob struct {
	service Service
}

// NewPurgeJob creates a session purge job
func NewPurgeJob(service Service) *PurgeJob {
	return &PurgeJob{service: service}
}

func (j *PurgeJob) Name() string { return "session_purge" }

func (j *PurgeJob) Process(ctx context.Context) error {
	n, err := j.service.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgSessionsPurged, "count", n)
	}
	return nil
}
