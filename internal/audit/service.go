package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Service records admin actions and answers audit queries
type Service interface {
	// Subscribe registers the recorder for every admin action type
	Subscribe(bus event.Bus)

	// List returns one page of matching entries and the total match count
	List(ctx context.Context, filter Filter) ([]Entry, int, error)

	// CleanupOldEntries removes entries older than retentionDays
	CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates the audit service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range domain.AllAdminEventTypes {
		bus.Subscribe(event.Type(eventType), s.handleEvent)
	}
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.ActionPayload(evt)
	if err != nil {
		log.Debug(LogMsgPayloadInvalid, "type", evt.Type)
		return nil
	}

	entry := Entry{
		Action:     payload.Action,
		Actor:      payload.Actor,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Summary:    payload.Summary,
	}
	if payload.Timestamp > 0 {
		entry.CreatedAt = time.Unix(payload.Timestamp, 0).UTC()
	}
	if id, ok := evt.GetMetadataValue(event.MetadataKeyRequestID).(string); ok {
		entry.RequestID = id
	}

	if err := s.repo.Record(ctx, entry); err != nil {
		log.Error(LogMsgRecordFailed, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgRecorded, "type", evt.Type, "actor", entry.Actor)
	return nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]Entry, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Since != nil && filter.Until != nil && filter.Until.Before(*filter.Since) {
		v := domain.NewValidationError()
		v.Add("until", "must not be before since")
		return nil, 0, v
	}

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list audit entries: %v", domain.ErrDatabaseError, err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count audit entries: %v", domain.ErrDatabaseError, err)
	}
	return entries, total, nil
}

func (s *service) CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	return s.repo.DeleteBefore(ctx, cutoff)
}
