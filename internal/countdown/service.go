package countdown

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/validation"
)

// API is the part of the promo API client this package needs
type API interface {
	ListCountdownEvents(ctx context.Context) ([]domain.CountdownEvent, error)
	GetCountdownEvent(ctx context.Context, id string) (*domain.CountdownEvent, error)
	CreateCountdownEvent(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error)
	UpdateCountdownEvent(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error)
	DeleteCountdownEvent(ctx context.Context, id string) error
}

// Service defines countdown event operations
type Service interface {
	List(ctx context.Context) ([]domain.CountdownEvent, error)
	Get(ctx context.Context, id string) (*domain.CountdownEvent, error)
	Create(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error)
	Update(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Import(ctx context.Context, data []byte) (*domain.CountdownEvent, error)
}

type service struct {
	api       API
	schemas   validation.SchemaValidator
	publisher *event.Publisher
}

// NewService creates a new countdown service
func NewService(api API, schemas validation.SchemaValidator, publisher *event.Publisher) Service {
	return &service{
		api:       api,
		schemas:   schemas,
		publisher: publisher,
	}
}

// List returns all events, newest start first
func (s *service) List(ctx context.Context) ([]domain.CountdownEvent, error) {
	events, err := s.api.ListCountdownEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countdown events: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.After(events[j].StartTime)
	})
	return events, nil
}

// Get returns one event with its reward rows normalized to seven days
func (s *service) Get(ctx context.Context, id string) (*domain.CountdownEvent, error) {
	evt, err := s.api.GetCountdownEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load countdown event %s: %w", id, err)
	}
	evt.Rewards = NormalizeRewards(evt.Rewards)
	return evt, nil
}

func (s *service) Create(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	evt = prepare(evt)
	if err := ValidateEvent(evt); err != nil {
		return nil, err
	}

	created, err := s.api.CreateCountdownEvent(ctx, evt)
	if err != nil {
		return nil, fmt.Errorf("failed to create countdown event: %w", err)
	}

	logger.FromContext(ctx).Info("Countdown event created", "id", created.ID, "name", created.Name)
	s.publisher.Publish(ctx, domain.EventTypeCountdownCreated, domain.ActorFromContext(ctx),
		domain.EntityCountdownEvent, created.ID, created.Name)
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	evt = prepare(evt)
	evt.ID = id
	if err := ValidateEvent(evt); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateCountdownEvent(ctx, id, evt)
	if err != nil {
		return nil, fmt.Errorf("failed to update countdown event %s: %w", id, err)
	}

	logger.FromContext(ctx).Info("Countdown event updated", "id", id)
	s.publisher.Publish(ctx, domain.EventTypeCountdownUpdated, domain.ActorFromContext(ctx),
		domain.EntityCountdownEvent, id, updated.Name)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}

	if err := s.api.DeleteCountdownEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete countdown event %s: %w", id, err)
	}

	logger.FromContext(ctx).Info("Countdown event deleted", "id", id)
	s.publisher.Publish(ctx, domain.EventTypeCountdownDeleted, domain.ActorFromContext(ctx),
		domain.EntityCountdownEvent, id, "")
	return nil
}

// Import creates an event from a JSON document checked against the countdown event schema
func (s *service) Import(ctx context.Context, data []byte) (*domain.CountdownEvent, error) {
	if err := s.schemas.ValidateBytes(data, validation.SchemaCountdownEvent); err != nil {
		return nil, err
	}

	var evt domain.CountdownEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	evt.ID = ""

	return s.Create(ctx, evt)
}
