package apiclient

import (
	"context"
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

const pathCountdownEvents = "/countdown/events"

// ListCountdownEvents returns every countdown event.
func (c *Client) ListCountdownEvents(ctx context.Context) ([]domain.CountdownEvent, error) {
	var out []domain.CountdownEvent
	if err := c.doJSON(ctx, "countdown.list", http.MethodGet, pathCountdownEvents, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCountdownEvent returns one countdown event.
func (c *Client) GetCountdownEvent(ctx context.Context, id string) (*domain.CountdownEvent, error) {
	var out domain.CountdownEvent
	if err := c.doJSON(ctx, "countdown.get", http.MethodGet, idPath(pathCountdownEvents, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCountdownEvent creates an event and returns the stored copy.
func (c *Client) CreateCountdownEvent(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	var out domain.CountdownEvent
	if err := c.doJSON(ctx, "countdown.create", http.MethodPost, pathCountdownEvents, nil, evt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCountdownEvent replaces the whole event.
func (c *Client) UpdateCountdownEvent(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	var out domain.CountdownEvent
	if err := c.doJSON(ctx, "countdown.update", http.MethodPut, idPath(pathCountdownEvents, id), nil, evt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCountdownEvent removes an event.
func (c *Client) DeleteCountdownEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, "countdown.delete", http.MethodDelete, idPath(pathCountdownEvents, id), nil, nil, nil)
}
