package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

func TestAuditRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	repo := NewAuditRepository(pool)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	entries := []audit.Entry{
		{Action: domain.EventTypeCountdownCreated, Actor: "alice", EntityType: domain.EntityCountdownEvent, EntityID: "c1", CreatedAt: base},
		{Action: domain.EventTypeCountdownDeleted, Actor: "alice", EntityType: domain.EntityCountdownEvent, EntityID: "c1", RequestID: "r-2", CreatedAt: base.Add(time.Hour)},
		{Action: domain.EventTypeImageUploaded, Actor: "bob", EntityType: domain.EntityImage, EntityID: "i1", Summary: "banner.png", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Record(ctx, e))
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.List(ctx, audit.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, domain.EventTypeImageUploaded, got[0].Action)
		assert.Equal(t, "banner.png", got[0].Summary)
		assert.Equal(t, "r-2", got[1].RequestID)
		assert.Empty(t, got[2].RequestID)
	})

	t.Run("filters", func(t *testing.T) {
		got, err := repo.List(ctx, audit.Filter{Actor: "alice", Action: domain.EventTypeCountdownDeleted})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].EntityID)

		since := base.Add(30 * time.Minute)
		n, err := repo.Count(ctx, audit.Filter{Since: &since})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repo.Count(ctx, audit.Filter{EntityType: domain.EntityImage})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := repo.List(ctx, audit.Filter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.EventTypeCountdownDeleted, got[0].Action)

		n, err := repo.Count(ctx, audit.Filter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, n, "count ignores paging")
	})

	t.Run("zero created_at defaults to now", func(t *testing.T) {
		require.NoError(t, repo.Record(ctx, audit.Entry{Action: domain.EventTypeAdminLogin, Actor: "carol", EntityType: domain.EntitySession}))
		got, err := repo.List(ctx, audit.Filter{Actor: "carol"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.WithinDuration(t, time.Now(), got[0].CreatedAt, time.Minute)
	})

	t.Run("delete before cutoff", func(t *testing.T) {
		n, err := repo.DeleteBefore(ctx, base.Add(90*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		remaining, err := repo.Count(ctx, audit.Filter{})
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})
}
