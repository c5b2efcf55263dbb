package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(api API, repo Repository, bus event.Bus) *service {
	svc := NewService(api, repo, time.Hour, CacheConfig{Size: 16, TTL: time.Minute}, event.NewPublisher(bus)).(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func loginResult() *domain.LoginResult {
	return &domain.LoginResult{
		Token: "bearer-abc",
		User:  domain.AdminUser{ID: "u1", Username: "alice", Role: "admin"},
	}
}

func TestLogin_Success(t *testing.T) {
	api := new(MockAPI)
	repo := NewMemoryRepository()
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.Type(domain.EventTypeAdminLogin), func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	api.On("Login", mock.Anything, "alice", "secret").Return(loginResult(), nil)

	svc := newTestService(api, repo, bus)
	session, err := svc.Login(context.Background(), "  alice ", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "bearer-abc", session.Token)
	assert.Equal(t, testNow.Add(time.Hour), session.ExpiresAt)

	stored, err := repo.GetSession(context.Background(), hashSessionID(session.ID))
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.User.Username)

	_, err = repo.GetSession(context.Background(), session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "raw session ids are never stored")

	require.Len(t, published, 1)
	payload := published[0].Payload.(event.AdminActionPayloadV1)
	assert.Equal(t, "alice", payload.Actor)
}

func TestLogin_GeneratesDistinctIDs(t *testing.T) {
	api := new(MockAPI)
	api.On("Login", mock.Anything, "alice", "secret").Return(loginResult(), nil)
	svc := newTestService(api, NewMemoryRepository(), nil)

	a, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	b, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLogin_MissingFields(t *testing.T) {
	api := new(MockAPI)
	svc := newTestService(api, NewMemoryRepository(), nil)

	_, err := svc.Login(context.Background(), " ", "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	api := new(MockAPI)
	repo := new(MockRepository)
	api.On("Login", mock.Anything, "alice", "wrong").Return(nil, domain.ErrInvalidCredentials)
	svc := newTestService(api, repo, nil)

	_, err := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
}

func TestLogin_SaveFails(t *testing.T) {
	api := new(MockAPI)
	repo := new(MockRepository)
	api.On("Login", mock.Anything, "alice", "secret").Return(loginResult(), nil)
	repo.On("SaveSession", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	svc := newTestService(api, repo, nil)

	_, err := svc.Login(context.Background(), "alice", "secret")

	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestAuthenticate(t *testing.T) {
	api := new(MockAPI)
	api.On("Login", mock.Anything, "alice", "secret").Return(loginResult(), nil)
	repo := NewMemoryRepository()
	svc := newTestService(api, repo, nil)
	ctx := context.Background()

	session, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	t.Run("live session", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, "bearer-abc", got.Token)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("loads from repository after cache miss", func(t *testing.T) {
		svc.cache.Invalidate(hashSessionID(session.ID))
		got, err := svc.Authenticate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.User.Username)
	})

	t.Run("expired session is removed", func(t *testing.T) {
		svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
		defer func() { svc.now = func() time.Time { return testNow } }()

		_, err := svc.Authenticate(ctx, session.ID)
		assert.ErrorIs(t, err, domain.ErrSessionExpired)

		_, err = repo.GetSession(ctx, hashSessionID(session.ID))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAuthenticate_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetSession", mock.Anything, hashSessionID("abc")).Return(nil, errors.New("timeout"))
	svc := newTestService(new(MockAPI), repo, nil)

	_, err := svc.Authenticate(context.Background(), "abc")

	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	api := new(MockAPI)
	api.On("Login", mock.Anything, "alice", "secret").Return(loginResult(), nil)
	bus := event.NewMemoryBus()
	var actors []string
	bus.Subscribe(event.Type(domain.EventTypeAdminLogout), func(_ context.Context, e event.Event) error {
		actors = append(actors, e.Payload.(event.AdminActionPayloadV1).Actor)
		return nil
	})
	svc := newTestService(api, NewMemoryRepository(), bus)
	ctx := context.Background()

	session, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.ID))

	_, err = svc.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, []string{"alice"}, actors)

	assert.NoError(t, svc.Logout(ctx, ""), "logging out without a session is a no-op")
}

func TestPurgeExpired(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteExpiredSessions", mock.Anything, testNow).Return(int64(3), nil)
	svc := newTestService(new(MockAPI), repo, nil)

	n, err := svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	repo.AssertExpectations(t)
}
