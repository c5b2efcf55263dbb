package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PromoAdmin_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func TestPoolConfig(t *testing.T) {
	t.Run("applies limits and tags connections", func(t *testing.T) {
		cfg, err := poolConfig("postgres://u:p@localhost:5432/admin", 8, time.Minute, 10*time.Minute)
		require.NoError(t, err)

		assert.Equal(t, int32(8), cfg.MaxConns)
		assert.Equal(t, int32(DefaultMinConnections), cfg.MinConns)
		assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
		assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
		assert.Equal(t, ApplicationName, cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName])
	})

	t.Run("single connection pool", func(t *testing.T) {
		cfg, err := poolConfig("postgres://u:p@localhost:5432/admin", 1, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(1), cfg.MinConns)
	})

	t.Run("explicit application name wins", func(t *testing.T) {
		cfg, err := poolConfig("postgres://u:p@localhost:5432/admin?application_name=setup", 2, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "setup", cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName])
	})

	t.Run("malformed connection string", func(t *testing.T) {
		_, err := poolConfig("://nope", 2, 0, 0)
		assert.ErrorContains(t, err, ErrMsgFailedToParseConnString)
	})
}

func TestPool_TagsSessions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(context.Background(), testDBConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	var name string
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT current_setting('application_name')").Scan(&name))
	assert.Equal(t, ApplicationName, name)
}

// TestPool_ConcurrentAccess checks connections are released under parallel session lookups
func TestPool_ConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(context.Background(), testDBConnString, 10, 1*time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("Worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checker.Check(2)
}
