package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens a connection pool and verifies the database answers
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(connString, maxConns, maxIdle, maxLife)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns, "min_conns", cfg.MinConns)
	return pool, nil
}

// poolConfig parses connString and applies the pool limits. The admin panel
// holds only sessions and the audit log, so the pool stays small; connections
// are tagged with ApplicationName so they can be told apart in pg_stat_activity.
func poolConfig(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}
	cfg.MinConns = min(cfg.MaxConns, DefaultMinConnections)
	if maxLife > 0 {
		cfg.MaxConnLifetime = maxLife
	}
	if maxIdle > 0 {
		cfg.MaxConnIdleTime = maxIdle
	}
	if _, set := cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName]; !set {
		cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = ApplicationName
	}
	return cfg, nil
}
