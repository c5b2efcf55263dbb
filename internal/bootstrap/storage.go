package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/config"
	"github.com/osse101/PromoAdmin_Go/internal/database"
	"github.com/osse101/PromoAdmin_Go/internal/database/postgres"
)

// Storage holds the repositories used by the application. Pool is nil when
// the database could not be reached and the in-memory stores are in use.
type Storage struct {
	Pool     *pgxpool.Pool
	Sessions auth.Repository
	Audit    audit.Repository
}

// InitializeStorage connects to Postgres and applies migrations. When the
// database is unreachable the in-memory stores are used instead; a failed
// migration on a reachable database is an error.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, DBConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(connectCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Warn(LogMsgDatabaseUnavailable, "error", err)
		return &Storage{
			Sessions: auth.NewMemoryRepository(),
			Audit:    audit.NewMemoryRepository(audit.DefaultMemoryEntries),
		}, nil
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "name", cfg.DBName)

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	slog.Info(LogMsgMigrationsApplied, "version", applied)

	return &Storage{
		Pool:     pool,
		Sessions: postgres.NewSessionRepository(pool),
		Audit:    postgres.NewAuditRepository(pool),
	}, nil
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
