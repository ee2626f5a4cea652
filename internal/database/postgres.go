package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bigrusstattoo/studio/internal/config"
)

const (
	connectMaxRetries = 3
	connectRetryDelay = 2 * time.Second
)

// PostgresDB wraps a pgx connection pool with lifecycle helpers.
// It is created once at startup and closed on shutdown.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgres connects to PostgreSQL with retries and verifies the
// connection with a ping before returning.
func NewPostgres(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresDB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.ConnMaxIdleTime
	}

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		if attempt == connectMaxRetries {
			return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectMaxRetries, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}

	return &PostgresDB{Pool: pool}, nil
}

// Ping verifies the database connection is alive
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close releases the connection pool
func (db *PostgresDB) Close() {
	db.Pool.Close()
}
