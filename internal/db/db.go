package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrMigration = errors.New("schema migration failed")

type Config struct {
	ConnString     string
	MigrationsPath string
	// MaxConns caps the pool; zero keeps the pgxpool default.
	MaxConns int32
	// ConnectAttempts is how many times Init tries to reach the database
	// before giving up. The feeder stack usually boots alongside postgres.
	ConnectAttempts int
	RetryDelay      time.Duration
}

// DB is the feeder store: command queue, schedules, telemetry and device
// settings all live in one postgres database.
type DB struct {
	connString     string
	migrationsPath string
	pool           *pgxpool.Pool
}

func Init(ctx context.Context, cfg Config) (*DB, error) {
	const fn = "DB:Init"
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := connect(ctx, poolCfg, max(cfg.ConnectAttempts, 1), cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrStoreUnavailable, err)
	}

	db := &DB{
		pool:           pool,
		connString:     cfg.ConnString,
		migrationsPath: cfg.MigrationsPath,
	}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return db, nil
}

func connect(ctx context.Context, cfg *pgxpool.Config, attempts int, delay time.Duration) (*pgxpool.Pool, error) {
	var err error
	for attempt := 1; ; attempt++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.ConnectConfig(ctx, cfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if attempt >= attempts {
			return nil, err
		}
		slog.WarnContext(ctx, "Database not ready, retrying...", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (db *DB) Migrate(ctx context.Context) error {
	const fn = "DB:Migrate"
	slog.InfoContext(ctx, "Running database migrations...", "path", db.migrationsPath)
	m, err := migrate.New("file://"+db.migrationsPath, db.connString)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigration, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigration, err)
	}
	version, dirty, err := m.Version()
	if err == nil {
		slog.InfoContext(ctx, "Database schema ready", "version", version, "dirty", dirty)
	}
	return nil
}

// Ping reports whether the pool can still reach the database.
func (db *DB) Ping(ctx context.Context) error {
	const fn = "DB:Ping"
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrStoreUnavailable, err)
	}
	return nil
}

func (db *DB) Close() {
	db.pool.Close()
}
