package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const (
	driverName         = "postgres"
	defaultPingTimeout = 5 * time.Second
)

type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type Config interface {
	DSN() string
	Pool() Pool
	PingTimeout() time.Duration
}

// DB is a tuned *sql.DB. The zero pingTimeout means defaultPingTimeout, so a
// DB built around an existing handle needs no extra setup.
type DB struct {
	*sql.DB
	pingTimeout time.Duration
}

func New(cfg Config) (*DB, error) {
	return open(driverName, cfg)
}

func open(driver string, cfg Config) (*DB, error) {
	sqlDB, err := sql.Open(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pool := cfg.Pool()
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	return &DB{DB: sqlDB, pingTimeout: cfg.PingTimeout()}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	timeout := db.pingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return db.PingContext(ctx)
}
