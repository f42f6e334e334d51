package database

import (
	"context"
	"fmt"
	"sync"

	"onboarding/internal/config"
	"onboarding/internal/platform/database/postgres"
	"onboarding/internal/platform/logger"
)

// ConnectHook runs against a fresh pool before it is handed out, typically to
// create the schema.
type ConnectHook func(ctx context.Context, db *postgres.DB) error

// Opener builds a pool from configuration without touching the network.
type Opener func(cfg postgres.Config) (*postgres.DB, error)

type Option func(*Lifecycle)

func WithOpener(open Opener) Option {
	return func(l *Lifecycle) {
		l.open = open
	}
}

// Lifecycle owns the registration database pool between fx start and stop.
type Lifecycle struct {
	cfg   *config.DatabaseConfig
	log   logger.Logger
	open  Opener
	mu    sync.Mutex
	db    *postgres.DB
	hooks []ConnectHook
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger, opts ...Option) *Lifecycle {
	l := &Lifecycle{cfg: cfg, log: log, open: postgres.New}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnConnect registers a hook for every later Start. Hooks run in order; the
// first failure closes the pool and fails Start.
func (l *Lifecycle) OnConnect(hook ConnectHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, hook)
}

// Start replaces any existing pool with a verified one.
func (l *Lifecycle) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		l.log.Warn("Replacing open registration database pool")
		l.release(l.db, "replaced")
		l.db = nil
	}

	db, err := l.connect(ctx)
	if err != nil {
		l.log.Error("Registration database unavailable", logger.Error(err))
		return err
	}

	l.db = db
	l.log.Info("Connected to registration database",
		logger.String("host", l.cfg.Postgres.Host),
		logger.String("database", l.cfg.Postgres.Database),
		logger.Int("hooks", len(l.hooks)))
	return nil
}

func (l *Lifecycle) connect(ctx context.Context) (*postgres.DB, error) {
	db, err := l.open(&l.cfg.Postgres)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		l.release(db, "ping failed")
		return nil, fmt.Errorf("ping registration database: %w", err)
	}

	for i, hook := range l.hooks {
		if err := hook(ctx, db); err != nil {
			l.release(db, "connect hook failed")
			return nil, fmt.Errorf("connect hook %d: %w", i, err)
		}
	}
	return db, nil
}

func (l *Lifecycle) release(db *postgres.DB, reason string) {
	if err := db.Close(); err != nil {
		l.log.Error("Failed to close registration database pool",
			logger.String("reason", reason),
			logger.Error(err))
	}
}

// Stop closes the pool. When ctx ends first the pool is dropped and closes in
// the background.
func (l *Lifecycle) Stop(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	db := l.db
	if db == nil {
		return nil
	}
	l.db = nil

	done := make(chan error, 1)
	go func() {
		done <- db.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			l.log.Error("Error closing registration database pool", logger.Error(err))
			return err
		}
		l.log.Info("Registration database pool closed")
		return nil
	case <-ctx.Done():
		l.log.Warn("Registration database close timed out")
		return ctx.Err()
	}
}

// Connection returns the current pool, or nil outside Start and Stop.
func (l *Lifecycle) Connection() *postgres.DB {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db
}
