// Package db provides database connection management for PostgreSQL.
// It uses pgx as the database driver for better performance and features.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"economia/src/infra/config"
	"economia/src/infra/logger"
)

// Querier is the statement surface shared by the pool and a single connection.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Conn is a connection checked out of the pool. It must be released exactly once.
type Conn interface {
	Querier
	Release()
}

// Pool is a bounded set of reusable connections.
type Pool interface {
	Querier
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
	Close()
}

// OpenFunc creates a new pool. It is swapped out in tests.
type OpenFunc func(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (Pool, error)

// Postgres owns the process connection pool.
// It is created once at startup and passed to everything that talks to the database.
type Postgres struct {
	cfg  config.DatabaseConfig
	log  *slog.Logger
	open OpenFunc

	mu   sync.Mutex
	pool Pool
}

// New creates the PostgreSQL handle and its connection pool.
// It validates the connection by pinging the database.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	p := NewWithOpener(cfg, log, openPgxPool)

	pool, err := p.Pool(ctx)
	if err != nil {
		return nil, err
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established",
		"max_conns", cfg.MaxConns,
		"idle_timeout", cfg.IdleTimeout,
		"connect_timeout", cfg.ConnectTimeout,
	)

	return p, nil
}

// NewWithOpener returns an uninitialized handle that builds its pool with open
// on first use.
func NewWithOpener(cfg config.DatabaseConfig, log *slog.Logger, open OpenFunc) *Postgres {
	return &Postgres{
		cfg:  cfg,
		log:  logger.WithComponent(log, "db"),
		open: open,
	}
}

// Pool returns the shared pool, creating it if none exists.
// Repeated calls return the same pool until Close is called.
func (p *Postgres) Pool(ctx context.Context) (Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	pool, err := p.open(ctx, p.cfg, p.log)
	if err != nil {
		return nil, err
	}
	p.pool = pool
	p.log.Info("connection pool created")
	return pool, nil
}

// Close closes the connection pool and returns the handle to its
// uninitialized state. It is a no-op when no pool exists.
func (p *Postgres) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool == nil {
		return
	}
	p.pool.Close()
	p.pool = nil
	p.log.Info("connection pool closed")
}

// Health checks if the database is reachable.
// Returns nil if healthy, error otherwise.
func (p *Postgres) Health(ctx context.Context) error {
	pool, err := p.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

func (p *Postgres) executor(ctx context.Context) (*Executor, error) {
	pool, err := p.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return p.bind(pool), nil
}

func (p *Postgres) bind(q Querier) *Executor {
	return &Executor{q: q, log: p.log, logParams: p.cfg.LogQueryParams}
}

// pgxPool adapts *pgxpool.Pool to Pool.
type pgxPool struct {
	*pgxpool.Pool
}

func (p pgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// PgxPool returns the underlying pgx pool when pool was built by New.
func PgxPool(pool Pool) (*pgxpool.Pool, bool) {
	pp, ok := pool.(pgxPool)
	if !ok {
		return nil, false
	}
	return pp.Pool, true
}

func openPgxPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Apply connection pool settings
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	// Pool-level problems are logged, never fatal.
	poolCfg.ConnConfig.OnNotice = func(_ *pgconn.PgConn, n *pgconn.Notice) {
		log.Warn("postgres notice", "severity", n.Severity, "code", n.Code, "message", n.Message)
	}
	poolCfg.AfterRelease = func(conn *pgx.Conn) bool {
		if conn.IsClosed() {
			log.Error("unexpected connection loss, discarding connection")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return pgxPool{pool}, nil
}
