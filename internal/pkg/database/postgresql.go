package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// connectTimeout bounds pool creation and the startup ping so a dead
// endpoint fails fast instead of hanging boot.
const connectTimeout = 10 * time.Second

// PoolSettings sizes the pgx connection pool. Zero or negative values
// fall back to defaults sized for a single API instance.
type PoolSettings struct {
	MaxConns int32
	MinConns int32
}

func (s PoolSettings) withDefaults() PoolSettings {
	if s.MaxConns <= 0 {
		s.MaxConns = 25
	}
	if s.MinConns <= 0 {
		s.MinConns = 5
	}
	if s.MinConns > s.MaxConns {
		s.MinConns = s.MaxConns
	}
	return s
}

// newPool opens a pgx pool for dsn and verifies it with a ping.
func newPool(dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	settings = settings.withDefaults()
	cfg.MaxConns = settings.MaxConns
	cfg.MinConns = settings.MinConns

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Querier is the query surface shared by the live pool, transactions,
// and the fallback client. Repositories depend on it, never on the
// pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
