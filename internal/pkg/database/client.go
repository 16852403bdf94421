package database

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Client routes every query through either a real connection pool or
// the fallback querier, resolved exactly once at startup. There is no
// transition between the two modes after process start.
type Client struct {
	pool       *pgxpool.Pool // nil in fallback mode
	querier    Querier
	configured bool
}

// Connect binds to PostgreSQL when a DSN is supplied, and to the
// fallback client otherwise. The caller decides configuredness from
// config.DatabaseConfigured.
func Connect(dsn string, configured bool, settings PoolSettings) (*Client, error) {
	if !configured {
		slog.Warn("database endpoint or access key missing, running in fallback mode: reads return empty, writes fail")
		return &Client{querier: fallbackQuerier{}}, nil
	}

	pool, err := newPool(dsn, settings)
	if err != nil {
		return nil, err
	}
	return &Client{pool: pool, querier: pool, configured: true}, nil
}

// NewFallbackClient returns an unconfigured client. Exposed for tests.
func NewFallbackClient() *Client {
	return &Client{querier: fallbackQuerier{}}
}

// IsConfigured reports which mode the client is bound to.
func (c *Client) IsConfigured() bool {
	return c.configured
}

// Querier returns the active query executor.
func (c *Client) Querier() Querier {
	return c.querier
}

// BeginTx starts a transaction. Unavailable in fallback mode.
func (c *Client) BeginTx(ctx context.Context) (pgx.Tx, error) {
	if !c.configured {
		return nil, ErrBackendNotConfigured
	}
	return c.pool.Begin(ctx)
}

// SetCurrentTenant binds the session-scoped tenant setting used by
// row-level security policies. Failures are logged, never fatal;
// correctness relies on the tenant id parameter threaded through every
// repository query, the session setting is defense in depth.
func (c *Client) SetCurrentTenant(ctx context.Context, tenantID string) {
	if !c.configured {
		slog.Warn("skipping tenant binding, backend not configured", "tenant_id", tenantID)
		return
	}

	if _, err := c.querier.Exec(ctx, `SELECT set_config('app.tenant_id', $1, false)`, tenantID); err != nil {
		slog.Warn("failed to bind tenant setting", "tenant_id", tenantID, "error", err)
	}
}

// Close releases the underlying pool. No-op in fallback mode.
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
