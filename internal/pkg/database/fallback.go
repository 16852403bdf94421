package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrBackendNotConfigured is returned by every mutating operation when
// the process started without DB_ENDPOINT / DB_ACCESS_KEY. Reads never
// return it; they degrade to empty result sets so the UI can render.
var ErrBackendNotConfigured = errors.New("backend not configured: DB_ENDPOINT and DB_ACCESS_KEY are required for write operations")

// fallbackQuerier is the no-op stand-in used when the backend is unset.
// It discriminates reads from writes by the leading SQL verb so the
// repositories work unchanged in both modes:
//   - Query (list reads)       -> empty row set, nil error
//   - QueryRow on a read       -> Scan yields pgx.ErrNoRows
//   - Exec / mutating QueryRow -> ErrBackendNotConfigured
type fallbackQuerier struct{}

func (fallbackQuerier) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrBackendNotConfigured
}

func (fallbackQuerier) Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error) {
	if isReadStatement(sql) {
		return emptyRows{}, nil
	}
	return nil, ErrBackendNotConfigured
}

func (fallbackQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if isReadStatement(sql) {
		return errRow{err: pgx.ErrNoRows}
	}
	return errRow{err: ErrBackendNotConfigured}
}

func isReadStatement(sql string) bool {
	trimmed := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(trimmed, "SELECT") || strings.HasPrefix(trimmed, "WITH")
}

// emptyRows satisfies pgx.Rows with zero rows.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, pgx.ErrNoRows }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// errRow satisfies pgx.Row with a fixed Scan error.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error { return r.err }
