// Package sqlstore implements the console storage contracts on database/sql.
//
// The SQLite and PostgreSQL packages open their driver, apply their own
// migrations and hand the connection here; queries are written with "?"
// placeholders and rebound per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/storage/sqlmigrate"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
)

// timeFormat is fixed width so text columns sort chronologically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Options tunes driver-specific behavior.
type Options struct {
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool
}

// Store provides a SQL-backed store implementing storage.Store.
type Store struct {
	sqlDB   *sql.DB
	dialect sqlmigrate.Dialect
	opts    Options
}

// New wraps an open, migrated database.
func New(sqlDB *sql.DB, dialect sqlmigrate.Dialect, opts Options) *Store {
	return &Store{sqlDB: sqlDB, dialect: dialect, opts: opts}
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.sqlDB.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.sqlDB.QueryContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.sqlDB.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) txExec(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	_, err := tx.ExecContext(ctx, s.dialect.Rebind(query), args...)
	return err
}

// translate maps driver errors onto storage sentinels.
func (s *Store) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if s.opts.IsUniqueViolation != nil && s.opts.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", storage.ErrAlreadyExists, err)
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeFormat)
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(timeFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}

func int64Ptr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}

var _ storage.Store = (*Store)(nil)
