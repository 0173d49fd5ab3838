package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	adminstorage "github.com/louisbranch/venuedesk/internal/services/admin/storage"
	adminpostgres "github.com/louisbranch/venuedesk/internal/services/admin/storage/postgres"
	adminsqlite "github.com/louisbranch/venuedesk/internal/services/admin/storage/sqlite"
)

const (
	// DriverSQLite selects the embedded SQLite store.
	DriverSQLite = "sqlite"
	// DriverPostgres selects the PostgreSQL store.
	DriverPostgres = "postgres"
)

// Options selects and locates the admin store.
type Options struct {
	Driver      string
	Path        string
	PostgresDSN string
}

// OpenStore opens the configured admin store. SQLite parent directories are
// created when needed.
func OpenStore(ctx context.Context, opts Options) (adminstorage.Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		return openSQLite(opts.Path)
	case DriverPostgres:
		store, err := adminpostgres.Open(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open admin postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown admin store driver %q", opts.Driver)
	}
}

func openSQLite(path string) (adminstorage.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
