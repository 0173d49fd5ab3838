package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage/storetest"
)

// testDSNEnv names a disposable PostgreSQL database used by this suite.
const testDSNEnv = "VENUEDESK_TEST_POSTGRES_DSN"

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("expected unique_violation to match")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("expected foreign_key_violation not to match")
	}
	if isUniqueViolation(errors.New("duplicate key")) {
		t.Fatal("expected plain errors not to match")
	}
}

func TestStoreSuite(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv(testDSNEnv))
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}
	storetest.Run(t, func(t *testing.T) storage.Store {
		store, err := Open(context.Background(), dsn)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		if _, err := store.DB().Exec(`TRUNCATE facility_amenities, facility_zones, facilities, amenities, zones,
			venues, clusters, admin_accounts, console_sessions RESTART IDENTITY CASCADE`); err != nil {
			t.Fatalf("reset tables: %v", err)
		}
		t.Cleanup(func() {
			if err := store.Close(); err != nil {
				t.Fatalf("close store: %v", err)
			}
		})
		return store
	})
}
