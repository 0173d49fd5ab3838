package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenStoreCreatesDirectoryAndOpensDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nested", "admin.db")

	store, err := OpenStore(context.Background(), Options{Path: dbPath})
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if store == nil {
		t.Fatal("expected store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenStoreReturnsWrappedErrorWhenDirectoryCreationFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blockingFile := filepath.Join(root, "not-a-dir")
	if err := os.WriteFile(blockingFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	dbPath := filepath.Join(blockingFile, "nested", "admin.db")

	_, err := OpenStore(context.Background(), Options{Driver: DriverSQLite, Path: dbPath})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "create storage dir") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenStoreReturnsWrappedErrorWhenSQLiteOpenFails(t *testing.T) {
	t.Parallel()

	// A directory path makes sqlite open fail deterministically.
	dbPath := t.TempDir()

	_, err := OpenStore(context.Background(), Options{Path: dbPath})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "open admin sqlite store") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := OpenStore(context.Background(), Options{Driver: "mysql"})
	if err == nil || !strings.Contains(err.Error(), "unknown admin store driver") {
		t.Fatalf("err = %v, want unknown driver error", err)
	}
}

func TestOpenStoreWrapsPostgresErrors(t *testing.T) {
	t.Parallel()

	_, err := OpenStore(context.Background(), Options{Driver: DriverPostgres})
	if err == nil || !strings.Contains(err.Error(), "open admin postgres store") {
		t.Fatalf("err = %v, want wrapped postgres error", err)
	}
}
