package venuewizard

import (
	"context"
	"strconv"
	"testing"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
)

func newTestRegistry(ttl time.Duration) (*Registry, *time.Time) {
	registry := NewRegistry(ttl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }
	n := 0
	registry.newID = func() (string, error) {
		n++
		return "run-" + strconv.Itoa(n), nil
	}
	return registry, &now
}

func TestRegistryOpenAndGet(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	run, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !run.Wizard.IsOpen() {
		t.Fatal("expected opened wizard")
	}
	got, err := registry.Get("session-1", run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Wizard != run.Wizard {
		t.Fatal("Get returned a different wizard")
	}
}

func TestRegistryRequiresSession(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	if _, err := registry.Open(" ", &memoryStore{}, Props{}); err == nil {
		t.Fatal("expected error for empty session")
	}
}

func TestRegistryIsolatesSessions(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	run, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := registry.Get("session-2", run.ID); platformerrors.CodeOf(err) != platformerrors.CodeNotFound {
		t.Fatalf("cross-session get code = %q, want NOT_FOUND", platformerrors.CodeOf(err))
	}
}

func TestRegistrySingleRunPerSession(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	first, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	second, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if first.Wizard.IsOpen() {
		t.Fatal("previous run still open")
	}
	if _, err := registry.Get("session-1", first.ID); platformerrors.CodeOf(err) != platformerrors.CodeNotFound {
		t.Fatalf("previous run code = %q", platformerrors.CodeOf(err))
	}
	if _, err := registry.Get("session-1", second.ID); err != nil {
		t.Fatalf("Get current run: %v", err)
	}
	if registry.Len() != 1 {
		t.Fatalf("Len = %d, want 1", registry.Len())
	}
}

func TestRegistryExpiresIdleRuns(t *testing.T) {
	t.Parallel()

	registry, now := newTestRegistry(time.Hour)
	run, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	*now = now.Add(50 * time.Minute)
	if _, err := registry.Get("session-1", run.ID); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	*now = now.Add(61 * time.Minute)
	if _, err := registry.Get("session-1", run.ID); platformerrors.CodeOf(err) != platformerrors.CodeNotFound {
		t.Fatalf("expired run code = %q", platformerrors.CodeOf(err))
	}
	if run.Wizard.IsOpen() {
		t.Fatal("expired wizard still open")
	}
	if registry.Len() != 0 {
		t.Fatalf("Len = %d, want 0", registry.Len())
	}
}

func TestRegistryDropSession(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	run, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	other, err := registry.Open("session-2", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, _, err := run.Wizard.SubmitVenue(context.Background(), validForm()); err != nil {
		t.Fatalf("SubmitVenue: %v", err)
	}

	if dropped := registry.DropSession("session-1"); dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if run.Wizard.IsOpen() || run.Wizard.State().Step() != StepVenueDetails {
		t.Fatalf("dropped wizard not reset: open=%v step=%v", run.Wizard.IsOpen(), run.Wizard.State().Step())
	}
	if _, err := registry.Get("session-2", other.ID); err != nil {
		t.Fatalf("other session run: %v", err)
	}
	if dropped := registry.DropSession("session-1"); dropped != 0 {
		t.Fatalf("second drop = %d, want 0", dropped)
	}
}

func TestRegistryClose(t *testing.T) {
	t.Parallel()

	registry, _ := newTestRegistry(time.Hour)
	run, err := registry.Open("session-1", &memoryStore{}, Props{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := registry.Close("session-2", run.ID); platformerrors.CodeOf(err) != platformerrors.CodeNotFound {
		t.Fatalf("foreign close code = %q", platformerrors.CodeOf(err))
	}
	if err := registry.Close("session-1", run.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if run.Wizard.IsOpen() || registry.Len() != 0 {
		t.Fatal("run not closed")
	}
}
