package admin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/eventbus"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard"
)

// TestListenAndServeNilServer verifies nil server returns an error.
func TestListenAndServeNilServer(t *testing.T) {
	var s *Server
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

// TestNewServerRequiresHTTPAddr ensures a blank HTTP address fails fast.
func TestNewServerRequiresHTTPAddr(t *testing.T) {
	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty HTTP address")
	}
}

func TestNewServerRejectsUnknownDriver(t *testing.T) {
	_, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", DBDriver: "mysql"})
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNewServerRejectsInvalidVenueAPIURL(t *testing.T) {
	_, err := NewServer(context.Background(), Config{
		HTTPAddr:    "127.0.0.1:0",
		DBPath:      filepath.Join(t.TempDir(), "admin.db"),
		VenueAPIURL: "not a url",
	})
	if err == nil {
		t.Fatal("expected error for invalid venue api url")
	}
}

// TestListenAndServeStopsOnCancel verifies the server exits on context cancel.
func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := NewServer(ctx, Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "admin.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe(ctx)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}

func TestServerDropsWizardsWhenSessionEnds(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(ctx, Config{
		HTTPAddr:      "127.0.0.1:0",
		DBPath:        filepath.Join(t.TempDir(), "admin.db"),
		SessionSecret: "0123456789abcdef0123456789abcdef",
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	if _, err := server.wizards.Open("session-1", server.store, venuewizard.Props{}); err != nil {
		t.Fatalf("open wizard: %v", err)
	}
	if _, err := server.wizards.Open("session-2", server.store, venuewizard.Props{}); err != nil {
		t.Fatalf("open wizard: %v", err)
	}

	err = server.bus.PublishSessionEnded(ctx, eventbus.SessionEnded{SessionID: "session-1", EndedAt: time.Now()})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for server.wizards.Len() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("wizard runs = %d, want 1", server.wizards.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServerCloseNilSafe(t *testing.T) {
	var s *Server
	s.Close()
}
