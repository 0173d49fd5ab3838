package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/eventbus"
	"github.com/louisbranch/venuedesk/internal/platform/timeouts"
	adminstorage "github.com/louisbranch/venuedesk/internal/services/admin/integration/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/integration/venueapi"
	"github.com/louisbranch/venuedesk/internal/services/admin/sessioncookie"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard"
)

// Config defines the inputs for the admin console process.
//
// The console keeps operator accounts and sessions in its own store; the venue
// directory is either that same store or the remote venue API.
type Config struct {
	HTTPAddr    string
	DBDriver    string
	DBPath      string
	PostgresDSN string
	// VenueAPIURL selects the remote directory when set.
	VenueAPIURL   string
	VenueAPIToken string
	// NATSURL connects to a shared bus; empty runs an embedded one.
	NATSURL       string
	SessionSecret string
	WizardTTL     time.Duration
	// AuthConfig enables token-based authentication when set.
	AuthConfig *AuthConfig
}

// Server hosts the admin console and owns its collaborators.
type Server struct {
	httpAddr    string
	httpServer  *http.Server
	store       storage.Store
	bus         *eventbus.Bus
	wizards     *venuewizard.Registry
	unsubscribe func() error
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	cookies, err := sessioncookie.NewCodec(sessionSecret(config.SessionSecret), sessioncookie.DefaultTTL)
	if err != nil {
		return nil, err
	}

	store, err := adminstorage.OpenStore(ctx, adminstorage.Options{
		Driver:      config.DBDriver,
		Path:        config.DBPath,
		PostgresDSN: config.PostgresDSN,
	})
	if err != nil {
		return nil, err
	}

	directory, err := openDirectory(ctx, config, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	bus, err := eventbus.Start(eventbus.Options{URL: config.NATSURL, Name: "venuedesk-admin"})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("start event bus: %w", err)
	}

	wizards := venuewizard.NewRegistry(config.WizardTTL)
	unsubscribe, err := bus.OnSessionEnded(func(event eventbus.SessionEnded) {
		if dropped := wizards.DropSession(event.SessionID); dropped > 0 {
			log.Printf("closed %d wizard runs for ended session %s", dropped, event.SessionID)
		}
	})
	if err != nil {
		_ = bus.Close()
		_ = store.Close()
		return nil, fmt.Errorf("subscribe session ended: %w", err)
	}

	deps := HandlerDeps{
		Directory: directory,
		Admins:    store,
		Sessions:  store,
		Wizards:   wizards,
		Events:    bus,
		Cookies:   cookies,
	}
	if config.AuthConfig != nil {
		deps.LogoutURL = config.AuthConfig.LoginURL
	}
	handler, err := NewHandler(deps)
	if err != nil {
		_ = unsubscribe()
		_ = bus.Close()
		_ = store.Close()
		return nil, err
	}
	if auth := config.AuthConfig; auth != nil && strings.TrimSpace(auth.IntrospectURL) != "" {
		handler = requireAuth(handler, newHTTPIntrospector(auth.IntrospectURL, auth.ResourceSecret), auth.LoginURL)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:    httpAddr,
		httpServer:  httpServer,
		store:       store,
		bus:         bus,
		wizards:     wizards,
		unsubscribe: unsubscribe,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the event bus and the store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.unsubscribe != nil {
		if err := s.unsubscribe(); err != nil {
			log.Printf("unsubscribe session ended: %v", err)
		}
	}
	if s.bus != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), timeouts.EventBusDrain)
		if err := s.bus.Flush(drainCtx); err != nil {
			log.Printf("flush event bus: %v", err)
		}
		cancel()
		if err := s.bus.Close(); err != nil {
			log.Printf("close event bus: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

// openDirectory returns the venue API client when configured, otherwise the
// local store. An unreachable API is retried in the background.
func openDirectory(ctx context.Context, config Config, store storage.Store) (storage.Directory, error) {
	if strings.TrimSpace(config.VenueAPIURL) == "" {
		return store, nil
	}
	client, err := venueapi.New(venueapi.Config{
		BaseURL: config.VenueAPIURL,
		Token:   config.VenueAPIToken,
	})
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		log.Printf("venue api not ready: %v", err)
		go func() {
			if err := client.WaitReady(ctx); err != nil {
				log.Printf("venue api wait: %v", err)
				return
			}
			log.Printf("venue api ready at %s", config.VenueAPIURL)
		}()
	}
	return client, nil
}

// sessionSecret falls back to a per-process secret, which invalidates every
// console session on restart.
func sessionSecret(configured string) string {
	if secret := strings.TrimSpace(configured); secret != "" {
		return secret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("generate session secret: %v", err))
	}
	log.Printf("admin session secret not configured; using a per-process secret")
	return hex.EncodeToString(buf)
}
