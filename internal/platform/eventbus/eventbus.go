// Package eventbus carries console events over NATS subjects.
//
// Without an external URL the bus runs an embedded, in-process NATS server
// that opens no network ports; with a URL the same subjects cross process
// boundaries so every console replica observes logouts.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/timeouts"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const (
	// SubjectSessionEnded is published when an operator logs out.
	SubjectSessionEnded = "console.session.ended"
	// SubjectVenueCreated is published after the directory acknowledges a new venue.
	SubjectVenueCreated = "console.venue.created"
)

// SessionEnded reports a console session that is no longer valid.
type SessionEnded struct {
	SessionID string    `json:"session_id"`
	AdminID   string    `json:"admin_id,omitempty"`
	EndedAt   time.Time `json:"ended_at"`
}

// VenueCreated reports a venue persisted through the creation wizard.
type VenueCreated struct {
	VenueID   string    `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	ClusterID *int64    `json:"cluster_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Options configures the bus connection.
type Options struct {
	// URL of an external NATS server; empty starts an embedded server.
	URL string
	// Name identifies this client to the server.
	Name string
}

// Bus publishes and subscribes to console event subjects.
type Bus struct {
	nc *nats.Conn
	ns *server.Server
}

// Start connects to the configured NATS server or starts an embedded one.
func Start(opts Options) (*Bus, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = "venuedesk"
	}
	if url := strings.TrimSpace(opts.URL); url != "" {
		nc, err := nats.Connect(url, nats.Name(name))
		if err != nil {
			return nil, fmt.Errorf("connect nats %s: %w", url, err)
		}
		return &Bus{nc: nc}, nil
	}

	ns, err := server.NewServer(&server.Options{
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedded nats: %w", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(timeouts.EventBusReady) {
		ns.Shutdown()
		return nil, errors.New("embedded nats failed to start within timeout")
	}
	nc, err := nats.Connect("", nats.InProcessServer(ns), nats.Name(name))
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connect embedded nats: %w", err)
	}
	return &Bus{nc: nc, ns: ns}, nil
}

// PublishSessionEnded announces a logout.
func (b *Bus) PublishSessionEnded(ctx context.Context, event SessionEnded) error {
	if strings.TrimSpace(event.SessionID) == "" {
		return errors.New("session id is required")
	}
	if event.EndedAt.IsZero() {
		event.EndedAt = time.Now().UTC()
	}
	return b.publish(ctx, SubjectSessionEnded, event)
}

// PublishVenueCreated announces a newly persisted venue.
func (b *Bus) PublishVenueCreated(ctx context.Context, event VenueCreated) error {
	if strings.TrimSpace(event.VenueID) == "" {
		return errors.New("venue id is required")
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	return b.publish(ctx, SubjectVenueCreated, event)
}

// OnSessionEnded registers fn for every session-ended event.
func (b *Bus) OnSessionEnded(fn func(SessionEnded)) (func() error, error) {
	return subscribe(b, SubjectSessionEnded, fn)
}

// OnVenueCreated registers fn for every venue-created event.
func (b *Bus) OnVenueCreated(fn func(VenueCreated)) (func() error, error) {
	return subscribe(b, SubjectVenueCreated, fn)
}

func (b *Bus) publish(ctx context.Context, subject string, payload any) error {
	if b == nil || b.nc == nil {
		return errors.New("event bus is not connected")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", subject, err)
	}
	if err := b.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func subscribe[T any](b *Bus, subject string, fn func(T)) (func() error, error) {
	if b == nil || b.nc == nil {
		return nil, errors.New("event bus is not connected")
	}
	if fn == nil {
		return nil, errors.New("event handler is required")
	}
	sub, err := b.nc.Subscribe(subject, func(msg *nats.Msg) {
		var event T
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("eventbus decode %s: %v", subject, err)
			return
		}
		fn(event)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	return sub.Unsubscribe, nil
}

// Flush waits until the server has processed every published message. A
// context without a deadline is bounded by timeouts.EventBusFlush.
func (b *Bus) Flush(ctx context.Context) error {
	if b == nil || b.nc == nil {
		return errors.New("event bus is not connected")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeouts.EventBusFlush)
		defer cancel()
	}
	return b.nc.FlushWithContext(ctx)
}

// Close drains the connection and stops the embedded server, if any.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}
	if b.nc != nil {
		drained := make(chan error, 1)
		go func() {
			drained <- b.nc.Drain()
		}()
		select {
		case err := <-drained:
			if err != nil {
				log.Printf("eventbus drain failed, closing: %v", err)
				b.nc.Close()
			}
		case <-time.After(timeouts.EventBusDrain):
			log.Printf("eventbus drain timed out, closing")
			b.nc.Close()
		}
	}
	if b.ns != nil {
		b.ns.Shutdown()
		done := make(chan struct{})
		go func() {
			b.ns.WaitForShutdown()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(timeouts.Shutdown):
			return errors.New("embedded nats shutdown timed out")
		}
	}
	return nil
}
