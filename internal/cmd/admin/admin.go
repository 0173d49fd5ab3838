// Package admin parses admin console flags and launches the console.
package admin

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/venuedesk/internal/platform/cmd"
	"github.com/louisbranch/venuedesk/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr      string        `env:"VENUEDESK_ADMIN_HTTP_ADDR" envDefault:":8082"`
	DBDriver      string        `env:"VENUEDESK_ADMIN_DB_DRIVER" envDefault:"sqlite"`
	DBPath        string        `env:"VENUEDESK_ADMIN_DB_PATH" envDefault:"data/admin.db"`
	PostgresDSN   string        `env:"VENUEDESK_ADMIN_POSTGRES_DSN"`
	VenueAPIURL   string        `env:"VENUEDESK_VENUE_API_URL"`
	VenueAPIToken string        `env:"VENUEDESK_VENUE_API_TOKEN"`
	NATSURL       string        `env:"VENUEDESK_NATS_URL"`
	SessionSecret string        `env:"VENUEDESK_SESSION_SECRET"`
	WizardTTL     time.Duration `env:"VENUEDESK_WIZARD_TTL" envDefault:"30m"`

	IntrospectURL  string `env:"VENUEDESK_AUTH_INTROSPECT_URL"`
	ResourceSecret string `env:"VENUEDESK_AUTH_RESOURCE_SECRET"`
	LoginURL       string `env:"VENUEDESK_LOGIN_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "Admin store driver (sqlite or postgres)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.VenueAPIURL, "venue-api-url", cfg.VenueAPIURL, "Venue API base URL; empty uses the local store")
	fs.StringVar(&cfg.NATSURL, "nats-url", cfg.NATSURL, "NATS server URL; empty runs an embedded server")
	fs.DurationVar(&cfg.WizardTTL, "wizard-ttl", cfg.WizardTTL, "Idle lifetime of a venue wizard run")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.WizardTTL <= 0 {
		return Config{}, fmt.Errorf("wizard ttl must be positive, got %v", cfg.WizardTTL)
	}
	return cfg, nil
}

// Run starts the admin console.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, serverConfig(cfg))
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) admin.Config {
	serverCfg := admin.Config{
		HTTPAddr:      cfg.HTTPAddr,
		DBDriver:      cfg.DBDriver,
		DBPath:        cfg.DBPath,
		PostgresDSN:   cfg.PostgresDSN,
		VenueAPIURL:   cfg.VenueAPIURL,
		VenueAPIToken: cfg.VenueAPIToken,
		NATSURL:       cfg.NATSURL,
		SessionSecret: cfg.SessionSecret,
		WizardTTL:     cfg.WizardTTL,
	}
	if strings.TrimSpace(cfg.IntrospectURL) != "" {
		serverCfg.AuthConfig = &admin.AuthConfig{
			IntrospectURL:  cfg.IntrospectURL,
			ResourceSecret: cfg.ResourceSecret,
			LoginURL:       cfg.LoginURL,
		}
	}
	return serverCfg
}
