package admin

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8082" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected default db driver, got %q", cfg.DBDriver)
	}
	if cfg.DBPath != "data/admin.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.WizardTTL != 30*time.Minute {
		t.Fatalf("expected default wizard ttl, got %v", cfg.WizardTTL)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("VENUEDESK_ADMIN_HTTP_ADDR", "env-admin")
	t.Setenv("VENUEDESK_ADMIN_DB_DRIVER", "postgres")
	t.Setenv("VENUEDESK_VENUE_API_URL", "http://env-venues")
	t.Setenv("VENUEDESK_WIZARD_TTL", "5m")

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	args := []string{
		"-http-addr", "flag-admin",
		"-venue-api-url", "http://flag-venues",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected env db driver, got %q", cfg.DBDriver)
	}
	if cfg.VenueAPIURL != "http://flag-venues" {
		t.Fatalf("expected flag venue api url, got %q", cfg.VenueAPIURL)
	}
	if cfg.WizardTTL != 5*time.Minute {
		t.Fatalf("expected env wizard ttl, got %v", cfg.WizardTTL)
	}
}

func TestParseConfigRejectsNonPositiveWizardTTL(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-wizard-ttl", "0s"}); err == nil {
		t.Fatal("expected error for zero wizard ttl")
	}
}

func TestServerConfigEnablesAuthWithIntrospectURL(t *testing.T) {
	t.Parallel()

	if cfg := serverConfig(Config{HTTPAddr: ":1"}); cfg.AuthConfig != nil {
		t.Fatal("expected auth disabled without introspect url")
	}
	cfg := serverConfig(Config{
		HTTPAddr:       ":1",
		IntrospectURL:  "http://auth/introspect",
		ResourceSecret: "secret",
		LoginURL:       "http://auth/login",
	})
	if cfg.AuthConfig == nil || cfg.AuthConfig.LoginURL != "http://auth/login" {
		t.Fatalf("auth config = %+v", cfg.AuthConfig)
	}
}
