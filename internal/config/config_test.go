package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestReadConfig_Environment(t *testing.T) {
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_456")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_789")
	t.Setenv("WIKI_DB_URL", "file:test.db")
	t.Setenv("WIKI_PORT", "9090")
	t.Setenv("WIKI_SESSION_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("WIKI_ALLOWED_ORIGINS", "https://a.example.org,https://b.example.org")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Stripe.PublishableKey != "pk_test_123" {
		t.Errorf("expected publishable key pk_test_123, got %q", cfg.Stripe.PublishableKey)
	}
	if cfg.Stripe.SecretKey.Reveal() != "sk_test_456" {
		t.Errorf("unexpected secret key %q", cfg.Stripe.SecretKey.Reveal())
	}
	if cfg.Stripe.WebhookSecret.Reveal() != "whsec_789" {
		t.Errorf("unexpected webhook secret %q", cfg.Stripe.WebhookSecret.Reveal())
	}
	if cfg.DbUrl != "file:test.db" {
		t.Errorf("expected db url file:test.db, got %q", cfg.DbUrl)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.org" {
		t.Errorf("unexpected allowed origins %v", cfg.AllowedOrigins)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("unexpected address %q", cfg.Addr())
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.MigrationsFolder != "migrations" {
		t.Errorf("unexpected migrations folder %q", cfg.MigrationsFolder)
	}
	if l := len(cfg.SessionKey.Reveal()); l != SessionKeyLen {
		t.Errorf("expected a generated session key of %d bytes, got %d", SessionKeyLen, l)
	}
}

func TestReadConfig_BadSessionKey(t *testing.T) {
	t.Setenv("WIKI_SESSION_KEY", "short")

	_, err := ReadConfig()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected %q, got %v", ErrInvalidConfig, err)
	}
}

func TestSecret_Redacted(t *testing.T) {
	s := Secret("sk_live_abcdef")

	for _, got := range []string{
		s.String(),
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%v", Stripe{SecretKey: s}),
	} {
		if got == "" || strings.Contains(got, "sk_live_abcdef") {
			t.Errorf("secret leaked: %q", got)
		}
	}

	if Secret("").String() != "" {
		t.Error("an empty secret should format as an empty string")
	}
}
