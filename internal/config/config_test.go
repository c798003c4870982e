package config_test

import (
	"testing"

	"github.com/homehandshake/publish-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServiceName != "publish-api" {
		t.Errorf("ServiceName = %q, want publish-api", cfg.ServiceName)
	}
	if cfg.Addr() != ":8084" {
		t.Errorf("Addr() = %q, want :8084", cfg.Addr())
	}
	if cfg.UpstreamTimeout.Seconds() != 30 {
		t.Errorf("UpstreamTimeout = %v, want 30s", cfg.UpstreamTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AGGREGATOR_API_URL", "http://localhost:3000/api")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.AggregatorAPIURL != "http://localhost:3000/api" {
		t.Errorf("AggregatorAPIURL = %q", cfg.AggregatorAPIURL)
	}
}

func TestLoad_AuthValidation(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_ISSUER", "")
	t.Setenv("AUTH_JWKS_URL", "")

	if _, err := config.Load(); err == nil {
		t.Error("Load() should fail when auth is enabled without issuer and JWKS URL")
	}

	t.Setenv("AUTH_ISSUER", "https://issuer.example.com")
	t.Setenv("AUTH_JWKS_URL", "https://issuer.example.com/.well-known/jwks.json")

	if _, err := config.Load(); err != nil {
		t.Errorf("Load() error = %v, want success with issuer and JWKS URL set", err)
	}
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "0s")
	if _, err := config.Load(); err == nil {
		t.Error("Load() should reject a non-positive upstream timeout")
	}
}
