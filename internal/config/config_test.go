package config

import (
	"testing"
	"time"
)

func TestLoadUsesDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.CatalogPath != "config.yaml" {
		t.Fatalf("expected default catalog path, got %s", cfg.CatalogPath)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.DigestWorkers != 4 {
		t.Fatalf("expected default worker count, got %d", cfg.DigestWorkers)
	}
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envDigestWorkers, "8")
	t.Setenv(envHTTPTimeout, "3s")
	t.Setenv(envMetricsOn, "true")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.DigestWorkers != 8 {
		t.Fatalf("expected 8 workers, got %d", cfg.DigestWorkers)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv(envDigestWorkers, "-1")
	t.Setenv(envHTTPTimeout, "soon")

	cfg := Load()

	if cfg.DigestWorkers != 4 {
		t.Fatalf("expected default workers for bad value, got %d", cfg.DigestWorkers)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected default timeout for bad value, got %v", cfg.HTTPTimeout)
	}
}
