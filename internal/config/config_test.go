package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/repo"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 5000 {
			t.Errorf("Load() port = %v, want 5000", cfg.Port)
		}
		if cfg.Upstream.URL != repo.DefaultUpstreamURL {
			t.Errorf("Load() upstream url = %q, want %q", cfg.Upstream.URL, repo.DefaultUpstreamURL)
		}
		if cfg.Upstream.Timeout != 10*time.Second {
			t.Errorf("Load() upstream timeout = %v, want 10s", cfg.Upstream.Timeout)
		}
		if cfg.Upstream.MaxBodyBytes != repo.DefaultMaxBodyBytes {
			t.Errorf("Load() upstream max body = %d, want %d", cfg.Upstream.MaxBodyBytes, repo.DefaultMaxBodyBytes)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
			t.Errorf("Load() log = %+v, want info/json", cfg.Log)
		}
		if cfg.Tracing.Enabled {
			t.Error("Load() tracing should be disabled by default")
		}
		if cfg.Addr() != ":5000" {
			t.Errorf("Addr() = %q, want :5000", cfg.Addr())
		}
	})

	t.Run("env var overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("UPSTREAM_URL", "http://localhost:9999/products")
		t.Setenv("UPSTREAM_TIMEOUT", "3s")
		t.Setenv("UPSTREAM_MAX_BODY_BYTES", "4096")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("TRACING_ENABLED", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 9000 {
			t.Errorf("Load() port = %v, want 9000", cfg.Port)
		}
		if cfg.Upstream.URL != "http://localhost:9999/products" {
			t.Errorf("Load() upstream url = %q", cfg.Upstream.URL)
		}
		if cfg.Upstream.Timeout != 3*time.Second {
			t.Errorf("Load() upstream timeout = %v, want 3s", cfg.Upstream.Timeout)
		}
		if cfg.Upstream.MaxBodyBytes != 4096 {
			t.Errorf("Load() upstream max body = %d, want 4096", cfg.Upstream.MaxBodyBytes)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Load() log level = %q, want debug", cfg.Log.Level)
		}
		if !cfg.Tracing.Enabled {
			t.Error("Load() tracing should be enabled")
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "proxy.yaml")
		content := "port: 7070\nupstream:\n  timeout: 2s\nlog:\n  format: text\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv("CONFIG_FILE", path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Port != 7070 {
			t.Errorf("Load() port = %v, want 7070", cfg.Port)
		}
		if cfg.Upstream.Timeout != 2*time.Second {
			t.Errorf("Load() upstream timeout = %v, want 2s", cfg.Upstream.Timeout)
		}
		if cfg.Log.Format != "text" {
			t.Errorf("Load() log format = %q, want text", cfg.Log.Format)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := Load(); err == nil {
			t.Fatal("expected error for missing CONFIG_FILE")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for port 70000")
		}
	})

	t.Run("non positive body limit", func(t *testing.T) {
		t.Setenv("UPSTREAM_MAX_BODY_BYTES", "0")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for upstream.max_body_bytes 0")
		}
	})
}
