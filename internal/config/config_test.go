package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
addr: ":9090"
log_level: debug
tls_cert: /etc/ssl/server.crt
tls_key: /etc/ssl/server.key
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("Level = %v, want debug", cfg.Level())
	}
	if !cfg.TLSEnabled() {
		t.Fatalf("expected TLS enabled")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "log_level: warn\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want default :8080", cfg.Addr)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Fatalf("Level = %v, want warn", cfg.Level())
	}
	if cfg.TLSEnabled() {
		t.Fatalf("TLS should be off by default")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"malformed yaml", "addr: [oops\n"},
		{"bad level", "log_level: loud\n"},
		{"cert without key", "tls_cert: /etc/ssl/server.crt\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tc.contents)); err == nil {
				t.Fatalf("Load should have failed")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load of missing file should fail")
	}
}
