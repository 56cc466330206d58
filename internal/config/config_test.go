package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PG.DSN != "postgres://localhost:5432/todos" {
		t.Errorf("unexpected DSN %q", cfg.PG.DSN)
	}
	if cfg.HTTP.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout.Duration() != 10*time.Second {
		t.Errorf("expected default read timeout 10s, got %v", cfg.HTTP.ReadTimeout.Duration())
	}
	if cfg.App.Env != "dev" {
		t.Errorf("expected default env dev, got %q", cfg.App.Env)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the var truly absent.
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoadPortOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/todos")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.HTTP.Port)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
		{`"30s"`, 30 * time.Second},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		if err != nil {
			t.Errorf("parseDuration(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseDuration(""); err == nil {
		t.Error("expected error for empty duration")
	}
	if _, err := parseDuration("banana"); err == nil {
		t.Error("expected error for junk duration")
	}
}
