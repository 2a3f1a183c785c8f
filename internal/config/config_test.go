package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port default: %q", cfg.Port)
	}
	if !strings.Contains(cfg.DatabaseDSN, "postgres://") {
		t.Fatalf("dsn default: %q", cfg.DatabaseDSN)
	}
	if cfg.Env != "development" {
		t.Fatalf("env default: %q", cfg.Env)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DSN", "file:dev.db")
	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port override: %q", cfg.Port)
	}
	if cfg.DatabaseDSN != "file:dev.db" {
		t.Fatalf("dsn override: %q", cfg.DatabaseDSN)
	}
}
