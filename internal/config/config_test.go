package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parcel-desk/internal/constants"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`app:
  mode: debug
storage:
  file: /tmp/deliveries.csv
list:
  page_size: 5
pricing:
  unit_price: 80
snapshot:
  enabled: true
  driver: sqlite
  dsn: ./db/test.db
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if !cfg.IsDebug() {
		t.Fatalf("expected debug mode, got %s", cfg.App.Mode)
	}
	if cfg.Storage.File != "/tmp/deliveries.csv" {
		t.Fatalf("unexpected storage file: %s", cfg.Storage.File)
	}
	if cfg.List.PageSize != 5 {
		t.Fatalf("unexpected page size: %d", cfg.List.PageSize)
	}
	if cfg.Pricing.UnitPrice != 80 {
		t.Fatalf("unexpected unit price: %d", cfg.Pricing.UnitPrice)
	}
	if !cfg.Snapshot.Enabled || cfg.Snapshot.DSN != "./db/test.db" {
		t.Fatalf("unexpected snapshot config: %+v", cfg.Snapshot)
	}
}

func TestLoadDefaultsAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("list:\n  page_size: 0\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("DESK_STORAGE_FILE", filepath.Join(dir, "env.csv"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.IsDebug() {
		t.Fatalf("expected release mode by default")
	}
	if cfg.List.PageSize != constants.DefaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.List.PageSize)
	}
	if cfg.Pricing.UnitPrice != constants.DefaultUnitPrice {
		t.Fatalf("expected default unit price, got %d", cfg.Pricing.UnitPrice)
	}
	if cfg.Storage.File != filepath.Join(dir, "env.csv") {
		t.Fatalf("expected env storage file, got %s", cfg.Storage.File)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestResolveTablePathDefaultsNextToExecutable(t *testing.T) {
	got := resolveTablePath("  ")
	if filepath.Base(got) != DefaultTableFilename {
		t.Fatalf("unexpected default table path: %s", got)
	}
}
