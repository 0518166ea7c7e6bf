package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev default, got %q", cfg.App.Env)
	}
	if cfg.Agent.Currency != "INR" {
		t.Fatalf("unexpected currency %q", cfg.Agent.Currency)
	}
	if cfg.Agent.ListLimit != 10 || cfg.Agent.HistoryLimit != 5 {
		t.Fatalf("unexpected limits: %d/%d", cfg.Agent.ListLimit, cfg.Agent.HistoryLimit)
	}
	if cfg.Storage.OrdersPath != filepath.Join("data", "orders.json") {
		t.Fatalf("unexpected orders path %q", cfg.Storage.OrdersPath)
	}
}

func TestLoadPathsFollowDataDir(t *testing.T) {
	t.Setenv("NOVA_DATA_DIR", "/var/lib/nova")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.CatalogPath != filepath.Join("/var/lib/nova", "products.json") {
		t.Fatalf("catalog path did not follow data dir: %q", cfg.Storage.CatalogPath)
	}
	if cfg.Storage.WellnessLogPath != filepath.Join("/var/lib/nova", "wellness_log.json") {
		t.Fatalf("wellness path did not follow data dir: %q", cfg.Storage.WellnessLogPath)
	}
}

func TestLoadExplicitPathWins(t *testing.T) {
	t.Setenv("NOVA_DATA_DIR", "/var/lib/nova")
	t.Setenv("NOVA_ORDERS_PATH", "/tmp/orders.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.OrdersPath != "/tmp/orders.json" {
		t.Fatalf("explicit path should win, got %q", cfg.Storage.OrdersPath)
	}
	if cfg.Storage.CatalogPath != filepath.Join("/var/lib/nova", "products.json") {
		t.Fatalf("other paths should still follow data dir: %q", cfg.Storage.CatalogPath)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "Production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
