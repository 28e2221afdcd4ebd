package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("Currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.Billing.DayOverflow != "rollover" {
		t.Errorf("DayOverflow = %q, want rollover", cfg.Billing.DayOverflow)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Appearance.Theme = "terminal"
	cfg.Billing.DayOverflow = "clamp"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "cardwise")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[appearance]\ntheme = \"terminal\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("Currency = %q, want default ₹", cfg.General.Currency)
	}
}

func TestDataDir_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/wallet-data"
	if got := DataDir(cfg); got != "/tmp/wallet-data" {
		t.Errorf("DataDir = %q", got)
	}
}
