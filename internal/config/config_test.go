package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != "7860" {
		t.Errorf("unexpected server defaults: %s:%s", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Summary.IntervalSeconds != 60 {
		t.Errorf("expected summary interval 60, got %d", cfg.Summary.IntervalSeconds)
	}
	if cfg.MongoEnabled() {
		t.Error("mongo must be disabled when no URI is configured")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FINDCARE_HOST", "0.0.0.0")
	t.Setenv("FINDCARE_PORT", "9000")
	t.Setenv("FINDCARE_SUMMARY_INTERVAL_SEC", "15")
	t.Setenv("FINDCARE_MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host from env, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected port from env, got %q", cfg.Server.Port)
	}
	if cfg.Summary.IntervalSeconds != 15 {
		t.Errorf("expected interval 15, got %d", cfg.Summary.IntervalSeconds)
	}
	if !cfg.MongoEnabled() {
		t.Error("expected mongo enabled when URI is set")
	}
	if cfg.Mongo.ConnectTimeout != 10 {
		t.Errorf("expected mongo defaults applied, got timeout %d", cfg.Mongo.ConnectTimeout)
	}
}

func TestLoadUnparseablePortIsFatal(t *testing.T) {
	t.Setenv("FINDCARE_PORT", "not-a-port")

	if _, err := Load(""); err == nil {
		t.Fatal("expected unparseable port to fail validation")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("server:\n  host: \"10.0.0.5\"\n  port: \"8088\"\nsummary:\n  interval_seconds: 30\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "10.0.0.5" || cfg.Server.Port != "8088" {
		t.Errorf("unexpected server config: %s:%s", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Summary.IntervalSeconds != 30 {
		t.Errorf("expected interval 30, got %d", cfg.Summary.IntervalSeconds)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
