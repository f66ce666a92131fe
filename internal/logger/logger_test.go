package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	// Invalid levels fall back to info instead of failing.
	l := New(cfg, "svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "findcare.log")

	cfg := &Config{
		Level:  "info",
		Format: "json",
		Output: "stdout",
		File:   path,
	}
	l := New(cfg, "svc")
	l.Info("file tee check", map[string]interface{}{"k": "v"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "file tee check") {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), `"k":"v"`) {
		t.Errorf("log file missing field, got: %s", data)
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc").WithComponent("store")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "svc" {
		t.Errorf("component logger lost service name: %q", l.service)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Format)
	}
	if cfg.File != DefaultFilePath {
		t.Errorf("expected default file %q, got %q", DefaultFilePath, cfg.File)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "filter", "matched", 4)
	if m["op"] != "filter" || m["matched"] != 4 {
		t.Errorf("unexpected fields map: %v", m)
	}
	// Odd trailing value is dropped.
	m = Fields("only")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}
