package mongodb

import (
	"context"
	"testing"

	apperrors "github.com/SkipSnow/FindCare/internal/errors"
	"github.com/SkipSnow/FindCare/internal/logger"
)

func testLog() *logger.Logger { return logger.NewDefault("test") }

func TestNewRejectsEmptyURI(t *testing.T) {
	if _, err := New(Config{URI: "   "}, testLog()); err == nil {
		t.Fatal("expected empty URI to be rejected")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{URI: "mongodb://localhost:27017"}
	cfg.ApplyDefaults()
	if cfg.ConnectTimeout != 10 {
		t.Errorf("expected default connect_timeout 10, got %d", cfg.ConnectTimeout)
	}
	if cfg.Database != "findcare" {
		t.Errorf("expected default database findcare, got %q", cfg.Database)
	}
}

func TestConnectMalformedURI(t *testing.T) {
	_, err := Connect(context.Background(), Config{URI: "not-a-mongodb-uri"}, testLog())
	if err == nil {
		t.Fatal("expected connect to fail for malformed URI")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected an AppError, got %T: %v", err, err)
	}
	if appErr.Code != apperrors.ErrCodeConnectionFailed {
		t.Errorf("expected CONNECTION_FAILED, got %s", appErr.Code)
	}
}

func TestConnectUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network timeout test in short mode")
	}

	cfg := Config{URI: "mongodb://127.0.0.1:1", ConnectTimeout: 1}
	m, err := New(cfg, testLog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = m.Start(context.Background())
	if err == nil {
		t.Fatal("expected start to fail for unreachable server")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeConnectionFailed {
		t.Fatalf("expected CONNECTION_FAILED, got %v", err)
	}

	// No live handle may be left behind after a failed start.
	if _, err := m.Client(context.Background()); err == nil {
		t.Fatal("expected Client to fail after failed start")
	}
}

func TestClientBeforeStart(t *testing.T) {
	m, err := New(Config{URI: "mongodb://localhost:27017"}, testLog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = m.Client(context.Background())
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeConnectionFailed {
		t.Fatalf("expected CONNECTION_FAILED for uninitialized client, got %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	m, err := New(Config{URI: "mongodb://localhost:27017"}, testLog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := m.Close(context.Background()); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}

func TestHealthWhenNotConnected(t *testing.T) {
	m, err := New(Config{URI: "mongodb://localhost:27017"}, testLog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := m.Health(context.Background())
	if h.Status != "unhealthy" {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}
}
