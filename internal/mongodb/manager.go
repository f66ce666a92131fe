package mongodb

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/SkipSnow/FindCare/internal/component"
	apperrors "github.com/SkipSnow/FindCare/internal/errors"
	"github.com/SkipSnow/FindCare/internal/logger"
)

const serviceName = "MongoDB"

// Manager holds at most one live MongoDB client. There is no pooling
// configuration beyond the driver's defaults and no retry/backoff: a
// transient failure surfaces immediately as a connection-kind error.
type Manager struct {
	cfg    Config
	log    *logger.Logger
	client *mongo.Client
	mu     sync.Mutex
}

// New creates an unconnected manager. Start establishes and validates the
// connection; use Connect for the one-call form.
func New(cfg Config, log *logger.Logger) (*Manager, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Manager{cfg: cfg, log: log.WithComponent("mongodb")}, nil
}

// Connect creates a manager and immediately establishes a validated
// connection. On any failure no live client handle is left behind.
func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*Manager, error) {
	m, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := m.Start(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Name implements component.Component.
func (m *Manager) Name() string { return "mongodb" }

// Start connects to MongoDB and validates the connection with a ping.
// A failed connect or ping tears the client down before returning, so an
// error always means there is no live handle.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return nil
	}

	timeout := time.Duration(m.cfg.ConnectTimeout) * time.Second
	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return apperrors.ConnectionFailed(serviceName).WithCause(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return apperrors.ConnectionFailed(serviceName).WithCause(err)
	}

	m.client = client
	m.log.Info("MongoDB connection established and validated")
	return nil
}

// Client returns the live client after re-validating it with a ping.
func (m *Manager) Client(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return nil, apperrors.ConnectionFailed(serviceName).WithDetail("reason", "client not initialized")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, apperrors.ConnectionFailed(serviceName).WithCause(err)
	}
	return client, nil
}

// Database returns a handle to the configured database after validation.
func (m *Manager) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := m.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(m.cfg.Database), nil
}

// Stop implements component.Component by closing the client.
func (m *Manager) Stop(ctx context.Context) error {
	return m.Close(ctx)
}

// Close disconnects the client. Safe to call multiple times and on a
// manager that never connected.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	if err != nil {
		return apperrors.ConnectionFailed(serviceName).WithCause(err).WithDetail("operation", "disconnect")
	}
	m.log.Info("MongoDB connection closed")
	return nil
}

// Health implements component.Component.
func (m *Manager) Health(ctx context.Context) component.Health {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return component.Health{Name: m.Name(), Status: component.StatusUnhealthy, Message: "not connected"}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return component.Health{Name: m.Name(), Status: component.StatusUnhealthy, Message: err.Error()}
	}
	return component.Health{Name: m.Name(), Status: component.StatusHealthy}
}
