// Package bootstrap owns the FindCare process lifecycle: it builds the
// logger exactly once from config, starts components in registration
// order, fires on-ready hooks once everything is up, and shuts down in
// reverse order on SIGINT/SIGTERM.
//
// Readiness is explicit: on-ready hooks (such as opening a browser) run
// only after every component's Start has returned, and the HTTP server's
// Start returns only once its listener is bound.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SkipSnow/FindCare/internal/component"
	"github.com/SkipSnow/FindCare/internal/config"
	"github.com/SkipSnow/FindCare/internal/logger"
)

// Hook runs at a lifecycle transition. Errors from ready hooks are logged
// but do not abort the application.
type Hook func(ctx context.Context) error

// App is the FindCare application lifecycle.
type App struct {
	Cfg        *config.Config
	Log        *logger.Logger
	Components *component.Registry

	gracefulTimeout time.Duration
	onReady         []Hook
}

// NewApp builds the application from a validated config. The logger is
// constructed here and nowhere else; idempotence comes from the entry
// point calling NewApp exactly once, not from a process-wide flag.
func NewApp(cfg *config.Config) *App {
	log := logger.New(&cfg.Logging, config.ServiceName)
	return &App{
		Cfg:             cfg,
		Log:             log,
		Components:      component.NewRegistry(log),
		gracefulTimeout: 15 * time.Second,
	}
}

// RegisterComponent adds a component; dependencies register first.
func (a *App) RegisterComponent(c component.Component) error {
	return a.Components.Register(c)
}

// OnReady registers a hook to run after all components have started.
func (a *App) OnReady(fn Hook) {
	a.onReady = append(a.onReady, fn)
}

// Startup starts all components and fires the ready hooks.
func (a *App) Startup(ctx context.Context) error {
	if err := a.Components.StartAll(ctx); err != nil {
		// Roll back anything that did start; no component may outlive a
		// failed startup.
		stopCtx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
		defer cancel()
		_ = a.Components.StopAll(stopCtx)
		return err
	}

	for _, fn := range a.onReady {
		if err := fn(ctx); err != nil {
			a.Log.Warn("Ready hook failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Log.Info("Application ready")
	return nil
}

// Shutdown stops all components in reverse order.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()
	return a.Components.StopAll(ctx)
}

// Run executes the full lifecycle: Startup, block until SIGINT/SIGTERM or
// context cancellation, then graceful Shutdown.
func (a *App) Run(ctx context.Context) error {
	if err := a.Startup(ctx); err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	a.waitForSignal(ctx)
	return a.Shutdown()
}

func (a *App) waitForSignal(ctx context.Context) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		a.Log.Info("Shutdown signal received", map[string]interface{}{
			"signal": s.String(),
		})
	case <-ctx.Done():
		a.Log.Info("Context canceled, shutting down")
	}
}
