package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/SkipSnow/FindCare/internal/component"
	"github.com/SkipSnow/FindCare/internal/config"
)

type recordingComponent struct {
	name     string
	events   *[]string
	startErr error
}

func (c *recordingComponent) Name() string { return c.name }

func (c *recordingComponent) Start(ctx context.Context) error {
	*c.events = append(*c.events, "start:"+c.name)
	return c.startErr
}

func (c *recordingComponent) Stop(ctx context.Context) error {
	*c.events = append(*c.events, "stop:"+c.name)
	return nil
}

func (c *recordingComponent) Health(ctx context.Context) component.Health {
	return component.Health{Name: c.name, Status: component.StatusHealthy}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Logging.File = "" // keep test runs from writing log files
	return cfg
}

func TestStartupRunsReadyHooksAfterComponents(t *testing.T) {
	app := NewApp(testConfig())

	var events []string
	if err := app.RegisterComponent(&recordingComponent{name: "db", events: &events}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := app.RegisterComponent(&recordingComponent{name: "server", events: &events}); err != nil {
		t.Fatalf("register: %v", err)
	}
	app.OnReady(func(ctx context.Context) error {
		events = append(events, "ready")
		return nil
	})

	if err := app.Startup(context.Background()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	defer app.Shutdown()

	want := []string{"start:db", "start:server", "ready"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestStartupFailureStopsStartedComponents(t *testing.T) {
	app := NewApp(testConfig())

	var events []string
	if err := app.RegisterComponent(&recordingComponent{name: "db", events: &events}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := app.RegisterComponent(&recordingComponent{
		name:     "server",
		events:   &events,
		startErr: errors.New("bind failed"),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	app.OnReady(func(ctx context.Context) error {
		t.Error("ready hook ran despite failed startup")
		return nil
	})

	if err := app.Startup(context.Background()); err == nil {
		t.Fatal("Startup succeeded, want error")
	}

	sawStop := false
	for _, e := range events {
		if e == "stop:db" {
			sawStop = true
		}
	}
	if !sawStop {
		t.Errorf("started component was not stopped after failure, events = %v", events)
	}
}

func TestFailedReadyHookDoesNotAbortStartup(t *testing.T) {
	app := NewApp(testConfig())

	var events []string
	if err := app.RegisterComponent(&recordingComponent{name: "server", events: &events}); err != nil {
		t.Fatalf("register: %v", err)
	}
	app.OnReady(func(ctx context.Context) error {
		return errors.New("no display available")
	})

	if err := app.Startup(context.Background()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if err := app.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
