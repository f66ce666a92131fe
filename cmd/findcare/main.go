// Command findcare runs the FindCare provider-lookup prototype: an HTTP
// API and wireframe UI over an in-memory provider seed, with an optional
// MongoDB connection for future persistence work.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SkipSnow/FindCare/internal/api"
	"github.com/SkipSnow/FindCare/internal/bootstrap"
	"github.com/SkipSnow/FindCare/internal/browser"
	"github.com/SkipSnow/FindCare/internal/config"
	"github.com/SkipSnow/FindCare/internal/mongodb"
	"github.com/SkipSnow/FindCare/internal/provider"
	"github.com/SkipSnow/FindCare/internal/server"
	"github.com/SkipSnow/FindCare/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "findcare:", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "path to config.yml (searched for if empty)")
	noBrowser := flag.Bool("no-browser", false, "do not open a browser once the server is up")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app := bootstrap.NewApp(cfg)

	// Mongo starts before the server so the health endpoint never reports
	// a half-started stack. The prototype runs without it when no URI is set.
	if cfg.MongoEnabled() {
		mongo, err := mongodb.New(cfg.Mongo, app.Log)
		if err != nil {
			return err
		}
		if err := app.RegisterComponent(mongo); err != nil {
			return err
		}
	}

	srv := server.New(cfg.Server, app.Log)
	srv.ApplyMiddleware()

	store := provider.NewSeedStore()
	handler := api.NewHandler(store, api.Options{
		UIPath:                 cfg.Server.UIPath,
		SummaryIntervalSeconds: cfg.Summary.IntervalSeconds,
		Components:             app.Components,
	}, app.Log)
	handler.Register(srv.GinEngine())

	if err := ui.Register(srv.GinEngine(), cfg.Server.UIPath, api.ContactEmail, store); err != nil {
		return fmt.Errorf("register ui: %w", err)
	}

	if err := app.RegisterComponent(srv); err != nil {
		return err
	}

	if !*noBrowser {
		uiURL := srv.URL() + cfg.Server.UIPath
		app.OnReady(func(_ context.Context) error {
			browser.OpenURL(uiURL, app.Log)
			return nil
		})
	}

	return app.Run(context.Background())
}
