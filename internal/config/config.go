// Package config loads and validates the FindCare application
// configuration from an optional config.yml, an optional .env file, and
// FINDCARE_* environment variables.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/SkipSnow/FindCare/internal/logger"
	"github.com/SkipSnow/FindCare/internal/mongodb"
	"github.com/SkipSnow/FindCare/internal/server"
)

// ServiceName identifies this service in logs and operational endpoints.
const ServiceName = "findcare"

// SummaryConfig controls the session-summary placeholder endpoint.
type SummaryConfig struct {
	IntervalSeconds int `yaml:"interval_seconds" mapstructure:"interval_seconds" validate:"gte=1"`
}

// Config is the full application configuration.
type Config struct {
	Server  server.Config  `yaml:"server" mapstructure:"server"`
	Logging logger.Config  `yaml:"logging" mapstructure:"logging"`
	Mongo   mongodb.Config `yaml:"mongodb" mapstructure:"mongodb"`
	Summary SummaryConfig  `yaml:"summary" mapstructure:"summary"`
}

// MongoEnabled reports whether a Mongo connection should be managed at all.
// The prototype runs fine without one; the component is registered only
// when a connection string is configured.
func (c *Config) MongoEnabled() bool {
	return c.Mongo.URI != ""
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.MongoEnabled() {
		c.Mongo.ApplyDefaults()
	}
	if c.Summary.IntervalSeconds == 0 {
		c.Summary.IntervalSeconds = 60
	}
}

// Validate checks every section; any violation is fatal before start.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.MongoEnabled() {
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}
	if c.Summary.IntervalSeconds < 1 {
		return fmt.Errorf("summary.interval_seconds must be at least 1 (got: %d)", c.Summary.IntervalSeconds)
	}
	return nil
}
