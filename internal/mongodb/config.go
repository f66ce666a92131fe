package mongodb

import (
	"fmt"
	"strings"
)

// Config holds MongoDB connection configuration.
type Config struct {
	URI            string `yaml:"uri" mapstructure:"uri" validate:"required"`
	Database       string `yaml:"database" mapstructure:"database"`
	ConnectTimeout int    `yaml:"connect_timeout" mapstructure:"connect_timeout"` // seconds
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Database == "" {
		c.Database = "findcare"
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URI) == "" {
		return fmt.Errorf("mongodb.uri must be a non-empty connection string")
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("mongodb.connect_timeout must be non-negative (got: %d)", c.ConnectTimeout)
	}
	return nil
}
