package server

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/SkipSnow/FindCare/internal/server/middleware"
)

// Config holds HTTP server configuration. Host and port arrive as strings
// (they come straight from FINDCARE_HOST / FINDCARE_PORT) and are validated
// before any listener starts.
type Config struct {
	Host         string                `yaml:"host" mapstructure:"host" validate:"required"`
	Port         string                `yaml:"port" mapstructure:"port" validate:"required"`
	ReadTimeout  int                   `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout int                   `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	IdleTimeout  int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`   // seconds
	MaxBodySize  string                `yaml:"max_body_size" mapstructure:"max_body_size"` // e.g. "10MB"
	UIPath       string                `yaml:"ui_path" mapstructure:"ui_path"`
	CORS         middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// defaultAllowedOrigins is the fixed list of local development frontends.
func defaultAllowedOrigins() []string {
	return []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == "" {
		c.Port = "7860"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "10MB"
	}
	if c.UIPath == "" {
		c.UIPath = "/ui"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = defaultAllowedOrigins()
		c.CORS.AllowCredentials = true
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	}
}

// Validate checks the configuration. Violations are fatal before start.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("server.host must be a non-empty string")
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("server.port must be a non-empty string")
	}
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil {
		return fmt.Errorf("server.port must parse as an integer (got: %q)", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got: %d)", port)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}
	if !strings.HasPrefix(c.UIPath, "/") {
		return fmt.Errorf("server.ui_path must start with '/' (got: %q)", c.UIPath)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}
