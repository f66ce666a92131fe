package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from configFile (optional; the default search
// locations are tried when empty), layers FINDCARE_* environment variables
// on top, applies defaults, and validates. Validation failures are returned
// before any listener or connection exists.
func Load(configFile string) (*Config, error) {
	// Best-effort .env load so local development matches the README flow.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	if configFile == "" {
		configFile = findConfigFile()
	}

	var cfg Config
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", configFile, err)
		}
	}

	applyEnvOverrides(&cfg)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides layers the flat FINDCARE_* environment variables over
// the file-based config. These names predate the sectioned config layout
// and are kept as the stable external surface.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "FINDCARE_HOST")
	setString(&cfg.Server.Port, "FINDCARE_PORT")
	setString(&cfg.Server.UIPath, "FINDCARE_UI_PATH")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Logging.File, "FINDCARE_LOG_PATH")
	setString(&cfg.Mongo.URI, "FINDCARE_MONGO_URI")
	setString(&cfg.Mongo.Database, "FINDCARE_MONGO_DATABASE")
	setInt(&cfg.Summary.IntervalSeconds, "FINDCARE_SUMMARY_INTERVAL_SEC")
}

func setString(dst *string, env string) {
	if val := os.Getenv(env); val != "" {
		*dst = val
	}
}

func setInt(dst *int, env string) {
	if val := os.Getenv(env); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*dst = n
		}
		// An unparseable value keeps the configured default.
	}
}

// findConfigFile searches standard locations for config.yml.
func findConfigFile() string {
	searchPaths := []string{
		"./cmd/findcare/config.yml",
		"./config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
