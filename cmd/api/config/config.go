// Package config loads the service settings: defaults, then an optional YAML file,
// then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database      Database      `yaml:"database"`
	HTTP          HTTP          `yaml:"http"`
	Notifications Notifications `yaml:"notifications"`
}

type Database struct {
	Driver         string `yaml:"driver" env:"DATABASE_DRIVER"`
	URL            string `yaml:"url" env:"DATABASE_URL"`
	Version        uint   `yaml:"version" env:"DATABASE_VERSION"`
	MigrationsPath string `yaml:"migrations_path" env:"DATABASE_MIGRATIONS_PATH"`
}

type HTTP struct {
	Port           int           `yaml:"port" env:"HTTP_PORT"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT"`
}

type Notifications struct {
	Enabled bool          `yaml:"enabled" env:"NOTIFICATIONS_ENABLED"`
	BaseURL string        `yaml:"base_url" env:"NOTIFICATIONS_URL"`
	Topic   string        `yaml:"topic" env:"NOTIFICATIONS_TOPIC"`
	Timeout time.Duration `yaml:"timeout" env:"NOTIFICATIONS_TIMEOUT"`
}

// Drivers accepted in Database.Driver. "memory" keeps everything in process.
var Drivers = []string{"sqlite3", "sqlite", "postgres", "memory"}

func Default() Config {
	return Config{
		Database: Database{
			Driver:  "sqlite3",
			URL:     "BookStore.db",
			Version: 1,
		},
		HTTP: HTTP{
			Port:           8080,
			RequestTimeout: 5 * time.Second,
		},
		Notifications: Notifications{
			BaseURL: "https://ntfy.sh",
			Topic:   "bookstore_changes",
			Timeout: 2 * time.Second,
		},
	}
}

/* Loads the defaults, overlays the YAML file at path (when path is not empty) and then the environment. */
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading config: %w", err)
		}
		err = yaml.Unmarshal(raw, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("loading config, parsing %s: %w", path, err)
		}
	}

	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("loading config, parsing env: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	known := false
	for _, d := range Drivers {
		if c.Database.Driver == d {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: database driver %q must be one of %v", ErrInvalidConfig, c.Database.Driver, Drivers)
	}
	if c.Database.Driver != "memory" && c.Database.URL == "" {
		return fmt.Errorf("%w: database url is empty", ErrInvalidConfig)
	}
	if c.Database.Version < 1 {
		return fmt.Errorf("%w: database version must be 1 or more", ErrInvalidConfig)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http port %d out of range", ErrInvalidConfig, c.HTTP.Port)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http request timeout must be positive", ErrInvalidConfig)
	}
	if c.Notifications.Enabled && c.Notifications.BaseURL == "" {
		return fmt.Errorf("%w: notifications enabled without base url", ErrInvalidConfig)
	}
	return nil
}
