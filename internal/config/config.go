package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"simple-file-explorer/internal/logger"
)

// Prefix is prepended to every environment variable, e.g. EXPLORER_LOG_LEVEL.
const Prefix = "EXPLORER"

// Config holds all application configuration.
type Config struct {
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	JSONLogs      bool          `envconfig:"JSON_LOGS" default:"false"`
	Roots         []string      `envconfig:"ROOTS"`
	ShowHidden    bool          `envconfig:"SHOW_HIDDEN" default:"false"`
	NameFilters   []string      `envconfig:"NAME_FILTERS"`
	StatusTimeout time.Duration `envconfig:"STATUS_TIMEOUT" default:"3s"`
	WindowWidth   float32       `envconfig:"WINDOW_WIDTH" default:"1000"`
	WindowHeight  float32       `envconfig:"WINDOW_HEIGHT" default:"600"`
	Watch         bool          `envconfig:"WATCH" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		StatusTimeout: 3 * time.Second,
		WindowWidth:   1000,
		WindowHeight:  600,
		Watch:         true,
	}
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	if c.StatusTimeout < 0 {
		return fmt.Errorf("invalid status timeout %s", c.StatusTimeout)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
