package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the portfolio server.
// Values come from an optional YAML file; environment variables override them.
type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:""`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"development"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	// ContentPath points at a YAML content file. Empty means the embedded default.
	ContentPath string `yaml:"content_path" env:"CONTENT_PATH" env-default:""`

	UI      UIConfig      `yaml:"ui"`
	Tracing TracingConfig `yaml:"tracing"`
}

// UIConfig holds the client-side timing values rendered into the page.
type UIConfig struct {
	ScrollThreshold int           `yaml:"scroll_threshold" env:"UI_SCROLL_THRESHOLD" env-default:"50"`
	CopyAckDelay    time.Duration `yaml:"copy_ack_delay" env:"UI_COPY_ACK_DELAY" env-default:"2s"`
	FormResetDelay  time.Duration `yaml:"form_reset_delay" env:"UI_FORM_RESET_DELAY" env-default:"3s"`
}

// TracingConfig enables the OTLP exporter when Endpoint is set.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"portfolio"`
}

// LoadConfig reads path if it exists, then applies environment overrides.
// A missing file is not an error; the defaults and environment are used.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.Env != envDevelopment && c.Env != envProduction {
		errs = append(errs, fmt.Errorf("env must be %q or %q, got %q", envDevelopment, envProduction, c.Env))
	}
	if c.UI.ScrollThreshold < 0 {
		errs = append(errs, fmt.Errorf("ui.scroll_threshold must be >= 0, got %d", c.UI.ScrollThreshold))
	}
	if c.UI.CopyAckDelay <= 0 {
		errs = append(errs, fmt.Errorf("ui.copy_ack_delay must be positive, got %s", c.UI.CopyAckDelay))
	}
	if c.UI.FormResetDelay <= 0 {
		errs = append(errs, fmt.Errorf("ui.form_reset_delay must be positive, got %s", c.UI.FormResetDelay))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Env == envProduction
}
