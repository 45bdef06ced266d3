package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

const EnvPrefix = "RECIPEBOX_"

// Config holds runtime settings for the recipebox CLI.
type Config struct {
	APIBaseURL               string        `env:"API_BASE_URL"`
	RequestTimeout           time.Duration `env:"REQUEST_TIMEOUT"`
	GenerationTimeout        time.Duration `env:"GENERATION_TIMEOUT"`
	RateLimitRefreshInterval time.Duration `env:"RATE_LIMIT_REFRESH_INTERVAL"`
	DatabasePath             string        `env:"DATABASE_PATH"`
	LogLevel                 string        `env:"LOG_LEVEL"`
	LogFormat                string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.GenerationTimeout = 2 * time.Minute
	c.RateLimitRefreshInterval = 30 * time.Second
	c.DatabasePath = "recipebox.db"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url %q must be an absolute http(s) URL", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 || c.GenerationTimeout <= 0 || c.RateLimitRefreshInterval <= 0 {
		return errors.New("timeouts and intervals must be positive")
	}
	if c.DatabasePath == "" {
		return errors.New("database path must not be empty")
	}
	switch c.LogFormat {
	case "console", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Load builds a Config from defaults, the config file, the environment and
// args (without the program name), in that order.
func Load(args []string) (*Config, error) {
	return load(args, nil)
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
