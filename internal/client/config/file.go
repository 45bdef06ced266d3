package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/recipebox/internal/flagx"
	"github.com/dmitrijs2005/recipebox/internal/timex"
)

// fileConfig is the on-disk shape. Zero values leave the current setting
// untouched.
type fileConfig struct {
	APIBaseURL               string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout           timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	GenerationTimeout        timex.Duration `json:"generation_timeout" yaml:"generation_timeout"`
	RateLimitRefreshInterval timex.Duration `json:"rate_limit_refresh_interval" yaml:"rate_limit_refresh_interval"`
	DatabasePath             string         `json:"database_path" yaml:"database_path"`
	LogLevel                 string         `json:"log_level" yaml:"log_level"`
	LogFormat                string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.GenerationTimeout.Duration > 0 {
		cfg.GenerationTimeout = fc.GenerationTimeout.Duration
	}
	if fc.RateLimitRefreshInterval.Duration > 0 {
		cfg.RateLimitRefreshInterval = fc.RateLimitRefreshInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
