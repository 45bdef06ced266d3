// Package config loads runtime configuration for the recipebox CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables prefixed with RECIPEBOX_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     backend API base URL
//	-t duration   request timeout
//	-g duration   LLM generation timeout
//	-r duration   rate-limit refresh interval
//	-d string     path of the local SQLite database
//	-l string     log level (debug, info, warn, error)
//	-f string     log format (console, json)
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://recipes.example.com/api/v1",
//	  "request_timeout": "30s",
//	  "generation_timeout": "2m",
//	  "rate_limit_refresh_interval": "30s",
//	  "database_path": "recipebox.db",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
package config
