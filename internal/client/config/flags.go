package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/recipebox/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-g", "-r", "-d", "-l", "-f"}

// parseFlags populates Config fields from command-line flags.
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// components (such as -c) do not make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("recipebox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.GenerationTimeout, "g", cfg.GenerationTimeout, "LLM generation timeout")
	fs.DurationVar(&cfg.RateLimitRefreshInterval, "r", cfg.RateLimitRefreshInterval, "rate limit refresh interval")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (console, json or text)")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
