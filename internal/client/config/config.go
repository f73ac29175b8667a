// Package config loads runtime settings for the admin client.
//
// Sources are applied in order, later ones winning:
//
//	defaults -> .env/environment -> JSON file (-c/-config) -> flags
package config

import "time"

// Config holds runtime settings for the admin client.
//
// Fields:
//   - APIBaseURL: base URL of the admin API, e.g. "https://api.pinkypromises.app".
//   - RequestTimeout: per-request timeout for gateway calls.
//   - LogFile: path the structured log is written to; the terminal itself
//     belongs to the UI, so logs never go to stdout.
//   - LogLevel: zerolog level name (debug|info|warn|error).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 15 * time.Second
	c.LogFile = "adminctl.log"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
