package config

import (
	"encoding/json"
	"os"

	"github.com/pinkypromises/adminctl/internal/flagx"
	"github.com/pinkypromises/adminctl/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can spell the timeout either as "15s" or as
// integer nanoseconds. Parsed values are copied into the runtime Config.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogFile        string         `json:"log_file"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. When no file is given the function is a no-op.
// Read or unmarshal errors panic; the loader runs before any UI exists, so
// failing loudly is the right behavior.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
