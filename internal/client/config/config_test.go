package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.Equal(t, "http://127.0.0.1:3000", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "adminctl.log", cfg.LogFile)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADMIN_API_BASE_URL", "https://api.pinkypromises.app")
	t.Setenv("ADMIN_REQUEST_TIMEOUT", "30")
	t.Setenv("ADMIN_LOG_LEVEL", "debug")

	cfg := LoadConfig()

	require.Equal(t, "https://api.pinkypromises.app", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvIgnoresInvalidTimeout(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADMIN_REQUEST_TIMEOUT", "soon")

	cfg := LoadConfig()

	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com",
		"request_timeout": "20s",
		"log_file": "json.log"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("ADMIN_API_BASE_URL", "https://env.example.com")

	cfg := LoadConfig()

	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
	require.Equal(t, "json.log", cfg.LogFile)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example.com"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "https://flag.example.com", "-t", "5")

	cfg := LoadConfig()

	require.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_MissingJSONFilePanics(t *testing.T) {
	resetArgs(t, "-c", "/does/not/exist.json")

	require.Panics(t, func() { LoadConfig() })
}
