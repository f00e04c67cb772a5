package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	os.Setenv("API_URL", "https://orders.example.com/api")
	os.Setenv("API_TOKEN", "tok_test")
	t.Cleanup(func() {
		os.Unsetenv("API_URL")
		os.Unsetenv("API_TOKEN")
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	setRequired(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 5, cfg.API.PollIntervalSeconds)
	assert.Equal(t, 1000, cfg.API.OrderDelayMS)
	assert.Equal(t, "labels", cfg.Printing.OutputDir)
	assert.Equal(t, "assets", cfg.Printing.AssetDir)
	assert.Equal(t, 60, cfg.Printing.TimeoutSeconds)
	assert.False(t, cfg.Printing.KeepIntermediatePDF)
	assert.Equal(t, 600, cfg.PrintedGuardTTLSeconds)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequired(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("POLL_INTERVAL_SECONDS", "15")
	os.Setenv("LABEL_OUTPUT_DIR", "/tmp/labels")
	os.Setenv("KEEP_INTERMEDIATE_PDF", "true")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("POLL_INTERVAL_SECONDS")
		os.Unsetenv("LABEL_OUTPUT_DIR")
		os.Unsetenv("KEEP_INTERMEDIATE_PDF")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://orders.example.com/api", cfg.API.URL)
	assert.Equal(t, "tok_test", cfg.API.Token)
	assert.Equal(t, 15, cfg.API.PollIntervalSeconds)
	assert.Equal(t, "/tmp/labels", cfg.Printing.OutputDir)
	assert.True(t, cfg.Printing.KeepIntermediatePDF)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
API_URL=https://staging.example.com/api
API_TOKEN=tok_staging
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "tok_staging", cfg.API.Token)
}

// TestLoad_MissingToken verifies startup fails without an API token.
// There is deliberately no baked-in fallback secret.
func TestLoad_MissingToken(t *testing.T) {
	os.Setenv("API_URL", "https://orders.example.com/api")
	os.Unsetenv("API_TOKEN")
	defer os.Unsetenv("API_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "API_TOKEN")
}

// TestLoad_MissingURL verifies startup fails without the API base URL.
func TestLoad_MissingURL(t *testing.T) {
	os.Unsetenv("API_URL")
	os.Setenv("API_TOKEN", "tok_test")
	defer os.Unsetenv("API_TOKEN")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "API_URL")
}
