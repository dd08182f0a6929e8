package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"adapter": {
			"base_url": "https://notes.example.com",
			"diagnostics_url": "https://diag.example.com/report",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/notecache/cache.db" }
		},
		"cache": {
			"lookback_days": 14,
			"page_size": 25,
			"query_limit": 200
		},
		"workers": {
			"refresh_interval": "10m",
			"sites": ["Ramsay", "Hillcrest"]
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://notes.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "https://diag.example.com/report", cfg.Adapter.DiagnosticsURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/notecache/cache.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 14, cfg.Cache.LookbackDays)
	assert.Equal(t, 25, cfg.Cache.PageSize)
	assert.Equal(t, 200, cfg.Cache.QueryLimit)

	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, []string{"Ramsay", "Hillcrest"}, cfg.Workers.Sites)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	// 30 seconds expressed as nanoseconds.
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": 30000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}
