package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// ── parseJSON ────────────────────────────────────────────────────────────────

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"api": {"base_url": "http://localhost:8080", "request_timeout": "30s"},
		"ui": {"notification_duration": "2s", "sidebar_collapsed": true},
		"app": {"locale": "en"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.UI.NotificationDuration)
	assert.True(t, cfg.UI.SidebarCollapsed)
	assert.Equal(t, "en", cfg.App.Locale)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given as nanosecond numbers
	path := writeTempJSON(t, `{"api": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"api": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_BadDurationString(t *testing.T) {
	path := writeTempJSON(t, `{"api": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// ── Duration ─────────────────────────────────────────────────────────────────

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(raw))
	assert.Equal(t, d, back)
}
