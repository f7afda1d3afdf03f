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
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"admin_ids": [1999878201],
			"chunk_size": 20,
			"category_prefix": "ECE",
			"version": "1.0.0"
		},
		"storage": {
			"roster": { "path": "/data/roster.xlsx" },
			"user_log": { "dsn": "postgres://bot@localhost/bot" },
			"archive": { "endpoint": "minio:9000", "bucket": "exports" }
		},
		"telegram": {
			"token": "123:abc",
			"request_timeout": "7s"
		},
		"server": {
			"http_address": "localhost:8080",
			"webhook_url": "https://bot.example.com/telegram/webhook"
		},
		"workers": {
			"poll_timeout": "25s",
			"retry_interval": 2000000000
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, []int64{1999878201}, cfg.App.AdminIDs)
	assert.Equal(t, 20, cfg.App.ChunkSize)
	assert.Equal(t, "ECE", cfg.App.CategoryPrefix)
	assert.Equal(t, "/data/roster.xlsx", cfg.Storage.Roster.Path)
	assert.Equal(t, "postgres://bot@localhost/bot", cfg.Storage.UserLog.DSN)
	assert.True(t, cfg.Storage.Archive.Enabled())
	assert.Equal(t, "123:abc", cfg.Adapter.Token)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.True(t, cfg.Server.WebhookMode())
	assert.Equal(t, 25*time.Second, cfg.Workers.PollTimeout)
	assert.Equal(t, 2*time.Second, cfg.Workers.RetryInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"poll_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
