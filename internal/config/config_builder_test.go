package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Adapter.Token = "123:abc"
	cfg.App.AdminIDs = []int64{1999878201}
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── merge / build ─────────────────────────────────────────────────────────────

func TestMerge_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestMerge_LaterSourceOverrides verifies that non-zero fields of a later
// source win while zero fields keep the earlier value.
func TestMerge_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{ChunkSize: 10, AdminIDs: []int64{7}}})

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.App.ChunkSize)
	assert.Equal(t, []int64{7}, cfg.App.AdminIDs)
	assert.Equal(t, DefaultCategoryPrefix, cfg.App.CategoryPrefix)
	assert.Equal(t, DefaultPollTimeout, cfg.Workers.PollTimeout)
}

func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestBuild_Success(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Adapter.Token)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsSkipped(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TELEGRAM_TOKEN=from-dotenv\n"), 0o600))
	t.Setenv("TELEGRAM_TOKEN", "")
	require.NoError(t, os.Unsetenv("TELEGRAM_TOKEN"))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].Adapter.Token)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("APP_ADMIN_IDS", "1,2")
	t.Setenv("APP_CHUNK_SIZE", "25")
	t.Setenv("STORAGE_ROSTER_PATH", "/srv/roster.csv")
	t.Setenv("STORAGE_USER_LOG_DSN", "file:users.db")
	t.Setenv("WORKERS_POLL_TIMEOUT", "45s")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "env-token", cfg.Adapter.Token)
	assert.Equal(t, []int64{1, 2}, cfg.App.AdminIDs)
	assert.Equal(t, 25, cfg.App.ChunkSize)
	assert.Equal(t, "/srv/roster.csv", cfg.Storage.Roster.Path)
	assert.Equal(t, "file:users.db", cfg.Storage.UserLog.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.PollTimeout)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_CHUNK_SIZE", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token", "flag-token", "-chunk-size", "5"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Adapter.Token)
	assert.Equal(t, 5, b.configs[0].App.ChunkSize)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Telegram.Token = "json-token"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-token", b.configs[1].Adapter.Token)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetToolConfig ─────────────────────────────────────────────────────────────

func TestGetToolConfig_AppliesOverrides(t *testing.T) {
	t.Setenv("STORAGE_ROSTER_PATH", "/env/roster.xlsx")

	cfg, err := GetToolConfig(ToolConfig{Storage: Storage{Roster: Roster{Path: "/flag/roster.csv"}}})

	require.NoError(t, err)
	assert.Equal(t, "/flag/roster.csv", cfg.Storage.Roster.Path)
	assert.Equal(t, DefaultChunkSize, cfg.App.ChunkSize)
	assert.Equal(t, DefaultUserLogPath, cfg.Storage.UserLog.Path)
}
