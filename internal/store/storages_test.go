package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/models"
)

func writeRosterCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte("roll,name,section,hostel\n22051234,Asha,CSE-01,KP-7\n"), 0o600))
	return path
}

func TestNewStorages_FileUserLog(t *testing.T) {
	cfg := config.Storage{
		Roster:  config.Roster{Path: writeRosterCSV(t)},
		UserLog: config.UserLog{Path: filepath.Join(t.TempDir(), "user_data.xlsx")},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.Equal(t, 1, storages.RosterRepository.Count())
	assert.IsType(t, &userLogFileRepository{}, storages.UserLogRepository)
	assert.NoError(t, storages.Close())
}

func TestNewStorages_MissingRoster(t *testing.T) {
	cfg := config.Storage{
		Roster:  config.Roster{Path: filepath.Join(t.TempDir(), "none.csv")},
		UserLog: config.UserLog{Path: "user_data.xlsx"},
	}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	cfg := config.Storage{
		Roster:  config.Roster{Path: writeRosterCSV(t)},
		UserLog: config.UserLog{DSN: "whatever", Driver: "oracle"},
	}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestNewStorages_SQLiteUserLog runs the migrations against a real SQLite file
// and round-trips the user log through it.
func TestNewStorages_SQLiteUserLog(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "users.db")
	cfg := config.Storage{
		Roster:  config.Roster{Path: writeRosterCSV(t)},
		UserLog: config.UserLog{DSN: dsn, Driver: config.DriverSQLite},
	}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	users, exists, err := storages.UserLogRepository.Load(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, users)

	want := []models.BotUser{{CallerID: 3, Handle: "@c"}, {CallerID: 1, Handle: "@a"}, {CallerID: 1, Handle: models.NoHandle}}
	require.NoError(t, storages.UserLogRepository.Save(ctx, want))
	require.NoError(t, storages.UserLogRepository.Save(ctx, want))

	got, _, err := storages.UserLogRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.NoError(t, createLocalDBFileIfNotExists("file:memdb?mode=memory"))
	assert.NoError(t, createLocalDBFileIfNotExists(":memory:"))
}

func TestOpenUserLog_File(t *testing.T) {
	repo, closeFn, err := OpenUserLog(context.Background(), config.UserLog{Path: filepath.Join(t.TempDir(), "user_data.xlsx")}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &userLogFileRepository{}, repo)
	assert.NoError(t, closeFn())
}

func TestOpenUserLog_SQLite(t *testing.T) {
	cfg := config.UserLog{DSN: filepath.Join(t.TempDir(), "users.db"), Driver: config.DriverSQLite}

	repo, closeFn, err := OpenUserLog(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	users := []models.BotUser{{CallerID: 1, Handle: "@a"}}
	require.NoError(t, repo.Save(context.Background(), users))

	got, exists, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, users, got)
}
