package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/tabular"
	"github.com/MKhiriev/go-roster-bot/models"
)

func TestUserLogFileRepository_LoadMissingFile(t *testing.T) {
	repo := NewUserLogFileRepository(filepath.Join(t.TempDir(), "user_data.xlsx"), logger.Nop())

	users, exists, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, users)
}

func TestUserLogFileRepository_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.xlsx")
	repo := NewUserLogFileRepository(path, logger.Nop())
	ctx := context.Background()

	want := []models.BotUser{
		{CallerID: 1999878201, Handle: "@admin"},
		{CallerID: 42, Handle: models.NoHandle},
		{CallerID: 42, Handle: "@renamed"},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, exists, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, want, got)
}

func TestUserLogFileRepository_AnyExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "csv extension", file: "users.csv"},
		{name: "unknown extension", file: "users.dat"},
		{name: "no extension", file: "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewUserLogFileRepository(filepath.Join(t.TempDir(), tt.file), logger.Nop())
			ctx := context.Background()

			users, exists, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.False(t, exists)
			assert.Empty(t, users)

			want := []models.BotUser{
				{CallerID: 1999878201, Handle: "@admin"},
				{CallerID: 7, Handle: models.NoHandle},
			}
			require.NoError(t, repo.Save(ctx, want))

			got, exists, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.True(t, exists)
			assert.Equal(t, want, got)
		})
	}
}

func TestUserLogFileRepository_SaveEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.xlsx")
	repo := NewUserLogFileRepository(path, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil))

	users, exists, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, users)
}

func TestUserLogFileRepository_LoadSkipsInvalidRows(t *testing.T) {
	content, err := tabular.EncodeXLSX(
		[]string{"user_id", "username"},
		[][]any{{"abc", "@bad"}, {"7.0", ""}, {int64(8), "@ok"}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "user_data.xlsx")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	users, exists, err := NewUserLogFileRepository(path, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []models.BotUser{
		{CallerID: 7, Handle: models.NoHandle},
		{CallerID: 8, Handle: "@ok"},
	}, users)
}

func TestUserLogFileRepository_LoadMissingColumns(t *testing.T) {
	content, err := tabular.EncodeXLSX([]string{"id", "name"}, [][]any{{int64(1), "x"}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "user_data.xlsx")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, _, err = NewUserLogFileRepository(path, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrUserLogColumnMissing)
}

func TestEncodeUserLog_Columns(t *testing.T) {
	content, err := EncodeUserLog([]models.BotUser{{CallerID: 5, Handle: "@five"}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	table, err := tabular.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{ColumnUserID, ColumnUsername}, table.Header)
	assert.Equal(t, [][]string{{"5", "@five"}}, table.Rows)
}
