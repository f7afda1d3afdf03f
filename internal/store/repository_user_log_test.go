package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/models"
)

func newTestUserLogRepo(t *testing.T, driver string) (UserLogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if driver == config.DriverPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	l := logger.Nop()
	repo := NewUserLogRepository(&DB{DB: db, driver: driver, errorClassificator: classifier, logger: l}, l)
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var selectUsers = regexp.QuoteMeta("SELECT user_id, username FROM bot_users ORDER BY position")

func TestUserLogRepository_Load_Success(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "username"}).
		AddRow(int64(1999878201), "@admin").
		AddRow(int64(42), models.NoHandle)
	mock.ExpectQuery(selectUsers).WillReturnRows(rows)

	users, exists, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []models.BotUser{
		{CallerID: 1999878201, Handle: "@admin"},
		{CallerID: 42, Handle: models.NoHandle},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Load_EmptyTableExists(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectQuery(selectUsers).WillReturnRows(sqlmock.NewRows([]string{"user_id", "username"}))

	users, exists, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, users)
}

func TestUserLogRepository_Load_UndefinedTable(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		err    error
	}{
		{name: "postgres", driver: config.DriverPostgres, err: pgError(pgerrcode.UndefinedTable)},
		{name: "sqlite", driver: config.DriverSQLite, err: errors.New("no such table: bot_users")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserLogRepo(t, tt.driver)
			defer db.Close()

			mock.ExpectQuery("SELECT user_id, username FROM bot_users").WillReturnError(tt.err)

			users, exists, err := repo.Load(context.Background())

			require.NoError(t, err)
			assert.False(t, exists)
			assert.Nil(t, users)
		})
	}
}

func TestUserLogRepository_Load_QueryError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").WillReturnError(errors.New("db failure"))

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUserLogRepository_Load_ScanError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "username"}).AddRow("not-a-number", "@x")
	mock.ExpectQuery("SELECT user_id").WillReturnRows(rows)

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUserLogRepository_Save_Success(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverPostgres)
	defer db.Close()

	users := []models.BotUser{
		{CallerID: 1, Handle: "@one"},
		{CallerID: 2, Handle: models.NoHandle},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bot_users")).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bot_users (position,user_id,username) VALUES ($1,$2,$3),($4,$5,$6)")).
		WithArgs(int64(0), int64(1), "@one", int64(1), int64(2), models.NoHandle).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), users))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Save_EmptyTableOnlyDeletes(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Save_Batches(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	users := make([]models.BotUser, insertBatchSize+1)
	for i := range users {
		users[i] = models.BotUser{CallerID: int64(i + 1), Handle: models.NoHandle}
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bot_users").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO bot_users").
		WithArgs(int64(insertBatchSize), int64(insertBatchSize+1), models.NoHandle).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), users))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Save_BeginError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestUserLogRepository_Save_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bot_users").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), []models.BotUser{{CallerID: 1, Handle: "@one"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Save_CommitError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestUserLogRepository_Save_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserLogRepository_Save_DoesNotRetryPermanentError(t *testing.T) {
	repo, mock, db := newTestUserLogRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bot_users").WillReturnError(pgError(pgerrcode.UndefinedTable))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
