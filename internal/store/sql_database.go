package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/migrations"
)

// DB is a database/sql handle bound to the driver it was opened with.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the user log database described by cfg, choosing the
// driver from [config.UserLog.ResolvedDriver].
func NewConnect(ctx context.Context, cfg config.UserLog, log *logger.Logger) (*DB, error) {
	switch driver := cfg.ResolvedDriver(); driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded schema migrations using the dialect of the
// connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholder returns the bind variable format the driver understands.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == config.DriverPostgres {
		return sq.Dollar
	}

	return sq.Question
}

// isUndefinedTable reports whether err says the queried table does not
// exist, for either supported driver.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}

	if postgresError(err) == pgerrcode.UndefinedTable {
		return true
	}

	return strings.Contains(err.Error(), "no such table")
}

func rollback(tx *sql.Tx, log *logger.Logger) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Err(err).Msg("error rolling back transaction")
	}
}
