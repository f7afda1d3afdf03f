package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
)

// Storages groups the repositories the service layer depends on.
type Storages struct {
	RosterRepository  RosterRepository
	UserLogRepository UserLogRepository

	db *DB
}

// NewStorages loads the roster and opens the user log backend:
//  1. reads the roster file named by cfg.Roster.Path;
//  2. when cfg.UserLog.DSN is set, connects to the database and runs the
//     embedded migrations, otherwise uses the spreadsheet at
//     cfg.UserLog.Path.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	roster, err := LoadRoster(ctx, cfg.Roster.Path, logger)
	if err != nil {
		return nil, err
	}

	userLog, db, err := openUserLog(ctx, cfg.UserLog, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		RosterRepository:  roster,
		UserLogRepository: userLog,
		db:                db,
	}, nil
}

// OpenUserLog opens only the user log backend described by cfg. The returned
// close function releases the database connection, if any.
func OpenUserLog(ctx context.Context, cfg config.UserLog, logger *logger.Logger) (UserLogRepository, func() error, error) {
	userLog, db, err := openUserLog(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error { return nil }
	if db != nil {
		closeFn = db.Close
	}

	return userLog, closeFn, nil
}

func openUserLog(ctx context.Context, cfg config.UserLog, logger *logger.Logger) (UserLogRepository, *DB, error) {
	if !cfg.UsesDatabase() {
		return NewUserLogFileRepository(cfg.Path, logger), nil, nil
	}

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("user log database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewUserLogRepository(db, logger), db, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
