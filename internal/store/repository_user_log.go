// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/models"
)

// userLogRepository is the SQL implementation of [UserLogRepository] over
// the bot_users table. Row order is kept in the position column.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userLogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserLogRepository constructs a [UserLogRepository] backed by db.
func NewUserLogRepository(db *DB, logger *logger.Logger) UserLogRepository {
	logger.Debug().Msg("creating user log repository")
	return &userLogRepository{
		db:     db,
		logger: logger,
	}
}

// Load selects every row ordered by position. A missing bot_users table
// reports exists == false.
func (r *userLogRepository) Load(ctx context.Context) ([]models.BotUser, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.placeholder())
	if err != nil {
		return nil, false, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			log.Debug().Str("func", "*userLogRepository.Load").Msg("user log table does not exist yet")
			return nil, false, nil
		}
		log.Err(err).Str("func", "*userLogRepository.Load").Msg("error selecting user log")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.BotUser, 0)
	for rows.Next() {
		var u models.BotUser
		if err = rows.Scan(&u.CallerID, &u.Handle); err != nil {
			log.Err(err).Str("func", "*userLogRepository.Load").Msg("error scanning user log row")
			return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userLogRepository.Load").Msg("error iterating user log rows")
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, true, nil
}

// Save replaces the table contents inside one transaction. A failure the
// driver's classifier deems transient is retried once.
func (r *userLogRepository) Save(ctx context.Context, users []models.BotUser) error {
	err := r.save(ctx, users)
	if err == nil || r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
		return err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*userLogRepository.Save").Msg("retrying user log save")
	return r.save(ctx, users)
}

func (r *userLogRepository) save(ctx context.Context, users []models.BotUser) error {
	log := logger.FromContext(ctx)
	format := r.db.placeholder()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userLogRepository.save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log)

	query, args, err := buildDeleteUsersQuery(format)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userLogRepository.save").Msg("error clearing user log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(users); start += insertBatchSize {
		end := min(start+insertBatchSize, len(users))

		query, args, err = buildInsertUsersQuery(format, start, users[start:end])
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userLogRepository.save").Msg("error inserting user log rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userLogRepository.save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
