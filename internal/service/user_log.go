// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/models"
)

// UserLog is the in-memory User Log table together with the repository it
// is persisted to. It is owned by the service layer and shared by every
// handler, so all access goes through its mutex.
//
// Each mutation rewrites the whole durable table.
type UserLog struct {
	mu    sync.Mutex
	rows  []models.BotUser
	index map[models.BotUser]struct{}
	repo  store.UserLogRepository
}

// NewUserLog builds a table over rows, dropping exact duplicates while
// keeping first occurrences in order.
func NewUserLog(repo store.UserLogRepository, rows []models.BotUser) *UserLog {
	l := &UserLog{
		rows:  make([]models.BotUser, 0, len(rows)),
		index: make(map[models.BotUser]struct{}, len(rows)),
		repo:  repo,
	}

	for _, row := range rows {
		if _, ok := l.index[row]; ok {
			continue
		}
		l.index[row] = struct{}{}
		l.rows = append(l.rows, row)
	}

	return l
}

// LoadOrDefault reads the durable table through repo. When it has never been
// written, an empty table is returned with fresh == true; absence is not an
// error.
func LoadOrDefault(ctx context.Context, repo store.UserLogRepository) (*UserLog, bool, error) {
	rows, exists, err := repo.Load(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error loading user log: %w", err)
	}

	if !exists {
		logger.FromContext(ctx).Debug().Msg("user log does not exist yet, starting empty")
	}

	return NewUserLog(repo, rows), !exists, nil
}

// RecordFirstContact appends (callerID, handle) when that exact pair is not
// in the table yet and persists the whole table. It reports whether a row
// was added. A repeated pair changes nothing and writes nothing.
//
// When persisting fails the row stays in memory and is written by the next
// successful save.
func (l *UserLog) RecordFirstContact(ctx context.Context, callerID int64, handle string) (bool, error) {
	row := models.BotUser{CallerID: callerID, Handle: handle}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[row]; ok {
		return false, nil
	}

	l.index[row] = struct{}{}
	l.rows = append(l.rows, row)

	if err := l.repo.Save(ctx, slices.Clone(l.rows)); err != nil {
		return true, fmt.Errorf("error saving user log: %w", err)
	}

	return true, nil
}

// Persist writes the whole table and returns the rows that were written.
func (l *UserLog) Persist(ctx context.Context) ([]models.BotUser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := slices.Clone(l.rows)
	if err := l.repo.Save(ctx, rows); err != nil {
		return nil, fmt.Errorf("error saving user log: %w", err)
	}

	return rows, nil
}

// Rows returns a copy of the table in insertion order.
func (l *UserLog) Rows() []models.BotUser {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.rows)
}

// Len returns the number of rows.
func (l *UserLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.rows)
}
