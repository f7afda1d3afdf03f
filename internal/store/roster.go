// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/tabular"
	"github.com/MKhiriev/go-roster-bot/models"
)

// Roster header columns, matched case-insensitively.
const (
	columnRoll    = "roll"
	columnName    = "name"
	columnSection = "section"
	columnHostel  = "hostel"
)

// rosterRepository is the in-memory implementation of [RosterRepository].
// The record slice is never modified after construction, so concurrent
// readers need no locking.
type rosterRepository struct {
	records []models.Record
}

// NewRosterRepository wraps already decoded records.
func NewRosterRepository(records []models.Record) RosterRepository {
	return &rosterRepository{records: records}
}

// LoadRoster reads the roster file at path (.csv or .xlsx) and returns a
// repository over its rows.
func LoadRoster(ctx context.Context, path string, log *logger.Logger) (RosterRepository, error) {
	table, err := tabular.ReadFile(ctx, path)
	if err != nil {
		log.Err(err).Str("func", "LoadRoster").Str("path", path).Msg("error reading roster")
		return nil, fmt.Errorf("error reading roster: %w", err)
	}

	records, err := recordsFromTable(table)
	if err != nil {
		log.Err(err).Str("func", "LoadRoster").Str("path", path).Msg("error decoding roster")
		return nil, err
	}

	log.Info().Str("func", "LoadRoster").Str("path", path).Int("records", len(records)).Msg("roster loaded")
	return NewRosterRepository(records), nil
}

func recordsFromTable(table tabular.Table) ([]models.Record, error) {
	cols := make(map[string]int, 4)
	for _, name := range []string{columnRoll, columnName, columnSection, columnHostel} {
		idx := table.Column(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrRosterColumnMissing, name)
		}
		cols[name] = idx
	}

	records := make([]models.Record, 0, table.Len())
	for i := range table.Rows {
		records = append(records, models.Record{
			ID:        NormalizeID(table.Cell(i, cols[columnRoll])),
			Name:      table.Cell(i, cols[columnName]),
			Category:  table.Cell(i, cols[columnSection]),
			Auxiliary: table.Cell(i, cols[columnHostel]),
		})
	}

	return records, nil
}

// maxExactFloat is the largest integer every float64 below it represents
// exactly.
const maxExactFloat = 1 << 53

// NormalizeID trims raw and, when it is a spreadsheet float rendering of a
// non-negative integer ("22051234.0", "2.2051234e+07"), rewrites it as plain
// digits. Any other value is returned trimmed and otherwise untouched.
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || isDigits(id) {
		return id
	}

	f, err := strconv.ParseFloat(id, 64)
	if err != nil || f < 0 || f >= maxExactFloat || f != math.Trunc(f) {
		return id
	}

	return strconv.FormatInt(int64(f), 10)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func (r *rosterRepository) FindByID(ctx context.Context, id string) (models.Record, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return models.Record{}, ErrRecordNotFound
}

func (r *rosterRepository) FindByCategory(ctx context.Context, token string) ([]models.Record, error) {
	found := make([]models.Record, 0)
	for _, rec := range r.records {
		if strings.Contains(rec.Category, token) {
			found = append(found, rec)
		}
	}

	return found, nil
}

func (r *rosterRepository) Count() int {
	return len(r.records)
}
