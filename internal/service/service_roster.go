// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/models"
)

// rosterService implements [RosterService] over a [store.RosterRepository].
type rosterService struct {
	repo      store.RosterRepository
	prefix    string
	separator string

	logger *logger.Logger
}

// NewRosterService constructs a [RosterService]. The category token is built
// from cfg.CategoryPrefix and cfg.CategorySeparator.
func NewRosterService(repo store.RosterRepository, cfg config.App, logger *logger.Logger) RosterService {
	return &rosterService{
		repo:      repo,
		prefix:    cfg.CategoryPrefix,
		separator: cfg.CategorySeparator,
		logger:    logger,
	}
}

func (s *rosterService) FindRecord(ctx context.Context, id string) (models.Record, error) {
	record, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("error finding record %q: %w", id, err)
	}

	return record, nil
}

// ListCategory selects every record whose category label contains the token
// built by [CategoryToken] and sorts the result by identifier. Identifiers
// are compared as strings, so "9999" sorts after "10000".
func (s *rosterService) ListCategory(ctx context.Context, raw string) ([]models.Record, error) {
	if Classify(raw).Kind != models.QueryCategory {
		return nil, fmt.Errorf("%w: %q is not a section number", ErrInvalidQuery, raw)
	}

	token := CategoryToken(s.prefix, s.separator, raw)

	records, err := s.repo.FindByCategory(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error listing category %q: %w", token, err)
	}

	if len(records) == 0 {
		logger.FromContext(ctx).Debug().Str("token", token).Msg("category is empty")
		return nil, ErrCategoryNotFound
	}

	slices.SortStableFunc(records, func(a, b models.Record) int {
		return strings.Compare(a.ID, b.ID)
	})

	return records, nil
}

func (s *rosterService) Size() int {
	return s.repo.Count()
}

// CategoryToken left-pads the section number raw with zeros to two digits
// and joins it to prefix with separator: ("CSE", "-", "1") is "CSE-01".
func CategoryToken(prefix, separator, raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 {
		raw = strings.Repeat("0", 2-len(raw)) + raw
	}

	return prefix + separator + raw
}
