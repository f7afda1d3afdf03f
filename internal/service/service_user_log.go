package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/internal/tabular"
	"github.com/MKhiriev/go-roster-bot/models"
)

// ExportFileName is the name the exported User Log is delivered under.
const ExportFileName = "user_data.xlsx"

// userLogService implements [UserLogService].
type userLogService struct {
	userLog  *UserLog
	admins   map[int64]struct{}
	archiver ExportArchiver

	logger *logger.Logger
}

// NewUserLogService constructs a [UserLogService] over userLog. Callers in
// cfg.AdminIDs are privileged. archiver may be nil, in which case exports
// are not archived.
func NewUserLogService(userLog *UserLog, cfg config.App, archiver ExportArchiver, logger *logger.Logger) UserLogService {
	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	return &userLogService{
		userLog:  userLog,
		admins:   admins,
		archiver: archiver,
		logger:   logger,
	}
}

func (s *userLogService) RecordFirstContact(ctx context.Context, callerID int64, handle string) (bool, error) {
	added, err := s.userLog.RecordFirstContact(ctx, callerID, handle)
	if added {
		logger.FromContext(ctx).Info().Int64("user_id", callerID).Str("username", handle).Msg("new user recorded")
	}

	return added, err
}

// Export persists the full table first, then renders the same rows as an
// XLSX document. An archive failure is logged and does not fail the export.
func (s *userLogService) Export(ctx context.Context, callerID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	if !s.IsPrivileged(callerID) {
		log.Warn().Int64("user_id", callerID).Msg("unauthorized export attempt")
		return models.Document{}, ErrForbidden
	}

	rows, err := s.userLog.Persist(ctx)
	if err != nil {
		return models.Document{}, err
	}

	content, err := store.EncodeUserLog(rows)
	if err != nil {
		return models.Document{}, fmt.Errorf("error rendering export: %w", err)
	}

	doc := models.Document{
		FileName:    ExportFileName,
		ContentType: tabular.ContentTypeXLSX,
		Content:     content,
	}

	if s.archiver != nil {
		if key, err := s.archiver.Store(ctx, doc); err != nil {
			log.Err(err).Msg("error archiving export")
		} else {
			log.Info().Str("key", key).Msg("export archived")
		}
	}

	return doc, nil
}

func (s *userLogService) IsPrivileged(callerID int64) bool {
	_, ok := s.admins[callerID]
	return ok
}

func (s *userLogService) Count() int {
	return s.userLog.Len()
}
