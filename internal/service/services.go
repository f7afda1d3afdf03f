package service

import (
	"context"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/models"
)

// Services groups everything the handlers depend on.
type Services struct {
	RosterService  RosterService
	UserLogService UserLogService
	AppInfoService AppInfoService
	Formatter      *Formatter
}

// NewServices loads the User Log and wires the services. When cfg.Version is
// empty the build version is reported instead. archiver may be nil.
func NewServices(ctx context.Context, storages *store.Storages, archiver ExportArchiver, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	userLog, fresh, err := LoadOrDefault(ctx, storages.UserLogRepository)
	if err != nil {
		return nil, err
	}
	logger.Info().Bool("fresh", fresh).Int("users", userLog.Len()).Msg("user log loaded")

	if cfg.Version == "" {
		cfg.Version = buildInfo.BuildVersion()
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	formatter := NewFormatter(cfg.ChunkSize)
	logger.Info().Int("chunk_size", formatter.ChunkSize()).Msg("listing formatter ready")

	return &Services{
		RosterService:  NewRosterService(storages.RosterRepository, cfg, logger),
		UserLogService: NewUserLogService(userLog, cfg, archiver, logger),
		AppInfoService: appInfo,
		Formatter:      formatter,
	}, nil
}
