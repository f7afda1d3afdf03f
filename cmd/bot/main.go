package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-roster-bot/internal/adapter"
	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/handler"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/server"
	"github.com/MKhiriev/go-roster-bot/internal/service"
	"github.com/MKhiriev/go-roster-bot/internal/storage"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/internal/workers"
	"github.com/MKhiriev/go-roster-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("roster-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	archiver, err := newArchiver(ctx, cfg.Storage.Archive, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating export archive")
	}

	services, err := service.NewServices(ctx, storages, archiver, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	botAdapter, err := adapter.NewTelegramAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating telegram adapter")
	}

	handlers, err := handler.NewHandlers(services, botAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	poller := workers.NewPoller(botAdapter, handlers.Bot, cfg.Workers, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(poller), botAdapter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		storages.Close()
		os.Exit(1)
	}
}

// newArchiver returns nil when no archive is configured. The result is typed
// as the interface so that a disabled archive stays a nil interface.
func newArchiver(ctx context.Context, cfg config.Archive, log *logger.Logger) (service.ExportArchiver, error) {
	if !cfg.Enabled() {
		log.Info().Msg("export archive disabled")
		return nil, nil
	}

	client, err := storage.NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	archive := storage.NewArchive(client, log)
	if err = archive.Prepare(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("bucket", client.Bucket()).Msg("export archive enabled")
	return archive, nil
}
