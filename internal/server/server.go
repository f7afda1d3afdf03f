package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-roster-bot/internal/adapter"
	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/handler"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	adapter adapter.BotAdapter
	cfg     config.Server

	logger *logger.Logger
}

// NewServer assembles the runtime. The HTTP server is created when an
// address is configured. Workers run only in polling mode; in webhook mode
// updates arrive through the HTTP server instead.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, botAdapter adapter.BotAdapter, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		adapter: botAdapter,
		cfg:     cfg,
		logger:  logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if !cfg.WebhookMode() && bgWorkers != nil && bgWorkers.Len() > 0 {
		s.workers = bgWorkers
	}

	if s.httpServer == nil && s.workers == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run starts every component and waits until ctx is done or one of them
// fails, then shuts the HTTP server down.
func (s *server) run(ctx context.Context) error {
	if s.cfg.WebhookMode() {
		if err := s.adapter.SetWebhook(ctx, s.cfg.WebhookURL, s.cfg.WebhookSecret); err != nil {
			return fmt.Errorf("%w: %w", errWebhookRegistration, err)
		}
		s.logger.Info().Str("url", s.cfg.WebhookURL).Msg("webhook registered")
	}

	eg, egCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.cfg.HTTPAddress).Msg("Launching HTTP server")
		eg.Go(s.httpServer.RunServer)
		eg.Go(func() error {
			<-egCtx.Done()
			s.Shutdown()
			return nil
		})
	}

	if s.workers != nil {
		s.logger.Info().Int("workers", s.workers.Len()).Msg("Launching workers")
		eg.Go(func() error {
			return s.workers.Run(egCtx)
		})
	}

	return eg.Wait()
}
