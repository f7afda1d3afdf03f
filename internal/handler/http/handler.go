package http

import (
	"context"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/service"
	"github.com/MKhiriev/go-roster-bot/models"
)

// UpdateHandler processes a single Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update models.Update) error
}

type Handler struct {
	services *service.Services
	updates  UpdateHandler

	webhookSecret string

	logger *logger.Logger
}

func NewHandler(services *service.Services, updates UpdateHandler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		updates:       updates,
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}
