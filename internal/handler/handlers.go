package handler

import (
	"github.com/MKhiriev/go-roster-bot/internal/adapter"
	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/handler/bot"
	"github.com/MKhiriev/go-roster-bot/internal/handler/http"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/service"
)

// Handlers groups the update handler and the optional HTTP surface.
type Handlers struct {
	Bot  *bot.Handler
	HTTP *http.Handler
}

// NewHandlers builds the bot handler and, when an HTTP address is
// configured, the HTTP handler that serves the webhook on top of it.
func NewHandlers(services *service.Services, botAdapter adapter.BotAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || botAdapter == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		Bot: bot.NewHandler(services, botAdapter, cfg.App, logger),
	}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, handlers.Bot, cfg.Server, logger)
	}

	return handlers, nil
}
