// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-roster-bot/internal/adapter"
	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/service"
	"github.com/MKhiriev/go-roster-bot/models"
)

// Supported commands, without the leading slash.
const (
	commandStart = "start"
	commandHelp  = "help"
	commandUsers = "users"
)

// Handler answers Telegram updates. It is safe for concurrent use as long as
// the services are, which holds for the ones built by [service.NewServices].
type Handler struct {
	services *service.Services
	adapter  adapter.BotAdapter
	helpText string

	logger *logger.Logger
}

// NewHandler constructs a Handler replying through botAdapter.
func NewHandler(services *service.Services, botAdapter adapter.BotAdapter, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("bot handler created")
	return &Handler{
		services: services,
		adapter:  botAdapter,
		helpText: helpText(cfg.CategoryPrefix, cfg.CategorySeparator),
		logger:   logger,
	}
}

// HandleUpdate processes a single update. Updates without a text message are
// ignored. Service outcomes that have a user-facing meaning are answered in
// the chat; storage and transport failures are returned.
func (h *Handler) HandleUpdate(ctx context.Context, update models.Update) error {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return nil
	}

	if cmd, ok := msg.Command(); ok {
		return h.handleCommand(ctx, msg, cmd)
	}

	return h.handleQuery(ctx, msg)
}

func (h *Handler) handleCommand(ctx context.Context, msg *models.Message, cmd string) error {
	logger.FromContext(ctx).Debug().Str("command", cmd).Msg("command received")

	switch cmd {
	case commandStart:
		return h.start(ctx, msg)
	case commandUsers:
		return h.users(ctx, msg)
	case commandHelp:
		return h.reply(ctx, msg, h.helpText)
	default:
		logger.FromContext(ctx).Debug().Str("command", cmd).Msg("unknown command, answering with help")
		return h.reply(ctx, msg, h.helpText)
	}
}

// start records the caller and greets them with the help text. The greeting
// is sent even when the user log could not be written.
func (h *Handler) start(ctx context.Context, msg *models.Message) error {
	var recordErr error
	if msg.From != nil {
		handle := models.HandleFromUsername(msg.From.Username)
		if _, err := h.services.UserLogService.RecordFirstContact(ctx, msg.From.ID, handle); err != nil {
			recordErr = fmt.Errorf("error recording first contact: %w", err)
		}
	}

	return errors.Join(recordErr, h.reply(ctx, msg, h.helpText))
}

func (h *Handler) users(ctx context.Context, msg *models.Message) error {
	var callerID int64
	if msg.From != nil {
		callerID = msg.From.ID
	}

	doc, err := h.services.UserLogService.Export(ctx, callerID)
	if err != nil {
		return h.replyError(ctx, msg, err)
	}

	if err = h.adapter.SendDocument(ctx, msg.Chat.ID, doc); err != nil {
		return fmt.Errorf("error sending export: %w", err)
	}

	return nil
}

func (h *Handler) handleQuery(ctx context.Context, msg *models.Message) error {
	query := service.Classify(msg.Text)

	switch query.Kind {
	case models.QueryIdentifier:
		record, err := h.services.RosterService.FindRecord(ctx, query.Text)
		if err != nil {
			return h.replyError(ctx, msg, err)
		}
		return h.reply(ctx, msg, h.services.Formatter.FormatRecord(record))

	case models.QueryCategory:
		records, err := h.services.RosterService.ListCategory(ctx, query.Text)
		if err != nil {
			return h.replyError(ctx, msg, err)
		}
		for _, chunk := range h.services.Formatter.FormatListing(records) {
			if err = h.reply(ctx, msg, chunk); err != nil {
				return err
			}
		}
		return nil

	default:
		return h.reply(ctx, msg, textInvalidQuery)
	}
}

// replyError answers err in the chat when it maps to a user-facing text and
// returns it unchanged otherwise.
func (h *Handler) replyError(ctx context.Context, msg *models.Message, err error) error {
	text, ok := replyFromError(err)
	if !ok {
		return err
	}

	return h.reply(ctx, msg, text)
}

func (h *Handler) reply(ctx context.Context, msg *models.Message, text string) error {
	if err := h.adapter.SendMessage(ctx, msg.Chat.ID, text); err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}

	return nil
}
