// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the Telegram Bot
// API.
//
// The primary abstraction is [BotAdapter], which decouples the handlers and
// workers from the HTTP details. The package ships a resty-based
// implementation ([NewTelegramAdapter]).
//
// Failed calls are mapped by mapAPIError to an [*APIError] wrapping one of
// the sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrTooManyRequests] for 429) and [RetryAfter] to honour flood control.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-roster-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BotAdapter is the subset of the Telegram Bot API the bot uses.
type BotAdapter interface {
	// GetUpdates long-polls for updates with an id of at least offset,
	// waiting up to timeout for one to arrive.
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error)

	// SendMessage sends text to chatID as a plain message.
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendDocument uploads doc to chatID as a file.
	SendDocument(ctx context.Context, chatID int64, doc models.Document) error

	// SetWebhook asks Telegram to deliver updates to url. When secret is not
	// empty Telegram echoes it in the X-Telegram-Bot-Api-Secret-Token header.
	SetWebhook(ctx context.Context, url, secret string) error

	// DeleteWebhook switches the bot back to getUpdates delivery.
	DeleteWebhook(ctx context.Context) error
}
