// Package workers provides the background workers of the bot and the
// Workers aggregate that runs them together.
//
// The only worker today is the [Poller], which long-polls Telegram when the
// bot is not in webhook mode.
package workers

import (
	"context"

	"github.com/MKhiriev/go-roster-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker stopped by
// cancellation returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// UpdateHandler processes a single Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update models.Update) error
}
