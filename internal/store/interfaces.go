package store

import (
	"context"

	"github.com/MKhiriev/go-roster-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RosterRepository gives read-only access to the loaded roster.
type RosterRepository interface {
	// FindByID returns the first record whose identifier equals id, or
	// [ErrRecordNotFound].
	FindByID(ctx context.Context, id string) (models.Record, error)
	// FindByCategory returns, in load order, every record whose category
	// label contains token. The slice is freshly allocated on each call.
	FindByCategory(ctx context.Context, token string) ([]models.Record, error)
	// Count returns the number of loaded records.
	Count() int
}

// UserLogRepository persists the User Log as a whole table.
type UserLogRepository interface {
	// Load returns every stored row in insertion order. exists is false when
	// the durable table has never been written; that is not an error.
	Load(ctx context.Context) (users []models.BotUser, exists bool, err error)
	// Save replaces the durable table with users.
	Save(ctx context.Context, users []models.BotUser) error
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
