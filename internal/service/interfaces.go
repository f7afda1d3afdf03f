package service

import (
	"context"

	"github.com/MKhiriev/go-roster-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RosterService answers identifier and category queries against the roster.
type RosterService interface {
	// FindRecord returns the first record whose identifier equals id, or
	// [ErrRecordNotFound].
	FindRecord(ctx context.Context, id string) (models.Record, error)
	// ListCategory returns the records of the category named by the 1-2
	// digit raw section number, sorted by identifier, or
	// [ErrCategoryNotFound].
	ListCategory(ctx context.Context, raw string) ([]models.Record, error)
	// Size returns the number of roster records.
	Size() int
}

// UserLogService records callers and exports the User Log.
type UserLogService interface {
	// RecordFirstContact adds the (callerID, handle) pair unless it is
	// already present and reports whether a row was added.
	RecordFirstContact(ctx context.Context, callerID int64, handle string) (bool, error)
	// Export persists and renders the User Log for a privileged caller.
	// Other callers get [ErrForbidden].
	Export(ctx context.Context, callerID int64) (models.Document, error)
	// IsPrivileged reports whether callerID may run privileged commands.
	IsPrivileged(callerID int64) bool
	// Count returns the number of User Log rows.
	Count() int
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ExportArchiver keeps a copy of every export and returns where it went.
type ExportArchiver interface {
	Store(ctx context.Context, doc models.Document) (string, error)
}
