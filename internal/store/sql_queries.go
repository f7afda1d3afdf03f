package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-roster-bot/models"
)

// insertBatchSize keeps every INSERT below SQLite's default limit of 999
// bind variables (three per row).
const insertBatchSize = 300

var userLogTable = models.BotUser{}.TableName()

func buildSelectUsersQuery(format sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("user_id", "username").
		From(userLogTable).
		OrderBy("position").
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteUsersQuery(format sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Delete(userLogTable).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUsersQuery inserts users as one multi-row statement. position
// of the first row is offset, so batches keep the global table order.
func buildInsertUsersQuery(format sq.PlaceholderFormat, offset int, users []models.BotUser) (string, []any, error) {
	builder := sq.Insert(userLogTable).
		Columns("position", "user_id", "username").
		PlaceholderFormat(format)

	for i, u := range users {
		builder = builder.Values(int64(offset+i), u.CallerID, u.Handle)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
