package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/tabular"
	"github.com/MKhiriev/go-roster-bot/models"
)

// User log spreadsheet columns.
const (
	ColumnUserID   = "user_id"
	ColumnUsername = "username"
)

// userLogFileRepository keeps the User Log in a single-sheet XLSX workbook
// that is rewritten in full on every Save.
type userLogFileRepository struct {
	path   string
	logger *logger.Logger
}

// NewUserLogFileRepository constructs a [UserLogRepository] backed by the
// spreadsheet at path. The file is not touched until the first Load or Save.
func NewUserLogFileRepository(path string, logger *logger.Logger) UserLogRepository {
	logger.Debug().Str("path", path).Msg("creating user log file repository")
	return &userLogFileRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the workbook. The file is always decoded as XLSX, whatever its
// extension, since that is what Save writes. A missing file reports
// exists == false with no error. Rows whose user_id is not an integer are
// skipped with a warning.
func (r *userLogFileRepository) Load(ctx context.Context) ([]models.BotUser, bool, error) {
	log := logger.FromContext(ctx)

	table, err := r.read(ctx)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("func", "*userLogFileRepository.Load").Str("path", r.path).Msg("user log file does not exist yet")
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userLogFileRepository.Load").Msg("error reading user log file")
		return nil, false, fmt.Errorf("error reading user log: %w", err)
	}

	idCol, handleCol := table.Column(ColumnUserID), table.Column(ColumnUsername)
	if idCol < 0 || handleCol < 0 {
		return nil, true, fmt.Errorf("%w in %s", ErrUserLogColumnMissing, r.path)
	}

	users := make([]models.BotUser, 0, table.Len())
	for i := range table.Rows {
		raw := table.Cell(i, idCol)
		callerID, err := strconv.ParseInt(NormalizeID(raw), 10, 64)
		if err != nil {
			log.Warn().Str("func", "*userLogFileRepository.Load").Int("row", i+2).Str("user_id", raw).Msg("skipping user log row with invalid id")
			continue
		}

		handle := table.Cell(i, handleCol)
		if handle == "" {
			handle = models.NoHandle
		}

		users = append(users, models.BotUser{CallerID: callerID, Handle: handle})
	}

	return users, true, nil
}

func (r *userLogFileRepository) read(ctx context.Context) (tabular.Table, error) {
	if err := ctx.Err(); err != nil {
		return tabular.Table{}, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("error opening %s: %w", r.path, err)
	}
	defer f.Close()

	return tabular.ReadXLSX(f)
}

// Save writes users to the workbook, replacing the previous file atomically.
func (r *userLogFileRepository) Save(ctx context.Context, users []models.BotUser) error {
	content, err := EncodeUserLog(users)
	if err != nil {
		return err
	}

	if err = tabular.WriteFile(ctx, r.path, content); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userLogFileRepository.Save").Msg("error writing user log file")
		return fmt.Errorf("error writing user log: %w", err)
	}

	return nil
}

// EncodeUserLog renders users as an XLSX workbook with the user_id and
// username columns. user_id cells are stored as numbers.
func EncodeUserLog(users []models.BotUser) ([]byte, error) {
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{u.CallerID, u.Handle})
	}

	content, err := tabular.EncodeXLSX([]string{ColumnUserID, ColumnUsername}, rows)
	if err != nil {
		return nil, fmt.Errorf("error encoding user log: %w", err)
	}

	return content, nil
}
