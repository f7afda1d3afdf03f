package bot

import (
	"errors"

	"github.com/MKhiriev/go-roster-bot/internal/service"
)

var errorReplyMap = map[error]string{
	service.ErrInvalidQuery:     textInvalidQuery,
	service.ErrRecordNotFound:   textRecordNotFound,
	service.ErrCategoryNotFound: textCategoryNotFound,
	service.ErrForbidden:        textForbidden,
}

// replyFromError returns the text a caller sees for a service error. ok is
// false for errors that have no user-facing meaning; those are returned to
// the transport to be logged.
func replyFromError(err error) (string, bool) {
	for target, text := range errorReplyMap {
		if errors.Is(err, target) {
			return text, true
		}
	}
	return "", false
}
