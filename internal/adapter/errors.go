package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidConfig = errors.New("invalid telegram adapter config")

	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("bot token rejected")
	ErrForbidden       = errors.New("bot was blocked or lacks rights")
	ErrNotFound        = errors.New("method not found")
	ErrConflict        = errors.New("conflicting update delivery")
	ErrTooManyRequests = errors.New("too many requests")
	ErrAPI             = errors.New("telegram api error")
)

// APIError is a failed Bot API call. It unwraps to one of the sentinel
// errors of this package.
type APIError struct {
	StatusCode  int
	Description string
	// RetryAfter is how long Telegram asked to wait before retrying; zero
	// when not given.
	RetryAfter time.Duration

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Description)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// RetryAfter returns the wait Telegram requested in err, if any.
func RetryAfter(err error) (time.Duration, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return apiErr.RetryAfter, true
	}

	return 0, false
}
