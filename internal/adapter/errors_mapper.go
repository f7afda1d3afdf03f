package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-roster-bot/models"
)

// mapAPIError converts a non-ok Bot API response into an [*APIError]. A nil
// envelope or one without error_code falls back to the HTTP status.
func mapAPIError(statusCode int, envelope models.APIResponse) error {
	if envelope.OK {
		return nil
	}

	code := envelope.ErrorCode
	if code == 0 {
		code = statusCode
	}

	description := strings.TrimSpace(envelope.Description)
	if description == "" {
		description = http.StatusText(code)
	}

	apiErr := &APIError{StatusCode: code, Description: description}
	if envelope.Parameters != nil && envelope.Parameters.RetryAfter > 0 {
		apiErr.RetryAfter = time.Duration(envelope.Parameters.RetryAfter) * time.Second
	}

	switch code {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusTooManyRequests:
		apiErr.kind = ErrTooManyRequests
	default:
		apiErr.kind = ErrAPI
	}

	return apiErr
}

// redactedToken replaces the bot token in URLs that end up in errors.
const redactedToken = "<redacted>"

// transportError wraps a failed request. The request URL carries the bot
// token in its path, so it is redacted in any [*url.Error] before the error
// leaves the adapter.
func transportError(method string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactURL(urlErr.URL)
	}

	return fmt.Errorf("%s request: %w", method, err)
}

// redactURL rewrites ".../bot<token>/method" to ".../bot<redacted>/method".
func redactURL(raw string) string {
	start := strings.LastIndex(raw, "/bot")
	if start < 0 {
		return raw
	}
	start += len("/bot")

	end := strings.IndexByte(raw[start:], '/')
	if end < 0 {
		return raw[:start] + redactedToken
	}

	return raw[:start] + redactedToken + raw[start+end:]
}
