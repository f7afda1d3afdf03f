// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the webhook endpoint. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidSecretToken is returned when the
	// X-Telegram-Bot-Api-Secret-Token header does not match the configured
	// webhook secret.
	ErrInvalidSecretToken = errors.New("invalid webhook secret token")

	// ErrInvalidUpdate is returned when the request body is not a Telegram
	// update.
	ErrInvalidUpdate = errors.New("invalid update payload")
)
