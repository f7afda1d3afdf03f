// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NoHandle is stored in place of a display handle when the caller has no
// public username.
const NoHandle = "N/A"

// BotUser is one row of the User Log: a caller that has interacted with the
// bot. Rows are unique per exact (CallerID, Handle) pair, so a caller that
// changes their username is recorded a second time.
type BotUser struct {
	// CallerID is the Telegram user identifier.
	CallerID int64 `json:"user_id"`

	// Handle is "@username" or [NoHandle].
	Handle string `json:"username"`
}

// HandleFromUsername derives the stored display handle from a raw Telegram
// username. An empty username yields [NoHandle].
func HandleFromUsername(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return NoHandle
	}

	return "@" + strings.TrimPrefix(username, "@")
}

// TableName returns the name of the database table associated with the
// BotUser model.
func (u BotUser) TableName() string {
	return "bot_users"
}
