// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Update is an incoming Telegram update. Only message updates are consumed;
// every other update kind arrives with a nil Message and is skipped.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is the subset of a Telegram message the bot reads.
type Message struct {
	MessageID int64           `json:"message_id"`
	From      *TelegramUser   `json:"from,omitempty"`
	Chat      Chat            `json:"chat"`
	Date      int64           `json:"date"`
	Text      string          `json:"text,omitempty"`
	Entities  []MessageEntity `json:"entities,omitempty"`
}

// TelegramUser is the sender of a message.
type TelegramUser struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Chat identifies where replies must be sent.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// MessageEntity marks a special span of the message text.
type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// EntityBotCommand is the entity type Telegram assigns to "/command" spans.
const EntityBotCommand = "bot_command"

// Command returns the bot command the message starts with, lowercased and
// stripped of the leading slash and any "@botname" suffix. ok is false for
// plain text messages.
//
// When Telegram supplied entities, a command is recognised only if a
// bot_command entity starts at offset 0; otherwise a leading "/" is enough.
func (m *Message) Command() (string, bool) {
	if m == nil {
		return "", false
	}

	text := strings.TrimSpace(m.Text)
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	if len(m.Entities) > 0 {
		first := m.Entities[0]
		if first.Type != EntityBotCommand || first.Offset != 0 {
			return "", false
		}
	}

	cmd, _, _ := strings.Cut(text[1:], " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	cmd = strings.ToLower(strings.TrimSpace(cmd))
	if cmd == "" {
		return "", false
	}

	return cmd, true
}

// APIResponse is the envelope every Bot API method responds with.
type APIResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// ResponseParameters carries extra data attached to some API errors.
type ResponseParameters struct {
	// RetryAfter is the number of seconds to wait when flood control fires.
	RetryAfter int `json:"retry_after,omitempty"`
}

// SendMessageRequest is the JSON body of the sendMessage method.
type SendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SetWebhookRequest is the JSON body of the setWebhook method.
type SetWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}
