// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-roster-bot/internal/utils"
	"github.com/MKhiriev/go-roster-bot/models"
)

// secretTokenHeader carries the secret passed to setWebhook.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// maxUpdateSize bounds the webhook request body.
const maxUpdateSize = 1 << 20

// webhook receives one update pushed by Telegram.
//
// Once the update is decoded the endpoint always answers 200: Telegram
// redelivers on any other status, and a failed reply would fail again. The
// handling error is logged instead.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	if err := h.checkSecret(r); err != nil {
		h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("webhook call with a wrong secret token")
		w.WriteHeader(statusFromError(err))
		return
	}

	var update models.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	var chatID int64
	if update.Message != nil {
		chatID = update.Message.Chat.ID
	}

	// Replies to a long listing go out as several messages; the request
	// deadline must not cut them off halfway. Each adapter call carries its
	// own timeout.
	log := h.logger.ForUpdate(update.UpdateID, chatID, traceID)
	ctx := log.WithContext(context.WithoutCancel(r.Context()))

	if err := h.updates.HandleUpdate(ctx, update); err != nil {
		log.Err(err).Msg("error handling update")
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) checkSecret(r *http.Request) error {
	if h.webhookSecret == "" {
		return nil
	}

	got := r.Header.Get(secretTokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) != 1 {
		return ErrInvalidSecretToken
	}

	return nil
}
