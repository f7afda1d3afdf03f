// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-roster-bot/internal/adapter"
	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/utils"
	"github.com/MKhiriev/go-roster-bot/models"
)

// Poller fetches updates with getUpdates and hands them to an
// [UpdateHandler] one at a time, in the order Telegram delivered them.
type Poller struct {
	adapter  adapter.BotAdapter
	handler  UpdateHandler
	traceIDs utils.UUIDGenerator

	pollTimeout   time.Duration
	retryInterval time.Duration

	offset int64

	logger *logger.Logger
}

// NewPoller constructs a Poller. Non-positive intervals in cfg fall back to
// the package defaults of config.
func NewPoller(botAdapter adapter.BotAdapter, handler UpdateHandler, cfg config.Workers, logger *logger.Logger) *Poller {
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = config.DefaultPollTimeout
	}

	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = config.DefaultRetryInterval
	}

	return &Poller{
		adapter:       botAdapter,
		handler:       handler,
		pollTimeout:   pollTimeout,
		retryInterval: retryInterval,
		logger:        logger,
	}
}

// Run removes any webhook, since Telegram refuses getUpdates while one is
// set, and then polls until ctx is cancelled.
//
// Every received update advances the offset, including updates whose
// handling failed, so a poisoned update is never redelivered. Fetch errors
// are logged and retried after the retry interval, or after the wait
// Telegram asked for on flood control.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.adapter.DeleteWebhook(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return err
		}
		p.logger.Warn().Err(err).Msg("error deleting webhook before polling")
	}

	p.logger.Info().Dur("poll_timeout", p.pollTimeout).Msg("polling for updates")

	for {
		if ctx.Err() != nil {
			p.logger.Info().Int64("offset", p.Offset()).Msg("poller stopped")
			return nil
		}

		updates, err := p.adapter.GetUpdates(ctx, p.offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			if errors.Is(err, adapter.ErrUnauthorized) {
				return err
			}

			wait := p.retryInterval
			if retryAfter, ok := adapter.RetryAfter(err); ok {
				wait = retryAfter
			}
			p.logger.Err(err).Int64("offset", p.Offset()).Dur("retry_in", wait).Msg("error fetching updates")

			sleep(ctx, wait)
			continue
		}

		for _, update := range updates {
			p.handle(ctx, update)
			p.offset = update.UpdateID + 1
		}
	}
}

// Offset returns the id of the next update the poller will ask for.
func (p *Poller) Offset() int64 {
	return p.offset
}

func (p *Poller) handle(ctx context.Context, update models.Update) {
	var chatID int64
	if update.Message != nil {
		chatID = update.Message.Chat.ID
	}

	traceID := p.traceIDs.Generate()
	log := p.logger.ForUpdate(update.UpdateID, chatID, traceID)
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	if err := p.handler.HandleUpdate(ctx, update); err != nil {
		log.Err(err).Msg("error handling update")
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
