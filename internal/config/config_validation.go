// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the bot relies on at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.Token) == "" {
		return fmt.Errorf("%w: telegram token is empty", ErrInvalidAdapterConfigs)
	}

	if len(cfg.App.AdminIDs) == 0 {
		return fmt.Errorf("%w: at least one admin id is required", ErrInvalidAppConfigs)
	}

	if err := validateApp(cfg.App); err != nil {
		return err
	}

	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}

	if cfg.Server.WebhookMode() && cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: webhook url requires an http address", ErrInvalidServerConfigs)
	}

	if !cfg.Server.WebhookMode() && cfg.Workers.PollTimeout < 0 {
		return fmt.Errorf("%w: negative poll timeout", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ToolConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}

	return validateStorage(cfg.Storage)
}

func validateApp(app App) error {
	if app.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidAppConfigs, app.ChunkSize)
	}

	return nil
}

func validateStorage(storage Storage) error {
	if strings.TrimSpace(storage.Roster.Path) == "" {
		return fmt.Errorf("%w: roster path is empty", ErrInvalidStorageConfigs)
	}

	userLog := storage.UserLog
	if !userLog.UsesDatabase() {
		if strings.TrimSpace(userLog.Path) == "" {
			return fmt.Errorf("%w: user log needs a path or a dsn", ErrInvalidStorageConfigs)
		}
		return nil
	}

	switch userLog.ResolvedDriver() {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("%w: unsupported user log driver %q", ErrInvalidStorageConfigs, userLog.Driver)
	}
}
