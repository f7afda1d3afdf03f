package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. The concrete reason is wrapped around them.
var (
	// ErrInvalidAdapterConfigs indicates invalid Telegram settings
	// (for example, a missing bot token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, no roster path or an unsupported SQL driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, no privileged user id or a non-positive chunk size).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP or webhook settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid long-polling settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
