// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// Supported user log SQL drivers. The names are the database/sql driver names
// registered by the imported driver packages.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StructuredConfig is the top-level configuration container for the roster
// bot. It aggregates all sub-configurations and is populated by merging
// defaults, a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds query and presentation settings and the privileged caller
	// identifiers.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the roster, the user log and the
	// optional export archive.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the Telegram Bot API credentials and client settings.
	Adapter Adapter `envPrefix:"TELEGRAM_"`

	// Server holds the HTTP listener and webhook settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds long-polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AdminIDs lists the Telegram user identifiers allowed to run the
	// privileged /users command.
	// Env: APP_ADMIN_IDS (comma separated)
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// ChunkSize is the maximum number of rendered records joined into one
	// outbound message.
	// Env: APP_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`

	// CategoryPrefix is the literal placed before the padded section number
	// when building a category token (e.g. "CSE").
	// Env: APP_CATEGORY_PREFIX
	CategoryPrefix string `env:"CATEGORY_PREFIX"`

	// CategorySeparator joins CategoryPrefix and the section number.
	// Env: APP_CATEGORY_SEPARATOR
	CategorySeparator string `env:"CATEGORY_SEPARATOR"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of every persisted artifact.
type Storage struct {
	// Roster is the read-only dataset.
	Roster Roster `envPrefix:"ROSTER_"`

	// UserLog is the owned table of callers.
	UserLog UserLog `envPrefix:"USER_LOG_"`

	// Archive is the optional object storage that keeps a copy of every
	// admin export.
	Archive Archive `envPrefix:"ARCHIVE_"`
}

// Roster locates the roster artifact.
type Roster struct {
	// Path is a .csv or .xlsx file with a header row.
	// Env: STORAGE_ROSTER_PATH
	Path string `env:"PATH"`
}

// UserLog locates the user log. When DSN is set the log lives in a SQL
// table, otherwise in the spreadsheet at Path.
type UserLog struct {
	// Path is the .xlsx file the log is rewritten to on every change.
	// Env: STORAGE_USER_LOG_PATH
	Path string `env:"PATH"`

	// Driver is the database/sql driver name; see [DriverSQLite] and
	// [DriverPostgres]. Inferred from DSN when empty.
	// Env: STORAGE_USER_LOG_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name of the SQL backend.
	// Env: STORAGE_USER_LOG_DSN
	DSN string `env:"DSN"`
}

// UsesDatabase reports whether the user log is kept in a SQL table.
func (u UserLog) UsesDatabase() bool {
	return strings.TrimSpace(u.DSN) != ""
}

// ResolvedDriver returns Driver or, when it is empty, the driver implied by
// the DSN scheme.
func (u UserLog) ResolvedDriver() string {
	if u.Driver != "" {
		return u.Driver
	}

	dsn := strings.ToLower(u.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}

	return DriverSQLite
}

// Archive holds the S3-compatible object storage settings.
type Archive struct {
	// Env: STORAGE_ARCHIVE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_ARCHIVE_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
	// Env: STORAGE_ARCHIVE_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: STORAGE_ARCHIVE_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_ARCHIVE_USE_SSL
	UseSSL bool `env:"USE_SSL"`
}

// Enabled reports whether exports should be archived.
func (a Archive) Enabled() bool {
	return a.Endpoint != "" && a.Bucket != ""
}

// Adapter holds the Telegram Bot API client settings.
type Adapter struct {
	// Token is the bot access token issued by @BotFather.
	// Env: TELEGRAM_TOKEN
	Token string `env:"TOKEN"`

	// BaseURL is the Bot API root, overridable for a local Bot API server.
	// Env: TELEGRAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every non-polling API call.
	// Env: TELEGRAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the inbound HTTP listener.
type Server struct {
	// HTTPAddress is the "host:port" the health and webhook endpoints are
	// served on. Empty disables the HTTP server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WebhookURL is the public URL Telegram posts updates to. When set the
	// bot runs in webhook mode instead of long polling.
	// Env: SERVER_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// WebhookSecret is echoed by Telegram in the
	// X-Telegram-Bot-Api-Secret-Token header of every webhook call.
	// Env: SERVER_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// WebhookMode reports whether updates are delivered by webhook.
func (s Server) WebhookMode() bool {
	return s.WebhookURL != ""
}

// Workers holds long-polling settings.
type Workers struct {
	// PollTimeout is the getUpdates long-poll timeout.
	// Env: WORKERS_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`

	// RetryInterval is the pause after a failed getUpdates call.
	// Env: WORKERS_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the bot configuration.
// Sources are applied in the following order, later sources overriding
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags (os.Args)
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
