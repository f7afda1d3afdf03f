// Package server wires and runs the bot's long-running components.
//
// It owns the lifecycle of the HTTP server (health, version and the
// Telegram webhook) and of the background workers (the long-poll loop),
// including startup, webhook registration, signal handling and graceful
// shutdown.
package server
