// Package http implements the HTTP surface of the bot.
//
// It exposes the Telegram webhook endpoint and a small operational API
// (health and version). Request tracing and access logging are applied as
// chi middleware before requests reach the handlers; webhook updates are then
// delegated to the bot handler, the same one the long-poll worker uses.
package http
