package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8443", expectedAddr: NetAddress{Port: 8443}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestIDList_Set(t *testing.T) {
	var ids IDList
	require.NoError(t, ids.Set("1, 2,,3"))
	require.NoError(t, ids.Set("4"))

	assert.Equal(t, IDList{1, 2, 3, 4}, ids)
	assert.Equal(t, "1,2,3,4", ids.String())

	assert.Error(t, ids.Set("admin"))
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-roster", "roster.csv",
		"-user-log", "users.xlsx",
		"-d", "postgres://bot@localhost/bot",
		"-driver", "pgx",
		"-token", "123:abc",
		"-admin", "10,20",
		"-chunk-size", "15",
		"-webhook-url", "https://bot.example.com/telegram/webhook",
		"-webhook-secret", "s3cret",
		"-request-timeout", "5s",
		"-poll-timeout", "50s",
		"-log-level", "info",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "roster.csv", cfg.Storage.Roster.Path)
	assert.Equal(t, "users.xlsx", cfg.Storage.UserLog.Path)
	assert.Equal(t, "postgres://bot@localhost/bot", cfg.Storage.UserLog.DSN)
	assert.Equal(t, "pgx", cfg.Storage.UserLog.Driver)
	assert.Equal(t, "123:abc", cfg.Adapter.Token)
	assert.Equal(t, []int64{10, 20}, cfg.App.AdminIDs)
	assert.Equal(t, 15, cfg.App.ChunkSize)
	assert.Equal(t, "https://bot.example.com/telegram/webhook", cfg.Server.WebhookURL)
	assert.Equal(t, "s3cret", cfg.Server.WebhookSecret)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 50*time.Second, cfg.Workers.PollTimeout)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.App.AdminIDs)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}
