package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// IDList is a comma separated list of int64 identifiers.
// It implements the flag.Value interface.
type IDList []int64

// ParseFlags parses the bot command-line flags from args.
//
// Flags:
//
//	-a               http server address in format [host]:[port]
//	-roster          roster file path (.csv or .xlsx)
//	-user-log        user log spreadsheet path
//	-d               user log database DSN
//	-driver          user log database driver (sqlite3 or pgx)
//	-token           telegram bot token
//	-admin           comma separated privileged telegram user ids
//	-chunk-size      records per outbound message
//	-webhook-url     public webhook URL (enables webhook mode)
//	-webhook-secret  webhook secret token
//	-request-timeout telegram request timeout (e.g. "10s")
//	-poll-timeout    long-poll timeout (e.g. "30s")
//	-log-level       zerolog level
//	-c/-config       json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var admins IDList
	var rosterPath, userLogPath, databaseDSN, driver string
	var token, webhookURL, webhookSecret, logLevel string
	var jsonConfigPath string
	var chunkSize int
	var requestTimeout, pollTimeout time.Duration

	fs := flag.NewFlagSet("bot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&rosterPath, "roster", "", "Roster file path")
	fs.StringVar(&userLogPath, "user-log", "", "User log spreadsheet path")
	fs.StringVar(&databaseDSN, "d", "", "User log database DSN")
	fs.StringVar(&driver, "driver", "", "User log database driver")
	fs.StringVar(&token, "token", "", "Telegram bot token")
	fs.Var(&admins, "admin", "Comma separated privileged user ids")
	fs.IntVar(&chunkSize, "chunk-size", 0, "Records per outbound message")
	fs.StringVar(&webhookURL, "webhook-url", "", "Public webhook URL")
	fs.StringVar(&webhookSecret, "webhook-secret", "", "Webhook secret token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Telegram request timeout (e.g., 10s)")
	fs.DurationVar(&pollTimeout, "poll-timeout", 0, "Long-poll timeout (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AdminIDs:  admins,
			ChunkSize: chunkSize,
			LogLevel:  logLevel,
		},
		Storage: Storage{
			Roster: Roster{Path: rosterPath},
			UserLog: UserLog{
				Path:   userLogPath,
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Adapter: Adapter{
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			WebhookURL:    webhookURL,
			WebhookSecret: webhookSecret,
		},
		Workers: Workers{
			PollTimeout: pollTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces) or "localhost"; anything else must
// be an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String joins the identifiers with commas.
func (l *IDList) String() string {
	if l == nil {
		return ""
	}

	parts := make([]string, 0, len(*l))
	for _, id := range *l {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	return strings.Join(parts, ",")
}

// Set appends every comma separated identifier of s to the list.
func (l *IDList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", part, err)
		}
		*l = append(*l, id)
	}

	return nil
}
