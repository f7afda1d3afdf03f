package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	rosterPath  string
	userLogPath string
	userLogDSN  string
	logLevel    string
}

// setup builds the stderr logger and merges the flags over the defaults,
// .env and environment.
func (o *options) setup() (*config.ToolConfig, *logger.Logger, error) {
	log := logger.NewConsoleLogger("rosterctl")
	if err := logger.SetLevel(o.logLevel); err != nil {
		return nil, nil, err
	}

	cfg, err := config.GetToolConfig(config.ToolConfig{
		Storage: config.Storage{
			Roster:  config.Roster{Path: o.rosterPath},
			UserLog: config.UserLog{Path: o.userLogPath, DSN: o.userLogDSN},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Query the student roster and export the bot user log",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&opts.rosterPath, "roster", "", "roster file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&opts.userLogPath, "user-log", "", "user log file (.xlsx)")
	rootCmd.PersistentFlags().StringVar(&opts.userLogDSN, "user-log-dsn", "", "user log database DSN")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newLookupCmd(opts),
		newSectionCmd(opts),
		newUsersCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}
