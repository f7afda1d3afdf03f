package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/service"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/models"
)

// chunkRule separates listing chunks, each of which the bot would send as
// its own message.
const chunkRule = "----------"

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <roll>",
		Short: "Print the record with the given roll number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := service.Classify(args[0])
			if query.Kind != models.QueryIdentifier {
				return fmt.Errorf("%w: %q is not a 5-9 digit roll number", service.ErrInvalidQuery, args[0])
			}

			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}

			roster, err := openRoster(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			record, err := roster.FindRecord(cmd.Context(), query.Text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), service.NewFormatter(cfg.App.ChunkSize).FormatRecord(record))
			return nil
		},
	}
}

func newSectionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "section <number>",
		Short: "List the records of a section sorted by roll number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}

			roster, err := openRoster(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			records, err := roster.ListCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			chunks := service.NewFormatter(cfg.App.ChunkSize).FormatListing(records)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chunks, chunkRule+"\n"))
			return nil
		},
	}
}

func openRoster(ctx context.Context, cfg *config.ToolConfig, log *logger.Logger) (service.RosterService, error) {
	repo, err := store.LoadRoster(ctx, cfg.Storage.Roster.Path, log)
	if err != nil {
		return nil, err
	}

	return service.NewRosterService(repo, cfg.App, log), nil
}
