package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-roster-bot/internal/service"
	"github.com/MKhiriev/go-roster-bot/internal/store"
	"github.com/MKhiriev/go-roster-bot/internal/tabular"
)

func newUsersCmd(opts *options) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect the bot user log",
	}

	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the user log as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}

			ctx := log.WithContext(cmd.Context())

			repo, closeFn, err := store.OpenUserLog(ctx, cfg.Storage.UserLog, log)
			if err != nil {
				return err
			}
			defer closeFn()

			userLog, fresh, err := service.LoadOrDefault(ctx, repo)
			if err != nil {
				return err
			}
			if fresh {
				log.Warn().Msg("user log does not exist yet, exporting an empty table")
			}

			content, err := store.EncodeUserLog(userLog.Rows())
			if err != nil {
				return err
			}

			if err = tabular.WriteFile(ctx, out, content); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d users written to %s\n", userLog.Len(), out)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&out, "output", "o", service.ExportFileName, "output file")

	usersCmd.AddCommand(exportCmd)
	return usersCmd
}
