package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				count, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}

				dbSize := ""
				if info, statErr := os.Stat(store.Path()); statErr == nil {
					dbSize = humanize.Bytes(uint64(info.Size()))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Documents:  %d\n", count)
				fmt.Fprintf(out, "Database:   %s", store.Path())
				if dbSize != "" {
					fmt.Fprintf(out, " (%s)", dbSize)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Library:    %s\n", cfg.Paths.DataRoot)
				return nil
			})
		},
	}
}
