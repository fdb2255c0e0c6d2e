package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var withContent bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				entry, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if entry == nil {
					return fmt.Errorf("no entry with id %d", id)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Field", "Value"},
					[][]string{
						{"ID", strconv.FormatInt(entry.ID, 10)},
						{"Filename", entry.Filename},
						{"Name", entry.DocumentName},
						{"Author", entry.AuthorName},
						{"Date", entry.PublishDate},
						{"Media", entry.MediaFilename},
						{"Journal", entry.JournalName},
						{"Edition", entry.Edition},
						{"Added", entry.CreatedAt.Local().Format(time.RFC1123)},
					},
					[]columnAlignment{alignLeft, alignLeft},
				))
				if withContent && entry.Content != "" {
					fmt.Fprintln(out)
					fmt.Fprintln(out, entry.Content)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withContent, "content", false, "Print the extracted document text")
	return cmd
}
