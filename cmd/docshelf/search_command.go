package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var filter catalog.Filter

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				entries, err := store.Search(cmd.Context(), filter)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No matching documents")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						strconv.FormatInt(entry.ID, 10),
						entry.Filename,
						entry.DocumentName,
						entry.AuthorName,
						entry.PublishDate,
						entry.MediaFilename,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Filename", "Name", "Author", "Date", "Media"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d result(s)\n", len(entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.Filename, "filename", "", "Match filename substring")
	cmd.Flags().StringVar(&filter.DocumentName, "name", "", "Match document name substring")
	cmd.Flags().StringVar(&filter.AuthorName, "author", "", "Match author substring")
	cmd.Flags().StringVar(&filter.MediaFilename, "media", "", "Match media filename substring")
	cmd.Flags().StringVar(&filter.StartDate, "from", "", "Earliest publish date (inclusive)")
	cmd.Flags().StringVar(&filter.EndDate, "to", "", "Latest publish date (inclusive)")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "Maximum results to show")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Results to skip")
	return cmd
}
