package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
	"docshelf/internal/ingest"
	"docshelf/internal/matcher"
	"docshelf/internal/scanner"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "ingest [folder]",
		Short: "Scan a folder, pair files, and catalog every document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				if cmd.Flags().Changed("threshold") {
					if err := config.ValidateThreshold(threshold); err != nil {
						return err
					}
				} else {
					threshold = cfg.Matching.SimilarityThreshold
				}

				root, err := ctx.scanRoot(args)
				if err != nil {
					return err
				}
				result, err := scanner.Scan(root)
				if err != nil {
					return err
				}
				match := matcher.Match(result.Documents, result.Media, threshold)

				total := len(match.Pairs) + len(match.UnmatchedDocuments)
				if total == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No documents found")
					return nil
				}

				bar := progressbar.NewOptions(total,
					progressbar.OptionSetDescription("Cataloging"),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionClearOnFinish(),
				)
				summary, err := ingest.Batch(cmd.Context(), store, match, ctx.log(), ingest.BatchOptions{
					Progress: func(done, total int) {
						_ = bar.Set(done)
					},
				})
				_ = bar.Finish()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Cataloged %d of %d documents (%d paired with media)\n",
					summary.Inserted, summary.Total, len(match.Pairs))
				for _, failure := range summary.Failures {
					fmt.Fprintf(out, "  skipped %s: %v\n", failure.Filename, failure.Err)
				}
				for _, stem := range match.DuplicateMediaStems {
					fmt.Fprintf(out, "warning: multiple media files share the stem %q\n", stem)
				}
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Similarity threshold (0.7-1.0, default from config)")
	return cmd
}
