package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docshelf/internal/config"
	"docshelf/internal/matcher"
	"docshelf/internal/scanner"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "match [folder]",
		Short: "Pair documents with media files by filename similarity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := ctx.scanRoot(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				if err := config.ValidateThreshold(threshold); err != nil {
					return err
				}
			} else {
				threshold = cfg.Matching.SimilarityThreshold
			}

			result, err := scanner.Scan(root)
			if err != nil {
				return err
			}
			match := matcher.Match(result.Documents, result.Media, threshold)

			printMatchResult(cmd, match)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Similarity threshold (0.7-1.0, default from config)")
	return cmd
}

func printMatchResult(cmd *cobra.Command, match matcher.Result) {
	out := cmd.OutOrStdout()

	if len(match.Pairs) > 0 {
		rows := make([][]string, 0, len(match.Pairs))
		for _, pair := range match.Pairs {
			score := ""
			if pair.Type == matcher.MatchSimilarity {
				score = fmt.Sprintf("%.3f", pair.Similarity)
			}
			rows = append(rows, []string{
				pair.Document.Filename,
				pair.Media.Filename,
				string(pair.Type),
				score,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Document", "Media", "Match", "Score"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
		))
	}

	fmt.Fprintf(out, "%d paired, %d documents unmatched, %d media unmatched\n",
		len(match.Pairs), len(match.UnmatchedDocuments), len(match.UnmatchedMedia))

	for _, doc := range match.UnmatchedDocuments {
		fmt.Fprintf(out, "  unmatched document: %s\n", doc.Filename)
	}
	for _, media := range match.UnmatchedMedia {
		fmt.Fprintf(out, "  unmatched media: %s\n", media.Filename)
	}
	for _, stem := range match.DuplicateMediaStems {
		fmt.Fprintf(out, "warning: multiple media files share the stem %q; only the last one is used for exact matching\n", stem)
	}
}
