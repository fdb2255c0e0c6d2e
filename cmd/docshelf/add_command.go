package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
	"docshelf/internal/ingest"
	"docshelf/internal/metadata"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var mediaPath string
	var author string
	var date string

	cmd := &cobra.Command{
		Use:   "add <document>",
		Short: "Copy a document into the library and catalog it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, err := resolveExistingFile(args[0])
			if err != nil {
				return err
			}
			media := ""
			if mediaPath != "" {
				media, err = resolveExistingFile(mediaPath)
				if err != nil {
					return err
				}
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				entry, err := ingest.File(cmd.Context(), cfg, store, ingest.AddRequest{
					DocumentPath: docPath,
					MediaPath:    media,
					Overrides: metadata.Overrides{
						AuthorName:  author,
						PublishDate: date,
					},
				}, ctx.log())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Cataloged %s as entry #%d\n", entry.Filename, entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&mediaPath, "media", "m", "", "Companion media file to store alongside the document")
	cmd.Flags().StringVar(&author, "author", "", "Author name (overrides filename parsing)")
	cmd.Flags().StringVar(&date, "date", "", "Publish date (overrides filename parsing)")
	return cmd
}

func resolveExistingFile(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s", absPath)
		}
		return "", fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}
	return absPath, nil
}
