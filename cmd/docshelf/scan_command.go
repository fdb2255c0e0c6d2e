package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"docshelf/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var listFiles bool

	cmd := &cobra.Command{
		Use:   "scan [folder]",
		Short: "Scan a folder for documents and media files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := ctx.scanRoot(args)
			if err != nil {
				return err
			}
			result, err := scanner.Scan(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %s\n", result.Root)
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Count", "Size"},
				[][]string{
					{"Folders", strconv.Itoa(result.TotalFolders), ""},
					{"Files", strconv.Itoa(result.TotalFiles), ""},
					{"Documents", strconv.Itoa(len(result.Documents)), humanize.Bytes(uint64(totalSize(result.Documents)))},
					{"Media", strconv.Itoa(len(result.Media)), humanize.Bytes(uint64(totalSize(result.Media)))},
				},
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))

			if listFiles {
				printFileList(cmd, "Documents", result.Documents)
				printFileList(cmd, "Media", result.Media)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listFiles, "list", "l", false, "List every classified file")
	return cmd
}

func totalSize(records []scanner.FileRecord) int64 {
	var total int64
	for _, record := range records {
		total += record.SizeBytes
	}
	return total
}

func printFileList(cmd *cobra.Command, title string, records []scanner.FileRecord) {
	if len(records) == 0 {
		return
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Filename,
			humanize.Bytes(uint64(record.SizeBytes)),
			humanize.Time(record.LastModified),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	fmt.Fprintln(out, renderTable(
		[]string{"Filename", "Size", "Modified"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
}
