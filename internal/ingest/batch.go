package ingest

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"docshelf/internal/catalog"
	"docshelf/internal/docreader"
	"docshelf/internal/logging"
	"docshelf/internal/matcher"
	"docshelf/internal/metadata"
)

// Failure records one document that could not be cataloged.
type Failure struct {
	Filename string
	Err      error
}

// Summary reports the outcome of a batch run.
type Summary struct {
	BatchID  string
	Total    int
	Inserted int
	Failed   int
	Failures []Failure
}

// BatchOptions tunes a batch run. Progress, when set, is called after
// each document is processed.
type BatchOptions struct {
	Progress func(done, total int)
}

type batchItem struct {
	document      matcher.Pair
	mediaFilename string
}

// Batch catalogs every document from a matching run: paired documents
// carry their media filename, unmatched documents are recorded without
// one. A failure on one document never aborts the rest; each failure is
// collected on the summary. Only context cancellation stops the run
// early, returning the partial summary alongside the context error.
func Batch(ctx context.Context, store *catalog.Store, match matcher.Result, logger *slog.Logger, opts BatchOptions) (Summary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	summary := Summary{
		BatchID: uuid.NewString(),
		Total:   len(match.Pairs) + len(match.UnmatchedDocuments),
	}
	log := logger.With(logging.String("component", "ingest"), logging.String("batch_id", summary.BatchID))
	log.Info("batch started",
		logging.Int("pairs", len(match.Pairs)),
		logging.Int("unmatched_documents", len(match.UnmatchedDocuments)))

	items := make([]batchItem, 0, summary.Total)
	for _, pair := range match.Pairs {
		items = append(items, batchItem{document: pair, mediaFilename: pair.Media.Filename})
	}
	for _, doc := range match.UnmatchedDocuments {
		items = append(items, batchItem{document: matcher.Pair{Document: doc}})
	}

	done := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			log.Warn("batch canceled",
				logging.Int("inserted", summary.Inserted),
				logging.Int("failed", summary.Failed))
			return summary, err
		}

		doc := item.document.Document
		meta := metadata.Resolve(doc.Stem)
		entry := &catalog.Entry{
			Filename:      doc.Filename,
			MediaFilename: item.mediaFilename,
			DocumentName:  meta.DocumentName,
			AuthorName:    meta.AuthorName,
			PublishDate:   meta.PublishDate,
			Content:       docreader.Content(doc.AbsolutePath),
		}

		if err := store.Insert(ctx, entry); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Filename: doc.Filename, Err: err})
			level := slog.LevelWarn
			if errors.Is(err, catalog.ErrDuplicateFilename) {
				level = slog.LevelInfo
			}
			log.Log(ctx, level, "document skipped",
				logging.String("filename", doc.Filename),
				logging.Error(err))
		} else {
			summary.Inserted++
			log.Debug("document cataloged",
				logging.String("filename", doc.Filename),
				logging.Int64("id", entry.ID))
		}

		done++
		if opts.Progress != nil {
			opts.Progress(done, summary.Total)
		}
	}

	log.Info("batch finished",
		logging.Int("inserted", summary.Inserted),
		logging.Int("failed", summary.Failed))
	return summary, nil
}
