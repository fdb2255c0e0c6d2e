package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"docshelf/internal/catalog"
	"docshelf/internal/config"
	"docshelf/internal/docreader"
	"docshelf/internal/fileutil"
	"docshelf/internal/logging"
	"docshelf/internal/metadata"
	"docshelf/internal/scanner"
	"docshelf/internal/textutil"
)

var (
	// ErrUnsupportedDocument reports a document extension outside the
	// recognized set.
	ErrUnsupportedDocument = errors.New("unsupported document extension")
	// ErrUnsupportedMedia reports a media extension outside the
	// recognized set.
	ErrUnsupportedMedia = errors.New("unsupported media extension")
)

// AddRequest describes one document to bring into the library.
// MediaPath is optional. Overrides replace the corresponding fields
// that would otherwise come from filename parsing.
type AddRequest struct {
	DocumentPath string
	MediaPath    string
	Overrides    metadata.Overrides
}

// File copies the request's files into the library directories and
// catalogs the document. If the catalog insert fails, any file placed
// by this call is removed again so the library holds no orphans.
func File(ctx context.Context, cfg *config.Config, store *catalog.Store, req AddRequest, logger *slog.Logger) (*catalog.Entry, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	log := logger.With(logging.String("component", "ingest"))

	docName := filepath.Base(req.DocumentPath)
	if !scanner.IsDocumentExtension(textutil.Extension(docName)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, docName)
	}
	var mediaName string
	if req.MediaPath != "" {
		mediaName = filepath.Base(req.MediaPath)
		if !scanner.IsMediaExtension(textutil.Extension(mediaName)) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, mediaName)
		}
	}

	placedDoc, err := fileutil.PlaceFile(req.DocumentPath, cfg.Paths.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("place document: %w", err)
	}
	var placedMedia string
	if req.MediaPath != "" {
		placedMedia, err = fileutil.PlaceFile(req.MediaPath, cfg.Paths.MediaDir)
		if err != nil {
			rollback(log, placedDoc)
			return nil, fmt.Errorf("place media: %w", err)
		}
	}

	meta := metadata.ResolveWithOverrides(textutil.Stem(docName), req.Overrides)
	entry := &catalog.Entry{
		Filename:      docName,
		MediaFilename: mediaName,
		DocumentName:  meta.DocumentName,
		AuthorName:    meta.AuthorName,
		PublishDate:   meta.PublishDate,
		Content:       docreader.Content(placedDoc),
	}

	if err := store.Insert(ctx, entry); err != nil {
		rollback(log, placedDoc, placedMedia)
		return nil, err
	}

	log.Info("document added",
		logging.String("filename", docName),
		logging.String("media", mediaName),
		logging.Int64("id", entry.ID))
	return entry, nil
}

func rollback(log *slog.Logger, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := fileutil.RemoveQuiet(path); err != nil {
			log.Warn("rollback failed", logging.String("path", path), logging.Error(err))
		}
	}
}
