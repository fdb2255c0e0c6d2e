package catalog

import (
	"database/sql"
	"time"
)

// Entry is one persisted catalog record describing a document and its
// optional companion media file.
type Entry struct {
	ID            int64
	Filename      string
	MediaFilename string
	DocumentName  string
	AuthorName    string
	JournalName   string
	PublishDate   string
	CreatedAt     time.Time
	Edition       string
	Content       string
}

const entryColumns = "id, filename, mediafilename, documentname, authorname, journalname, publishdate, created_at, edition, content"

// scanEntry populates an Entry from a row by position; nullable columns
// map to empty strings.
func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id            int64
		filename      string
		mediaFilename sql.NullString
		documentName  string
		authorName    string
		journalName   sql.NullString
		publishDate   sql.NullString
		createdRaw    string
		edition       sql.NullString
		content       sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&filename,
		&mediaFilename,
		&documentName,
		&authorName,
		&journalName,
		&publishDate,
		&createdRaw,
		&edition,
		&content,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:            id,
		Filename:      filename,
		MediaFilename: mediaFilename.String,
		DocumentName:  documentName,
		AuthorName:    authorName,
		JournalName:   journalName.String,
		PublishDate:   publishDate.String,
		Edition:       edition.String,
		Content:       content.String,
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = parsed
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
