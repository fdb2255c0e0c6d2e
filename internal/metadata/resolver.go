package metadata

import "strings"

// Delimiter splits a stem into author, publish date, and title.
const Delimiter = "-"

// UnknownAuthor is the sentinel recorded when the stem does not carry an
// author segment.
const UnknownAuthor = "unknown"

// Document holds the resolved descriptive fields for one document.
type Document struct {
	AuthorName   string
	PublishDate  string
	DocumentName string
}

// Overrides carries explicit field values supplied by the caller for
// single-file ingestion. A non-empty field bypasses stem parsing for
// that field.
type Overrides struct {
	AuthorName  string
	PublishDate string
}

// Resolve derives document metadata from a filename stem. A stem of the
// form author-publishdate-title (exactly three non-empty parts) yields
// all three fields; anything else falls back to the unknown author, an
// empty date, and the full stem as title.
func Resolve(stem string) Document {
	parts := strings.Split(stem, Delimiter)
	if len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
		return Document{
			AuthorName:   parts[0],
			PublishDate:  parts[1],
			DocumentName: parts[2],
		}
	}
	return Document{
		AuthorName:   UnknownAuthor,
		PublishDate:  "",
		DocumentName: stem,
	}
}

// ResolveWithOverrides resolves metadata from the stem, then applies any
// supplied overrides.
func ResolveWithOverrides(stem string, overrides Overrides) Document {
	doc := Resolve(stem)
	if strings.TrimSpace(overrides.AuthorName) != "" {
		doc.AuthorName = strings.TrimSpace(overrides.AuthorName)
	}
	if strings.TrimSpace(overrides.PublishDate) != "" {
		doc.PublishDate = strings.TrimSpace(overrides.PublishDate)
	}
	return doc
}
