package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Filter narrows a catalog search. Text fields match as substrings;
// date bounds compare lexicographically against publishdate, which the
// naming convention keeps in ISO order. Zero values are ignored.
type Filter struct {
	Filename      string
	MediaFilename string
	DocumentName  string
	AuthorName    string
	StartDate     string
	EndDate       string
	Limit         int
	Offset        int
}

func (f Filter) clauses() (string, []any) {
	var (
		where []string
		args  []any
	)
	like := func(column, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		where = append(where, column+" LIKE ?")
		args = append(args, "%"+strings.TrimSpace(value)+"%")
	}

	like("filename", f.Filename)
	like("mediafilename", f.MediaFilename)
	like("documentname", f.DocumentName)
	like("authorname", f.AuthorName)

	if f.StartDate != "" {
		where = append(where, "publishdate >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where = append(where, "publishdate <= ?")
		args = append(args, f.EndDate)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// Search returns entries matching the filter ordered by creation time,
// newest first. Results are cached by query signature until the next
// insert or explicit invalidation.
func (s *Store) Search(ctx context.Context, filter Filter) ([]*Entry, error) {
	whereClause, args := filter.clauses()

	query := `SELECT ` + entryColumns + ` FROM document` + whereClause + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	key := cacheKey(query, args)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]*Entry), nil
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cache.add(key, entries)
	return entries, nil
}
