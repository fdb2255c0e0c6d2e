package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"docshelf/internal/config"
)

// Sentinel errors for the failure modes callers branch on.
var (
	// ErrDuplicateFilename reports a unique-constraint violation on the
	// filename column.
	ErrDuplicateFilename = errors.New("filename already cataloged")
	// ErrLocked reports that another process holds the catalog lock.
	ErrLocked = errors.New("catalog is locked by another process")
)

// Store manages catalog persistence backed by SQLite. One Store spans at
// most one operation: open, use, close.
type Store struct {
	db    *sql.DB
	path  string
	lock  *flock.Flock
	cache *queryCache
}

const (
	sqliteConstraintCode       = 19
	sqliteConstraintUniqueCode = 2067
	busyRetryAttempts          = 5
	busyRetryInitialBackoff    = 10 * time.Millisecond
	busyRetryMaxBackoff        = 200 * time.Millisecond
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func sqliteErrorCode(err error) int {
	var coder interface{ Code() int }
	if errors.As(err, &coder) {
		return coder.Code()
	}
	return 0
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	if sqliteErrorCode(err) == 5 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	switch sqliteErrorCode(err) {
	case sqliteConstraintCode, sqliteConstraintUniqueCode:
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// Open initializes or connects to the catalog database and takes the
// single-writer lock. A failure to reach or initialize storage here is
// the batch-aborting "storage unavailable" case; no records are
// attempted against a store that failed to open.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.Paths.DatabasePath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure database directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock, cache: newQueryCache()}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the database connection and the catalog lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Insert persists one entry and assigns its ID. A duplicate filename
// maps to ErrDuplicateFilename. Any successful insert purges the query
// cache.
func (s *Store) Insert(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO document (
            filename, mediafilename, documentname, authorname,
            journalname, publishdate, created_at, edition, content
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Filename,
		nullableString(entry.MediaFilename),
		entry.DocumentName,
		entry.AuthorName,
		nullableString(entry.JournalName),
		nullableString(entry.PublishDate),
		entry.CreatedAt.Format(time.RFC3339Nano),
		nullableString(entry.Edition),
		nullableString(entry.Content),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateFilename, entry.Filename)
		}
		return fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id

	s.cache.purge()
	return nil
}

// GetByID fetches a catalog entry by identifier, or nil when absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+entryColumns+` FROM document WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// Count returns the number of cataloged documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	key := cacheKey("count", nil)
	if cached, ok := s.cache.get(key); ok {
		return cached.(int), nil
	}

	var count int
	err := s.db.QueryRowContext(ensureContext(ctx), `SELECT COUNT(*) FROM document`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}

	s.cache.add(key, count)
	return count, nil
}

// InvalidateCache drops all cached query results. Inserts do this
// automatically; callers that bypass the Store (or want a fresh read
// after external changes) invalidate explicitly.
func (s *Store) InvalidateCache() {
	s.cache.purge()
}
