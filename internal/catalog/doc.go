// Package catalog persists ingested document records in SQLite and
// exposes the query surface the CLI needs.
//
// The Store owns the database connection, schema initialization, and a
// single-writer file lock; callers open it for the duration of one
// operation and close it on every exit path. Duplicate filenames are a
// first-class failure mode (ErrDuplicateFilename) so batch ingestion can
// count them without aborting. Read queries go through an explicit LRU
// cache keyed by query signature; Insert purges it, and callers may
// purge it directly via InvalidateCache.
//
// Treat this package as the single source of truth for catalog
// semantics; schema changes bump the version in schema.go and users
// recreate the database.
package catalog
