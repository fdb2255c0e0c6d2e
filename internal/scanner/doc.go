// Package scanner walks a directory tree and classifies every visible
// file as a document or media candidate by extension.
//
// A scan is all-or-nothing: any filesystem failure aborts the walk and
// discards partial results so downstream matching always operates on a
// complete snapshot. Hidden entries (dot-prefixed names) are never
// recorded, though hidden directories are still descended into, matching
// the behavior the catalog has always had.
package scanner
