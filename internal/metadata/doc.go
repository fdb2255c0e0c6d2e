// Package metadata derives author, publish date, and title for a
// document from its filename stem.
//
// The library's naming convention is author-publishdate-title with `-`
// as the delimiter. Anything that does not split into exactly three
// non-empty parts falls back to defaults rather than failing: ambiguity
// is never an error here.
package metadata
