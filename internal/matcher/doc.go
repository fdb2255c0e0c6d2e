// Package matcher pairs scanned documents with companion media files.
//
// Pairing runs in two passes. The exact pass joins identical stems via a
// media index built in enumeration order, so a duplicate media stem is
// shadowed by the last occurrence (surfaced as a warning on the result).
// The similarity pass then greedily assigns each still-unmatched
// document its best-scoring available media file, first document first,
// provided the score clears the configured threshold. Each file is
// claimed by at most one pair and results are deterministic for a given
// input order.
package matcher
