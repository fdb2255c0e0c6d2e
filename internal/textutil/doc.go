// Package textutil provides the filename normalization and string
// similarity primitives that drive document/media pairing.
//
// Stem derives the matching key for a filename (final extension removed,
// Unicode NFC applied, case preserved). Ratio computes the
// Ratcliff/Obershelp matching-blocks similarity between two strings as a
// value in [0, 1]; it is symmetric and deterministic, so matching results
// are stable across runs.
package textutil
