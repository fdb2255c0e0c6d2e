package matcher

import (
	"docshelf/internal/scanner"
	"docshelf/internal/textutil"
)

// MatchType distinguishes how a pair was formed.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchSimilarity MatchType = "similarity"
)

// Pair is one document joined with its companion media file. Media is
// nil for document-only ingestion.
type Pair struct {
	Document scanner.FileRecord
	Media    *scanner.FileRecord
	Type     MatchType
	// Similarity holds the pairing score for MatchSimilarity pairs and
	// is zero for exact matches.
	Similarity float64
}

// Result captures the outcome of one matching pass.
type Result struct {
	Pairs              []Pair
	UnmatchedDocuments []scanner.FileRecord
	UnmatchedMedia     []scanner.FileRecord
	// DuplicateMediaStems lists stems that occurred on more than one
	// media file; only the last-enumerated file per stem was reachable
	// by exact matching.
	DuplicateMediaStems []string
}

// Match pairs documents with media files: exact stems first, then greedy
// best-score assignment at or above threshold for the remainder.
func Match(documents, media []scanner.FileRecord, threshold float64) Result {
	var result Result

	index := make(map[string]int, len(media))
	duplicates := make(map[string]struct{})
	for i, m := range media {
		if _, exists := index[m.Stem]; exists {
			duplicates[m.Stem] = struct{}{}
		}
		// Last one wins on duplicate stems.
		index[m.Stem] = i
	}
	for _, m := range media {
		if _, ok := duplicates[m.Stem]; ok {
			delete(duplicates, m.Stem)
			result.DuplicateMediaStems = append(result.DuplicateMediaStems, m.Stem)
		}
	}

	claimed := make([]bool, len(media))
	var remaining []scanner.FileRecord
	for _, doc := range documents {
		idx, ok := index[doc.Stem]
		if !ok || claimed[idx] {
			remaining = append(remaining, doc)
			continue
		}
		claimed[idx] = true
		m := media[idx]
		result.Pairs = append(result.Pairs, Pair{
			Document: doc,
			Media:    &m,
			Type:     MatchExact,
		})
	}

	for _, doc := range remaining {
		best := -1
		bestScore := 0.0
		for i, m := range media {
			if claimed[i] {
				continue
			}
			// Strict greater-than keeps the first-enumerated media
			// file on a tied score.
			if score := textutil.Ratio(doc.Stem, m.Stem); score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 || bestScore < threshold {
			result.UnmatchedDocuments = append(result.UnmatchedDocuments, doc)
			continue
		}
		claimed[best] = true
		m := media[best]
		result.Pairs = append(result.Pairs, Pair{
			Document:   doc,
			Media:      &m,
			Type:       MatchSimilarity,
			Similarity: bestScore,
		})
	}

	for i, m := range media {
		if !claimed[i] {
			result.UnmatchedMedia = append(result.UnmatchedMedia, m)
		}
	}

	return result
}
