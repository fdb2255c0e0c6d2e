package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Stem returns the matching key for a filename: the name with its final
// extension removed, or the whole name when no dot is present. Case is
// preserved. The result is NFC-normalized so names produced on
// decomposing filesystems (macOS) compare equal to their composed form.
func Stem(filename string) string {
	name := norm.NFC.String(filename)
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name
	}
	return name[:idx]
}

// Extension returns the lowercased extension of a filename without the
// leading dot, or the empty string when the name has no extension.
func Extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
