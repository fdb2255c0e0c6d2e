package textutil

// Ratio computes the Ratcliff/Obershelp similarity between two strings:
// twice the total length of all matching blocks divided by the combined
// length. Identical strings score 1, fully disjoint strings score 0.
// Ties between equally long matching blocks resolve to the leftmost
// positions, so the result is deterministic for a given input pair.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	matched := matchingTotal(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(matched) / float64(total)
}

// matchingTotal sums matching-block lengths over a[alo:ahi] and
// b[blo:bhi] by locating the longest common block and recursing on the
// unmatched regions to either side.
func matchingTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingTotal(a, b, alo, i, blo, j)
	total += matchingTotal(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest block of equal runes within the given
// window. On ties it prefers the block starting earliest in a, then
// earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, size
}
