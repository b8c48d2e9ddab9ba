package apierr

// ClosestMatch returns the option with the highest longest-common-subsequence
// ratio against value, mirroring Python's difflib.SequenceMatcher.ratio()
// (used by the upstream service to suggest corrections for unknown
// identifiers). Returns the empty string if options is empty.
func ClosestMatch(value string, options []string) string {
	var best string
	var bestRatio float64

	for _, candidate := range options {
		ratio := matchRatio(value, candidate)
		if ratio > bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}

	return best
}

// matchRatio computes 2*M/T where M is the total length of matching blocks
// found by a greedy longest-common-subsequence walk and T is the combined
// length of both strings. This reproduces SequenceMatcher.ratio() closely
// enough for suggestion purposes without requiring its full autojunk
// heuristics.
func matchRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	matches := matchingBlockLength(a, b)
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}

	return 2 * float64(matches) / float64(total)
}

// matchingBlockLength sums the lengths of successive longest-matching
// substrings between a and b, recursing on the left and right remainders,
// matching the recursive block-finding strategy of difflib.
func matchingBlockLength(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}

	left := matchingBlockLength(a[:ai], b[:bi])
	right := matchingBlockLength(a[ai+size:], b[bi+size:])

	return left + size + right
}

func longestMatch(a, b string) (aStart, bStart, length int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > length {
				aStart, bStart, length = i, j, k
			}
		}
	}
	return aStart, bStart, length
}
