package dna

// kmpTable builds the Knuth-Morris-Pratt partial-match ("failure") table for
// pattern. table[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also a suffix of it.
func kmpTable(pattern []byte) []int {
	table := make([]int, len(pattern))
	if len(pattern) < 2 {
		return table
	}
	for pos, cnd := 1, 0; pos < len(pattern); {
		switch {
		case pattern[pos] == pattern[cnd]:
			cnd++
			table[pos] = cnd
			pos++
		case cnd > 0:
			cnd = table[cnd-1]
		default:
			pos++
		}
	}
	return table
}

// kmpFindAll returns every start position of pattern in haystack using
// Knuth-Morris-Pratt, in ascending order. Linear in len(haystack).
func kmpFindAll(pattern, haystack []byte) []int {
	var out []int
	if len(pattern) == 0 || len(pattern) > len(haystack) {
		return out
	}
	table := kmpTable(pattern)
	j := 0
	for i := 0; i < len(haystack); {
		if haystack[i] == pattern[j] {
			i++
			j++
			if j == len(pattern) {
				out = append(out, i-j)
				j = table[j-1]
			}
		} else if j > 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return out
}

// horspoolFindAll returns every start position of pattern in haystack using
// Boyer-Moore-Horspool, in ascending order. Used above a length threshold
// where its larger skip table outperforms KMP's byte-at-a-time scan; this is a
// performance choice, not a contract (spec.md §4.1).
func horspoolFindAll(pattern, haystack []byte) []int {
	var out []int
	m := len(pattern)
	n := len(haystack)
	if m == 0 || m > n {
		return out
	}
	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}
	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && haystack[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			out = append(out, i)
			i++
			continue
		}
		i += shift[haystack[i+m-1]]
	}
	return out
}

// motifMatcherThreshold is the motif length at and above which FindMotifs
// switches from KMP to Boyer-Moore-Horspool (spec.md §4.1: "for |m| < 65 ... a
// different linear matcher above").
const motifMatcherThreshold = 65

// FindMotifs returns every start position where haystack[p:p+len(motif)] ==
// motif, in ascending order. Both arguments are compared byte-for-byte
// (ASCII, case-sensitive) — callers are expected to upper-case both first.
func FindMotifs(motif, haystack []byte) []int {
	if len(motif) == 0 {
		return nil
	}
	if len(motif) < motifMatcherThreshold {
		return kmpFindAll(motif, haystack)
	}
	return horspoolFindAll(motif, haystack)
}

// RemoveOverlapping drops any position positions[i+1] that starts before
// positions[i]+length, i.e. before the previous match ends. It is stable: the
// earliest position of each overlapping cluster survives. positions must
// already be ascending (as returned by FindMotifs).
func RemoveOverlapping(positions []int, length int) []int {
	if len(positions) == 0 {
		return positions
	}
	out := make([]int, 1, len(positions))
	out[0] = positions[0]
	for _, p := range positions[1:] {
		if p >= out[len(out)-1]+length {
			out = append(out, p)
		}
	}
	return out
}
