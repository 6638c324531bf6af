package dna

import "strings"

// IsRotation reports whether a and b are rotations of one another: same
// length, and a is a substring of b+b (spec.md §4.1).
func IsRotation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return strings.Contains(b+b, a)
}

// MinimalRotationIndex returns the smallest i such that s[i:]+s[:i] is
// lexicographically minimal among all rotations of s, using Booth's O(n)
// algorithm. For an internally periodic string more than one index attains
// the minimum; any one of them is a valid return (spec.md §4.1).
func MinimalRotationIndex(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	i, j := 0, 1
	for {
		k := 0
		var ci, cj byte
		for k < n {
			ci = s[(i+k)%n]
			cj = s[(j+k)%n]
			if ci != cj {
				break
			}
			k++
		}
		if k == n {
			if i < j {
				return i
			}
			return j
		}
		if ci > cj {
			i += k + 1
			if i == j {
				i++
			}
		} else {
			j += k + 1
			if i == j {
				j++
			}
		}
	}
}

// RotationMin returns the canonical rotation of s: s[i:]+s[:i] where i is
// MinimalRotationIndex(s).
func RotationMin(s string) string {
	if len(s) == 0 {
		return s
	}
	i := MinimalRotationIndex(s)
	return s[i:] + s[:i]
}

// Canonical is the lexicographically-minimal representative of a DNA string
// under the combined rotation + reverse-complement equivalence relation,
// produced only by LexMin/LMS. The rest of the system must never compare raw
// repeat-unit strings for equivalence outside this type (spec.md §9).
type Canonical string

// LexMin computes the canonical form of s: the lexicographically smaller of
// RotationMin(s) and RotationMin(RevComp(s)). lex_min(s) == lex_min(s') for
// any rotation s' of s or of revcomp(s) (spec.md §4.1, testable property 2-3).
func LexMin(s string) Canonical {
	f := RotationMin(s)
	r := RotationMin(RevCompString(s))
	if f <= r {
		return Canonical(f)
	}
	return Canonical(r)
}

// LMS ("lexicographically minimal of a pair") returns the canonical
// representative of two repeat units already known to be rotation- or
// RC-rotation-equivalent. Both resolve to the same canonical form by
// construction, so only a's is needed.
func LMS(a, b string) Canonical {
	return LexMin(a)
}
