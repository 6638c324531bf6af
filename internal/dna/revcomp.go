package dna

// complement maps a base to its Watson-Crick partner. Anything that isn't one
// of A/C/G/T/N maps to N, per spec.md §4.1.
var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['N'] = 'N'
}

// RevComp returns the reverse complement of s. Length is preserved.
func RevComp(s []byte) []byte {
	out := make([]byte, len(s))
	n := len(s)
	for i, b := range s {
		out[n-1-i] = complement[b]
	}
	return out
}

// RevCompString is the string-typed convenience wrapper around RevComp, used
// throughout the canonicalization primitives which operate on short repeat
// units represented as strings.
func RevCompString(s string) string {
	return string(RevComp([]byte(s)))
}
