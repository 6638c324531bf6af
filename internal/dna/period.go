package dna

// Period returns the shortest p >= 1 such that s[i] == s[i % p] for every i,
// i.e. the length of the shortest prefix that s is a periodic extension of.
// A string with no internal repetition has Period(s) == len(s) (spec.md §4.1,
// testable property 4).
func Period(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	for p := 1; p < n; p++ {
		if isPeriod(s, p) {
			return p
		}
	}
	return n
}

func isPeriod(s string, p int) bool {
	for i := p; i < len(s); i++ {
		if s[i] != s[i%p] {
			return false
		}
	}
	return true
}
