package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevComp(t *testing.T) {
	assert.Equal(t, "CAAGGGTTT", string(RevComp([]byte("AAACCCTTG"))))
	// property 1: revcomp is an involution
	for _, s := range []string{"AACCT", "TTAGG", "AAACCCTTG", "N", "ACGTN"} {
		assert.Equal(t, s, string(RevComp(RevComp([]byte(s)))), s)
	}
}

func TestIsRotation(t *testing.T) {
	const (
		t1 = "TTAGG"
		t2 = "TAGGT"
		t3 = "AGGTT"
		t4 = "AACCT"
	)
	assert.True(t, IsRotation(t1, t2))
	assert.True(t, IsRotation(t1, t3))
	assert.False(t, IsRotation(t1, t4))
	assert.False(t, IsRotation("AC", "ACG"))
}

func TestLexMin(t *testing.T) {
	const canonical = "AACCT"
	for _, s := range []string{"TTAGG", "TAGGT", "AGGTT", "AACCT", "CCTAA"} {
		assert.Equal(t, Canonical(canonical), LexMin(s), s)
	}
}

func TestLexMinRevCompInvariant(t *testing.T) {
	for _, s := range []string{"AACCT", "TTAGG", "AAACCCT", "AATGC"} {
		assert.Equal(t, LexMin(s), LexMin(RevCompString(s)), s)
	}
}

func TestLexMinRotationInvariant(t *testing.T) {
	s := "AACCTG"
	for i := 0; i < len(s); i++ {
		rotated := s[i:] + s[:i]
		assert.Equal(t, LexMin(s), LexMin(rotated), rotated)
	}
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 1, Period("AAAAAAAA"))
	assert.Equal(t, 2, Period("ATATATAT"))
	assert.Equal(t, 3, Period("AATAATAAT"))
	assert.Equal(t, 5, Period("AACCT"))
}

func TestFindMotifs(t *testing.T) {
	const (
		canonical = "AACCT"
		haystack  = "AACCTAACCTAACCTAACCTAACCTAACCTAACTAACCT"
	)
	got := FindMotifs([]byte(canonical), []byte(haystack))
	assert.Equal(t, []int{0, 5, 10, 15, 20, 25, 34}, got)
}

func TestFindMotifsLongMotifUsesHorspool(t *testing.T) {
	motif := make([]byte, motifMatcherThreshold+1)
	for i := range motif {
		motif[i] = "ACGT"[i%4]
	}
	haystack := append(append([]byte{}, motif...), motif...)
	got := FindMotifs(motif, haystack)
	assert.Equal(t, []int{0, len(motif)}, got)
}

func TestRemoveOverlapping(t *testing.T) {
	positions := []int{0, 2, 5, 6, 10}
	got := RemoveOverlapping(positions, 5)
	assert.Equal(t, []int{0, 5, 10}, got)
	// idempotent (property 6)
	assert.Equal(t, got, RemoveOverlapping(got, 5))
}

func TestLMS(t *testing.T) {
	got := LMS("TTAGG", "TAGGT")
	assert.Equal(t, Canonical("AACCT"), got)
}
