package chunkscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// genome is a tiny two-ended toy genome: both halves carry the same
// AACCT-repeat block, split by an unrelated "AACATATCGT" spacer.
const genome = "AACCTAACCTAACATATCGTAACCTAACCTAACCTAACCTAACATATCGTAACCTAACCT"

func TestSplitByDistanceWholeGenome(t *testing.T) {
	left, right := SplitByDistance([]byte(genome), 0.5)
	assert.Equal(t, "AACCTAACCTAACATATCGTAACCTAACCT", string(left))
	assert.Equal(t, "AACCTAACCTAACATATCGTAACCTAACCT", string(right))
}

func TestScanLeftHalf(t *testing.T) {
	left, _ := SplitByDistance([]byte(genome), 0.5)
	hits := Scan(left, 5)
	want := []Hit{
		{Position: 0, Sequence: "AACCT"},
		{Position: 5, Sequence: "AACCT"},
		{Position: 20, Sequence: "AACCT"},
		{Position: 25, Sequence: "AACCT"},
	}
	assert.Equal(t, want, hits)
}

func TestScanRightHalf(t *testing.T) {
	_, right := SplitByDistance([]byte(genome), 0.5)
	hits := Scan(right, 5)
	want := []Hit{
		{Position: 0, Sequence: "AACCT"},
		{Position: 5, Sequence: "AACCT"},
		{Position: 20, Sequence: "AACCT"},
		{Position: 25, Sequence: "AACCT"},
	}
	assert.Equal(t, want, hits)
}

func TestScanChunkLongerThanSequenceYieldsNoHits(t *testing.T) {
	assert.Nil(t, Scan([]byte("AACCT"), 5))
	assert.Nil(t, Scan([]byte("AAC"), 5))
}

func TestScanSkipsChunksContainingN(t *testing.T) {
	hits := Scan([]byte("AACCTAACCTNNNNNAACCTAACCT"), 5)
	assert.Equal(t, []Hit{
		{Position: 0, Sequence: "AACCT"},
		{Position: 5, Sequence: "AACCT"},
		{Position: 15, Sequence: "AACCT"},
		{Position: 20, Sequence: "AACCT"},
	}, hits)
}
