package repeatrun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biogo/tidk/internal/chunkscan"
)

const genome = "AACCTAACCTAACATATCGTAACCTAACCTAACCTAACCTAACATATCGTAACCTAACCT"
const genome2 = "AACCTAACCTTAAATTAAATAACCTAACCTAACCTAACCTTAAATTAAATAACCTAACCT"

func leftHalf(genome string) []byte {
	left, _ := chunkscan.SplitByDistance([]byte(genome), 0.5)
	return left
}

func TestAggregateGenome(t *testing.T) {
	hits := chunkscan.Scan(leftHalf(genome), 5)
	runs := Aggregate(hits, 5, "test")
	assert.Equal(t, []Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 20, End: 30, Sequence: "AACCT"},
	}, runs)
}

func TestAggregateGenome2HasThreeLengthFiveRuns(t *testing.T) {
	hits := chunkscan.Scan(leftHalf(genome2), 5)
	runs := Aggregate(hits, 5, "test")
	// AACCT 0-10, TAAAT 10-20, AACCT 20-30
	assert.Len(t, runs, 3)
	for _, r := range runs {
		assert.Len(t, r.Sequence, 5)
	}
}

func TestFilterByFrequencyDropsSimpleRepeats(t *testing.T) {
	runs := []Run{
		{ID: "test", Start: 0, End: 40, Sequence: "AAAAA"},  // simple (period 1)
		{ID: "test", Start: 0, End: 30, Sequence: "AACCT"},  // genuine, count 6
		{ID: "test", Start: 0, End: 5, Sequence: "AACCT"},   // genuine, count 1
	}
	got := FilterByFrequency(runs, 1)
	assert.Equal(t, []Run{{ID: "test", Start: 0, End: 30, Sequence: "AACCT"}}, got)
}

func TestMergeAdjacentRotationsMergesRotatedAdjacentRuns(t *testing.T) {
	// AACCT and CTAAC are rotations of one another (a point mutation can
	// shift the chunk scanner's phase partway through a telomeric tract).
	runs := []Run{
		{ID: "test", Start: 0, End: 20, Sequence: "AACCT"},
		{ID: "test", Start: 20, End: 35, Sequence: "CTAAC"},
	}
	got := MergeAdjacentRotations(runs)
	assert.Equal(t, []Run{{ID: "test", Start: 0, End: 35, Sequence: "AACCT"}}, got)
}

func TestMergeAdjacentRotationsLeavesNonAdjacentRunsAlone(t *testing.T) {
	// Same rotation-equivalent units, but a gap between them: not adjacent,
	// so no merge.
	runs := []Run{
		{ID: "test", Start: 0, End: 20, Sequence: "AACCT"},
		{ID: "test", Start: 25, End: 40, Sequence: "CTAAC"},
	}
	got := MergeAdjacentRotations(runs)
	assert.Equal(t, runs, got)
}

func TestMergeAdjacentRotationsLeavesNonRotationsAlone(t *testing.T) {
	runs := []Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 10, End: 20, Sequence: "TAAAT"},
	}
	got := MergeAdjacentRotations(runs)
	assert.Equal(t, runs, got)
}

func TestMergeAdjacentRotationsChainsThroughMultipleRuns(t *testing.T) {
	runs := []Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 10, End: 20, Sequence: "CTAAC"},
		{ID: "test", Start: 20, End: 30, Sequence: "ACCTA"},
	}
	got := MergeAdjacentRotations(runs)
	assert.Equal(t, []Run{{ID: "test", Start: 0, End: 30, Sequence: "AACCT"}}, got)
}

func TestRunCount(t *testing.T) {
	r := Run{Start: 0, End: 30, Sequence: "AACCT"}
	assert.Equal(t, 6, r.Count())
}

func TestIsSimpleRepeat(t *testing.T) {
	assert.True(t, Run{Sequence: "AAAAAAAA"}.IsSimpleRepeat())
	assert.True(t, Run{Sequence: "ATATATAT"}.IsSimpleRepeat())
	assert.False(t, Run{Sequence: "AACCT"}.IsSimpleRepeat())
}
