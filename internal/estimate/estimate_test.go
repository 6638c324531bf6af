package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/repeatrun"
)

func TestEstimateFoldsRotationEquivalentRuns(t *testing.T) {
	runs := []repeatrun.Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 10, End: 20, Sequence: "TAAAT"},
		{ID: "test", Start: 20, End: 30, Sequence: "AACCT"},
	}
	got := Estimate(runs)
	assert.Equal(t, []CanonicalRepeat{
		{Unit: dna.Canonical("AACCT"), Count: 4},
		{Unit: dna.Canonical("AAATT"), Count: 2},
	}, got)
}

func TestEstimateSingleRunGroup(t *testing.T) {
	runs := []repeatrun.Run{
		{ID: "test", Start: 0, End: 15, Sequence: "TTAGG"},
	}
	got := Estimate(runs)
	assert.Equal(t, []CanonicalRepeat{{Unit: dna.Canonical("AACCT"), Count: 3}}, got)
}

func TestEstimateFiltersSimpleRepeats(t *testing.T) {
	runs := []repeatrun.Run{
		{ID: "test", Start: 0, End: 40, Sequence: "AAAAAAAA"},
	}
	got := Estimate(runs)
	assert.Empty(t, got)
}

func TestEstimateSortsByCountDescending(t *testing.T) {
	runs := []repeatrun.Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 10, End: 20, Sequence: "AACCT"},
		{ID: "test", Start: 0, End: 60, Sequence: "TAAAT"},
	}
	got := Estimate(runs)
	assert.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].Count, got[1].Count)
	assert.Equal(t, 12, got[0].Count)
}

func TestEstimateDoesNotCompareAcrossLengthGroups(t *testing.T) {
	runs := []repeatrun.Run{
		{ID: "test", Start: 0, End: 10, Sequence: "AACCT"},
		{ID: "test", Start: 0, End: 20, Sequence: "AACCTAACCT"},
	}
	got := Estimate(runs)
	assert.Len(t, got, 2)
}
