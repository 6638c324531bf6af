// Package repeatrun implements the Run Aggregator (spec.md §4.4): it turns
// the ChunkHit stream produced by chunkscan into RepeatRuns — contiguous
// spans of a record covered by one repeating chunk sequence — and applies
// the frequency/simple-repeat filters that decide which runs are plausible
// telomeric repeats.
package repeatrun

import (
	"github.com/biogo/tidk/internal/chunkscan"
	"github.com/biogo/tidk/internal/dna"
)

// repeatPeriodThreshold below which a repeat is considered "simple" (e.g. a
// homopolymer or short low-complexity run) rather than a genuine telomeric
// candidate.
const repeatPeriodThreshold = 3

// Run is a contiguous span of a sub-sequence covered by one candidate repeat
// unit (spec.md's RepeatPosition).
type Run struct {
	ID       string
	Start    int
	End      int
	Sequence string
}

// Count is the number of times Sequence repeats across [Start, End).
func (r Run) Count() int {
	if len(r.Sequence) == 0 {
		return 0
	}
	return (r.End - r.Start) / len(r.Sequence)
}

// IsSimpleRepeat reports whether Sequence's internal period is below
// repeatPeriodThreshold, i.e. it looks like a homopolymer or other
// low-complexity run rather than a plausible telomeric unit.
func (r Run) IsSimpleRepeat() bool {
	return dna.Period(r.Sequence) < repeatPeriodThreshold
}

// Aggregate groups a chunkscan.Hit stream (ascending, from a single
// sub-sequence) into Runs: consecutive hits whose sequence matches and whose
// positions differ by exactly chunkLength extend the current run, any other
// transition closes it. Mirrors the "calculate_indexes" step of the original
// tool exactly, including its deliberately generous final-run end bound.
func Aggregate(hits []chunkscan.Hit, chunkLength int, id string) []Run {
	if len(hits) < 2 {
		return nil
	}

	var runs []Run
	start := hits[0].Position

	for i := 0; i < len(hits)-1; i++ {
		h1, h2 := hits[i], hits[i+1]
		isLastPair := i == len(hits)-2

		if isLastPair {
			runs = append(runs, Run{ID: id, Start: start, End: h2.Position + chunkLength, Sequence: h1.Sequence})
			break
		}
		if h1.Sequence == h2.Sequence && h2.Position-h1.Position == len(h1.Sequence) {
			continue
		}
		runs = append(runs, Run{ID: id, Start: start, End: h1.Position + chunkLength, Sequence: h1.Sequence})
		start = h2.Position
	}
	return runs
}

// MergeAdjacentRotations merges consecutive runs in a single record whose
// repeat units are rotations of one another and that sit back-to-back
// (last.End == next.Start): a point mutation partway through a telomeric
// tract shifts the chunk scanner's phase, splitting what is really one
// repeat run into two adjacent runs whose units are rotations of each
// other. Per spec.md §4.4 this merge runs once per record, after grouping
// and before the frequency filter, extending the kept run's End to
// next.End and keeping its original Sequence and Start.
func MergeAdjacentRotations(runs []Run) []Run {
	if len(runs) < 2 {
		return runs
	}

	merged := make([]Run, 0, len(runs))
	merged = append(merged, runs[0])
	for _, next := range runs[1:] {
		last := &merged[len(merged)-1]
		if last.End == next.Start && dna.IsRotation(last.Sequence, next.Sequence) {
			last.End = next.End
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// FilterByFrequency keeps only runs that repeat more than frequency times and
// are not simple repeats, per spec.md §4.4.
func FilterByFrequency(runs []Run, frequency int) []Run {
	var out []Run
	for _, r := range runs {
		if r.Count() > frequency && !r.IsSimpleRepeat() {
			out = append(out, r)
		}
	}
	return out
}
