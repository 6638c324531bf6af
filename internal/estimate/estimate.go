// Package estimate implements the Canonical Estimator (spec.md §4.5): it
// takes every surviving RepeatRun found across a genome (and, for a
// [kmin,kmax] scan, across every k) and folds them into a ranked list of
// likely telomeric repeat units.
package estimate

import (
	"sort"

	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/repeatrun"
)

// simplePeriodThreshold: canonical units with period <= this are discarded as
// monomeric/dimeric/trimeric noise, not plausible telomeric repeats.
const simplePeriodThreshold = 3

// CanonicalRepeat is one row of the final ranking: a canonical repeat unit
// and the total run count folded into it.
type CanonicalRepeat struct {
	Unit  dna.Canonical
	Count int
}

// Estimate partitions runs by unit length, folds rotation/reverse-complement
// equivalent runs within each length-group into a single canonical count, and
// returns the surviving canonical repeats sorted by count descending.
//
// Each run contributes to exactly one canonical key's count: a consumed-index
// set is tracked per length-group so a run already folded into a key isn't
// re-added on a later pairing, but it can still be used to validate — and
// fold in — other runs pairing against the same key. A run that pairs with no
// other run of its length-group is counted under its own canonical key.
func Estimate(runs []repeatrun.Run) []CanonicalRepeat {
	groups := make(map[int][]repeatrun.Run)
	for _, r := range runs {
		groups[len(r.Sequence)] = append(groups[len(r.Sequence)], r)
	}

	counts := make(map[dna.Canonical]int)

	for _, group := range groups {
		if len(group) == 1 {
			key := dna.LexMin(group[0].Sequence)
			counts[key] += group[0].Count()
			continue
		}

		consumed := make([]bool, len(group))
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if !equivalent(a.Sequence, b.Sequence) {
					continue
				}
				key := dna.LMS(a.Sequence, b.Sequence)

				switch {
				case !consumed[i] && !consumed[j]:
					counts[key] += a.Count() + b.Count()
					consumed[i], consumed[j] = true, true
				case consumed[i] && !consumed[j]:
					counts[key] += b.Count()
					consumed[j] = true
				case !consumed[i] && consumed[j]:
					counts[key] += a.Count()
					consumed[i] = true
				}
			}
		}
		for i, r := range group {
			if !consumed[i] {
				counts[dna.LexMin(r.Sequence)] += r.Count()
			}
		}
	}

	var out []CanonicalRepeat
	for unit, count := range counts {
		if dna.Period(string(unit)) <= simplePeriodThreshold {
			continue
		}
		out = append(out, CanonicalRepeat{Unit: unit, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Unit < out[j].Unit
	})
	return out
}

func equivalent(a, b string) bool {
	return dna.IsRotation(a, b) ||
		dna.IsRotation(dna.RevCompString(a), b) ||
		dna.IsRotation(a, dna.RevCompString(b))
}
