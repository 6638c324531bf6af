// Package emit writes the Table Emitters (spec.md §4.7): the handful of
// fixed TSV and bed/bedgraph formats this tool's subcommands produce.
package emit

import (
	"fmt"
	"io"

	"github.com/biogo/tidk/internal/estimate"
	"github.com/biogo/tidk/internal/scan"
	"github.com/biogo/tidk/internal/window"
)

// WindowedTSV writes one row per window.Count with a header, e.g. the
// output of "tidk search".
func WindowedTSV(w io.Writer, rows []window.Count) error {
	if _, err := fmt.Fprintln(w, "id\twindow\tforward_repeat_number\treverse_repeat_number\ttelomeric_repeat"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", r.ID, r.WindowEnd, r.Fwd, r.Rev, r.Motif); err != nil {
			return err
		}
	}
	return nil
}

// Bedgraph writes the four-column, headerless bedgraph of fwd+rev counts per
// window, using each row's own cumulative Start rather than deriving one
// from a constant window size (the final window of a record is clamped to
// the record's length and is not windowSize bytes wide).
func Bedgraph(w io.Writer, rows []window.Count, windowSize int) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.ID, r.Start, r.WindowEnd, r.Fwd+r.Rev); err != nil {
			return err
		}
	}
	return nil
}

// CanonicalEstimates writes the two-column canonical_repeat_unit/count TSV
// produced by "tidk explore", already sorted by count descending.
func CanonicalEstimates(w io.Writer, rows []estimate.CanonicalRepeat) error {
	if _, err := fmt.Fprintln(w, "canonical_repeat_unit\tcount"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.Unit, r.Count); err != nil {
			return err
		}
	}
	return nil
}

// ExploreBed writes the bed of individual repeat-run locations discovered by
// the Scan Orchestrator during "tidk explore".
func ExploreBed(w io.Writer, rows []scan.BedRow) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%d\n", r.ID, r.Start, r.End, r.Count, r.Sequence, r.SeqLen); err != nil {
			return err
		}
	}
	return nil
}
