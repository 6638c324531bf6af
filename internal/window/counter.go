// Package window implements the Windowed Counter (spec.md §4.2): sliding a
// fixed-size, non-overlapping window across a record and counting forward and
// reverse-complement occurrences of one or more motifs per window.
package window

import (
	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/tidkerr"
)

// Count is one row of output: occurrences of motif and its reverse complement
// in the window [Start, WindowEnd), 0-based inclusive start, exclusive end
// (WindowEnd clamped to record length on the final window).
type Count struct {
	ID        string
	Start     int
	WindowEnd int
	Fwd       int
	Rev       int
	Motif     string
}

// Slide slides a window of size windowSize across seq, emitting one Count per
// window for each motif in motifs, in motif-major order (all windows for
// motifs[0], then all windows for motifs[1], ...), matching spec.md §4.2.
func Slide(id string, seq []byte, motifs []string, windowSize int) ([]Count, error) {
	if windowSize <= 0 {
		return nil, tidkerr.New(tidkerr.BadConfig, "window size must be greater than zero")
	}
	for _, m := range motifs {
		if len(m) == 0 {
			return nil, tidkerr.New(tidkerr.BadConfig, "motif must not be empty")
		}
	}

	var rows []Count
	for _, m := range motifs {
		fwdMotif := []byte(upper(m))
		revMotif := []byte(dna.RevCompString(upper(m)))

		start := 0
		for start < len(seq) {
			end := start + windowSize
			if end > len(seq) {
				end = len(seq)
			}
			win := upperBytes(seq[start:end])

			fwd := len(dna.RemoveOverlapping(dna.FindMotifs(fwdMotif, win), len(fwdMotif)))
			rev := len(dna.RemoveOverlapping(dna.FindMotifs(revMotif, win), len(revMotif)))

			rows = append(rows, Count{
				ID:        id,
				Start:     start,
				WindowEnd: end,
				Fwd:       fwd,
				Rev:       rev,
				Motif:     string(fwdMotif),
			})

			start += windowSize
		}
	}
	return rows, nil
}

func upper(s string) string {
	return string(upperBytes([]byte(s)))
}

func upperBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
	}
	return out
}
