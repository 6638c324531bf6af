// Package trim implements the trim subcommand's logic (spec.md §6): a thin
// wrapper on the dna primitives that strips a run of a known telomeric motif
// from whichever end of a record it's found on.
package trim

import (
	"strings"

	"github.com/biogo/tidk/internal/dna"
)

// Result is one trimmed record produced from an input record. A record can
// yield zero, one, or two results if both ends carry a qualifying repeat run.
type Result struct {
	ID  string
	Seq []byte
}

// Trim looks for motif (forward, at the record's end) and its reverse
// complement (at the record's start), each repeated at least minOccur times,
// and strips the repeat run when the trimmed remainder would still be at
// least minLen bases long.
func Trim(id string, seq []byte, motif string, minLen, minOccur int) []Result {
	unitLen := len(motif)
	if unitLen == 0 || minOccur <= 0 || len(seq) < unitLen*3 {
		return nil
	}

	revMotif := dna.RevCompString(motif)
	s := string(seq)

	endProbe := s[len(s)-unitLen*3:]
	startProbe := s[:unitLen*3]

	multiMotif := strings.Repeat(motif, minOccur)
	multiRevMotif := strings.Repeat(revMotif, minOccur)

	var out []Result

	if strings.Contains(endProbe, motif) {
		if pos := strings.Index(s, multiMotif); pos >= 0 && pos >= minLen {
			out = append(out, Result{ID: id, Seq: []byte(dna.RevCompString(s[:pos]))})
		}
	}

	if strings.Contains(startProbe, revMotif) {
		if pos := strings.LastIndex(s, multiRevMotif); pos >= 0 && len(s)-(pos+unitLen*minOccur) >= minLen {
			trimmed := s[pos+unitLen*minOccur:]
			out = append(out, Result{ID: id, Seq: []byte(trimmed)})
		}
	}

	return out
}
