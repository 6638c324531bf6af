// Package dna implements the canonicalization primitives shared by every other
// tidk component: reverse complement, exact motif matching, rotation testing,
// Booth's minimal rotation, and the lexicographically-minimal canonical form
// over the rotation + reverse-complement equivalence class of a short DNA
// string (spec.md §4.1).
package dna

// Record is a single FASTA sequence: an identifier and its bytes, always
// upper-cased with any non-ACGTN byte replaced by N before it reaches this
// package (fastaio's responsibility, spec.md §6).
type Record struct {
	ID  string
	Seq []byte
}

// Len returns the number of bases in the record.
func (r Record) Len() int { return len(r.Seq) }
