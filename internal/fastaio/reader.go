// Package fastaio wraps biogo's FASTA reader (the teacher's own I/O stack)
// with gzip auto-detection and conversion into the dna.Record type used
// throughout the rest of this module.
package fastaio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/pgzip"

	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/tidkerr"
)

// Open opens path for reading, transparently decompressing it with pgzip if
// its name ends in ".gz". The caller must Close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tidkerr.Wrap(tidkerr.IO, "opening fasta file", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := pgzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, tidkerr.Wrap(tidkerr.IO, "opening gzip-compressed fasta file", err)
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

type gzipReadCloser struct {
	gz *pgzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }
func (g *gzipReadCloser) Close() error {
	g.gz.Close()
	return g.f.Close()
}

// Iterator reads successive dna.Records from a FASTA stream.
type Iterator struct {
	sc  *seqio.Scanner
	cur dna.Record
}

// NewIterator wraps r as a stream of DNA records.
func NewIterator(r io.Reader) *Iterator {
	tmpl := linear.NewSeq("", nil, alphabet.DNA)
	reader := fasta.NewReader(r, tmpl)
	return &Iterator{sc: seqio.NewScanner(reader)}
}

// Next advances to the next record, uppercasing its bases and mapping any
// byte outside {A,C,G,T,N} to N. It reports whether a record was found.
func (it *Iterator) Next() bool {
	if !it.sc.Next() {
		return false
	}
	s, ok := it.sc.Seq().(*linear.Seq)
	if !ok {
		it.cur = dna.Record{}
		return it.Next()
	}
	raw := make([]byte, s.Len())
	for i := 0; i < s.Len(); i++ {
		raw[i] = byte(s.Seq[i])
	}
	it.cur = dna.Record{ID: s.Name(), Seq: normalize(raw)}
	return true
}

// Record returns the record produced by the most recent successful Next.
func (it *Iterator) Record() dna.Record { return it.cur }

// Err returns the first error encountered while scanning, if any, wrapped as
// tidkerr.BadInput (malformed FASTA is a user input error, not an I/O fault).
func (it *Iterator) Err() error {
	if err := it.sc.Error(); err != nil {
		return tidkerr.Wrap(tidkerr.BadInput, "parsing fasta record", err)
	}
	return nil
}

func normalize(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		switch b {
		case 'A', 'C', 'G', 'T', 'N':
			out[i] = b
		default:
			out[i] = 'N'
		}
	}
	return out
}
