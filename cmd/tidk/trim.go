package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/tidkerr"
	trimpkg "github.com/biogo/tidk/internal/trim"
)

var trimFlags struct {
	fasta    string
	motif    string
	minLen   int
	minOccur int
	output   string
}

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Trim a run of a known telomeric repeat from the ends of each record",
	RunE:  runTrim,
}

func init() {
	f := trimCmd.Flags()
	f.StringVar(&trimFlags.fasta, "fasta", "", "input FASTA file (required)")
	f.StringVar(&trimFlags.motif, "string", "", "telomeric repeat motif to trim (required)")
	f.IntVar(&trimFlags.minLen, "min_len", 1000, "minimum length a record must keep after trimming")
	f.IntVar(&trimFlags.minOccur, "min_occur", 5, "minimum number of consecutive repeat copies required")
	f.StringVar(&trimFlags.output, "output", "trimmed", "base name for the trimmed output FASTA")
	trimCmd.MarkFlagRequired("fasta")
	trimCmd.MarkFlagRequired("string")
}

func runTrim(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll("./trim", 0o755); err != nil {
		return tidkerr.Wrap(tidkerr.IO, "creating trim output directory", err)
	}

	outPath := filepath.Join("trim", trimFlags.output+"_trimmed.fasta")
	out, err := os.Create(outPath)
	if err != nil {
		return tidkerr.Wrap(tidkerr.IO, "creating trimmed output file", err)
	}
	defer out.Close()

	logPlus("Searching genome for telomeric repeat: %s", trimFlags.motif)

	rc, err := fastaio.Open(trimFlags.fasta)
	if err != nil {
		return err
	}
	defer rc.Close()

	it := fastaio.NewIterator(rc)
	var written int
	for it.Next() {
		r := it.Record()
		for _, res := range trimpkg.Trim(r.ID, r.Seq, trimFlags.motif, trimFlags.minLen, trimFlags.minOccur) {
			if _, err := fmt.Fprintf(out, ">%s\n%s\n", res.ID, res.Seq); err != nil {
				return tidkerr.Wrap(tidkerr.IO, "writing trimmed record", err)
			}
			written++
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	logPlus("Wrote %d reads of at least %d nucleotides after trimming %s repeat", written, trimFlags.minLen, trimFlags.motif)
	return nil
}
