package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/emit"
	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/tidkerr"
	"github.com/biogo/tidk/internal/window"
)

var searchFlags struct {
	fasta     string
	motif     string
	window    int
	extension string
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Count forward and reverse-complement occurrences of a known repeat in sliding windows",
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.fasta, "fasta", "", "input FASTA file (required)")
	f.StringVar(&searchFlags.motif, "string", "", "telomeric repeat motif to search for (required)")
	f.IntVar(&searchFlags.window, "window", 10_000, "window size in bases")
	f.StringVar(&searchFlags.extension, "extension", "tsv", "output format: tsv or bedgraph")
	searchCmd.MarkFlagRequired("fasta")
	searchCmd.MarkFlagRequired("string")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchFlags.extension != "tsv" && searchFlags.extension != "bedgraph" {
		return tidkerr.New(tidkerr.BadConfig, "extension must be tsv or bedgraph")
	}

	rc, err := fastaio.Open(searchFlags.fasta)
	if err != nil {
		return err
	}
	defer rc.Close()

	var rows []window.Count
	it := fastaio.NewIterator(rc)
	for it.Next() {
		r := it.Record()
		rs, err := window.Slide(r.ID, r.Seq, []string{searchFlags.motif}, searchFlags.window)
		if err != nil {
			return err
		}
		rows = append(rows, rs...)
	}
	if err := it.Err(); err != nil {
		return err
	}

	if searchFlags.extension == "bedgraph" {
		return emit.Bedgraph(os.Stdout, rows, searchFlags.window)
	}
	return emit.WindowedTSV(os.Stdout, rows)
}
