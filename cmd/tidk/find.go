package main

import (
	"context"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/clade"
	"github.com/biogo/tidk/internal/emit"
	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/window"
)

// defaultCladeURL points at the hosted clade→telomeric-repeat reference
// table this tool ships against.
const defaultCladeURL = "https://raw.githubusercontent.com/tolkit/telomeric-identifier/main/clades.csv"

var findFlags struct {
	fasta  string
	clade  string
	window int
	print  bool
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Count occurrences of a clade's known telomeric repeat(s) in sliding windows",
	RunE:  runFind,
}

func init() {
	f := findCmd.Flags()
	f.StringVar(&findFlags.fasta, "fasta", "", "input FASTA file")
	f.StringVar(&findFlags.clade, "clade", "", "clade (taxonomic Order) to resolve motifs for")
	f.IntVar(&findFlags.window, "window", 10_000, "window size in bases")
	f.BoolVar(&findFlags.print, "print", false, "print the resolved clade table instead of searching")
}

func runFind(cmd *cobra.Command, args []string) error {
	cacheDir, err := clade.DefaultCacheDir()
	if err != nil {
		return err
	}
	table, err := clade.Fetch(context.Background(), defaultCladeURL, cacheDir)
	if err != nil {
		return err
	}

	if findFlags.print {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer tw.Flush()
		for cladeName, motifs := range table {
			for _, m := range motifs {
				tw.Write([]byte(cladeName + "\t" + m + "\n"))
			}
		}
		return nil
	}

	motifs, err := table.Motifs(findFlags.clade)
	if err != nil {
		return err
	}

	rc, err := fastaio.Open(findFlags.fasta)
	if err != nil {
		return err
	}
	defer rc.Close()

	var rows []window.Count
	it := fastaio.NewIterator(rc)
	for it.Next() {
		r := it.Record()
		rs, err := window.Slide(r.ID, r.Seq, motifs, findFlags.window)
		if err != nil {
			return err
		}
		rows = append(rows, rs...)
	}
	if err := it.Err(); err != nil {
		return err
	}

	return emit.WindowedTSV(os.Stdout, rows)
}
