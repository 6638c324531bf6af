package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/estimate"
	"github.com/biogo/tidk/internal/plotting"
	"github.com/biogo/tidk/internal/tidkerr"
	"github.com/biogo/tidk/internal/window"
)

var plotFlags struct {
	tsv       string
	out       string
	canonical bool
	top       int
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a windowed search TSV or canonical-estimate TSV as an SVG chart",
	RunE:  runPlot,
}

func init() {
	f := plotCmd.Flags()
	f.StringVar(&plotFlags.tsv, "tsv", "", "input TSV file, as produced by search/find or explore (required)")
	f.StringVar(&plotFlags.out, "out", "plot.svg", "output SVG file")
	f.BoolVar(&plotFlags.canonical, "canonical", false, "interpret --tsv as a canonical-estimate table instead of a windowed one")
	f.IntVar(&plotFlags.top, "top", 10, "number of canonical repeats to plot (--canonical only)")
	plotCmd.MarkFlagRequired("tsv")
}

func runPlot(cmd *cobra.Command, args []string) error {
	f, err := os.Open(plotFlags.tsv)
	if err != nil {
		return tidkerr.Wrap(tidkerr.IO, "opening tsv input", err)
	}
	defer f.Close()

	out, err := os.Create(plotFlags.out)
	if err != nil {
		return tidkerr.Wrap(tidkerr.IO, "creating svg output", err)
	}
	defer out.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	if err != nil {
		return tidkerr.Wrap(tidkerr.BadInput, "parsing tsv input", err)
	}
	if len(rows) < 2 {
		return tidkerr.New(tidkerr.BadInput, "tsv input has no data rows")
	}
	rows = rows[1:]

	if plotFlags.canonical {
		var canon []estimate.CanonicalRepeat
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			count, err := strconv.Atoi(row[1])
			if err != nil {
				continue
			}
			canon = append(canon, estimate.CanonicalRepeat{Unit: dna.Canonical(row[0]), Count: count})
		}
		return plotting.CanonicalBar(canon, plotFlags.top, out)
	}

	var windows []window.Count
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		end, err1 := strconv.Atoi(row[1])
		fwd, err2 := strconv.Atoi(row[2])
		rev, err3 := strconv.Atoi(row[3])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		windows = append(windows, window.Count{ID: row[0], WindowEnd: end, Fwd: fwd, Rev: rev, Motif: row[4]})
	}
	return plotting.WindowTable(windows, out)
}
