package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/emit"
	"github.com/biogo/tidk/internal/estimate"
	"github.com/biogo/tidk/internal/repeatrun"
	"github.com/biogo/tidk/internal/scan"
	"github.com/biogo/tidk/internal/tidkerr"
)

var exploreFlags struct {
	fasta     string
	length    int
	minimum   int
	maximum   int
	threshold int
	distance  float64
	output    string
	verbose   bool
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore a genome for de-novo candidate telomeric repeats",
	RunE:  runExplore,
}

func init() {
	f := exploreCmd.Flags()
	f.StringVar(&exploreFlags.fasta, "fasta", "", "input FASTA file (required)")
	f.IntVar(&exploreFlags.length, "length", 0, "chunk length to search for (0 disables single-length mode)")
	f.IntVar(&exploreFlags.minimum, "minimum", 0, "minimum chunk length for a range search")
	f.IntVar(&exploreFlags.maximum, "maximum", 0, "maximum chunk length for a range search")
	f.IntVar(&exploreFlags.threshold, "threshold", 0, "report only runs repeating more than this many times")
	f.Float64Var(&exploreFlags.distance, "distance", 0.1, "proportion of chromosome length to search from each end, in (0, 0.5]")
	f.StringVar(&exploreFlags.output, "output", "", "optional bed file to write candidate repeat locations to")
	f.BoolVar(&exploreFlags.verbose, "verbose", false, "accepted but has no effect: explore logs the same diagnostics with or without it")
	exploreCmd.MarkFlagRequired("fasta")
}

func runExplore(cmd *cobra.Command, args []string) error {
	if exploreFlags.distance <= 0 || exploreFlags.distance > 0.5 {
		return tidkerr.New(tidkerr.BadConfig, "distance from chromosome end must be in (0, 0.5]")
	}

	open := opener(exploreFlags.fasta)
	workers := exploreWorkers()

	var runs []repeatrun.Run
	var bed []scan.BedRow
	var err error

	if exploreFlags.length > 0 {
		logPlus("Exploring genome for potential telomeric repeats of length: %d", exploreFlags.length)
		runs, bed, err = scan.Single(open, exploreFlags.length, exploreFlags.distance, exploreFlags.threshold, workers)
	} else {
		if exploreFlags.minimum <= 0 || exploreFlags.maximum < exploreFlags.minimum {
			return tidkerr.New(tidkerr.BadConfig, "minimum/maximum chunk length range is invalid")
		}
		logPlus("Exploring genome for potential telomeric repeats between lengths %d and %d", exploreFlags.minimum, exploreFlags.maximum)
		runs, bed, err = scan.Range(open, exploreFlags.minimum, exploreFlags.maximum, exploreFlags.distance, exploreFlags.threshold, workers)
	}
	if err != nil {
		return err
	}

	logPlus("Finished searching genome")
	logPlus("Generating output")

	est := estimate.Estimate(runs)
	if err := emit.CanonicalEstimates(os.Stdout, est); err != nil {
		return tidkerr.Wrap(tidkerr.IO, "writing canonical estimates", err)
	}

	if exploreFlags.output != "" {
		f, err := os.Create(exploreFlags.output)
		if err != nil {
			return tidkerr.Wrap(tidkerr.IO, "creating bed output file", err)
		}
		defer f.Close()
		if err := emit.ExploreBed(f, bed); err != nil {
			return tidkerr.Wrap(tidkerr.IO, "writing bed output", err)
		}
	}

	return nil
}

func exploreWorkers() int {
	return numCPU()
}
