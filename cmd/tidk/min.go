package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biogo/tidk/internal/dna"
	"github.com/biogo/tidk/internal/fastaio"
	"github.com/biogo/tidk/internal/tidkerr"
)

var minFlags struct {
	file  string
	fasta bool
}

var minCmd = &cobra.Command{
	Use:   "min [DNA string...]",
	Short: "Print the lex-min canonical form of one or more DNA strings",
	RunE:  runMin,
}

func init() {
	f := minCmd.Flags()
	f.StringVar(&minFlags.file, "file", "", "read DNA strings (or a FASTA file) from this path instead of stdin")
	f.BoolVar(&minFlags.fasta, "fasta", false, "treat the input (file or stdin) as FASTA")
}

func runMin(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		for _, s := range args {
			fmt.Println(dna.LexMin(s))
		}
		return nil
	}

	if minFlags.file != "" {
		f, err := os.Open(minFlags.file)
		if err != nil {
			return tidkerr.Wrap(tidkerr.IO, "opening input file", err)
		}
		defer f.Close()
		return minFromReader(f, minFlags.fasta)
	}

	return minFromReader(os.Stdin, minFlags.fasta)
}

func minFromReader(r *os.File, isFasta bool) error {
	if isFasta {
		it := fastaio.NewIterator(r)
		for it.Next() {
			rec := it.Record()
			fmt.Printf(">%s\n%s\n", rec.ID, dna.LexMin(string(rec.Seq)))
		}
		return it.Err()
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) > 0 && line[0] == '>' {
			return tidkerr.New(tidkerr.BadInput, "input looks like FASTA; pass --fasta")
		}
		fmt.Println(dna.LexMin(line))
	}
	if err := sc.Err(); err != nil {
		return tidkerr.Wrap(tidkerr.IO, "reading input", err)
	}
	return nil
}
