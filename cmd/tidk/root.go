package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// diag is the [+]/[-] prefixed diagnostic logger used across every
// subcommand, lifted directly from the original tool's own CLI conventions.
var diag = log.New(os.Stderr, "", 0)

func logPlus(format string, args ...interface{}) {
	diag.Printf("[+]\t"+format, args...)
}

func logMinus(format string, args ...interface{}) {
	diag.Printf("[-]\t"+format, args...)
}

var rootCmd = &cobra.Command{
	Use:   "tidk",
	Short: "tidk identifies and characterizes telomeric tandem repeats in genome assemblies",
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(minCmd)
	rootCmd.AddCommand(plotCmd)
}

// Execute runs the root command, exiting with status 1 on any error per
// spec.md §6 (0 success, 1 configuration or I/O error).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logMinus("%v", err)
		os.Exit(1)
	}
}
