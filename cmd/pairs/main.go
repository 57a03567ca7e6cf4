// Command pairs writes the CSV rows whose first column, trimmed, is a
// two-word phrase (exactly one interior space), preserving row order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shpitdev/csv-row-select/internal/app"
	"github.com/shpitdev/csv-row-select/internal/version"
)

const (
	defaultInput   = "out/examples_rewrite2_csv/all.csv"
	defaultOutName = "pairs.csv"
)

func main() {
	fs := flag.NewFlagSet("pairs", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { usage(os.Stderr) }
	showVersion := fs.Bool("version", false, "Print the version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *showVersion {
		fmt.Println(version.Current)
		return
	}
	if fs.NArg() > 2 {
		_, _ = fmt.Fprintf(os.Stderr, "too many arguments: %d\n\n", fs.NArg())
		usage(os.Stderr)
		os.Exit(2)
	}

	inputPath := defaultInput
	if fs.NArg() >= 1 {
		inputPath = fs.Arg(0)
	}
	outputPath := ""
	if fs.NArg() >= 2 {
		outputPath = fs.Arg(1)
	}
	if outputPath == "" {
		outputPath = app.DeriveOutput(inputPath, defaultOutName)
	}

	if err := app.RunPairs(inputPath, outputPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pairs failed: %s\n", err)
		os.Exit(1)
	}
}

func usage(w *os.File) {
	_, _ = fmt.Fprintf(w, `pairs: keep CSV rows whose first column is a two-word phrase

Usage:
  pairs [input_csv] [output_csv]

Arguments:
  input_csv   Input CSV path (default: %s)
  output_csv  Output CSV path (default: <input_dir>/%s)

A row matches when column 0, after trimming leading/trailing whitespace,
contains exactly one space character. Only the literal space counts; tabs
and doubled spaces do not match. Matching rows are written unmodified.

`, defaultInput, defaultOutName)
}
