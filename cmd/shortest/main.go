// Command shortest writes the shortest half of a CSV's rows, ranked by the
// character length of the first column, preserving original row order.
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
	defaultOutName = "short.csv"
)

func main() {
	fs := flag.NewFlagSet("shortest", flag.ContinueOnError)
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

	if err := app.RunShortest(inputPath, outputPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "shortest failed: %s\n", err)
		os.Exit(1)
	}
}

func usage(w *os.File) {
	_, _ = fmt.Fprintf(w, `shortest: keep the shortest 50%% of CSV rows by first-column length

Usage:
  shortest [input_csv] [output_csv]

Arguments:
  input_csv   Input CSV path (default: %s)
  output_csv  Output CSV path (default: <input_dir>/%s)

Rows are ranked by the character count of column 0 (0 for empty rows), ties
broken by original position, and the first N/2 are written in input order.

`, defaultInput, defaultOutName)
}
