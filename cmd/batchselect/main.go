// Command batchselect runs a YAML manifest of selector jobs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shpitdev/csv-row-select/internal/app"
	"github.com/shpitdev/csv-row-select/internal/version"
)

func main() {
	ctx := context.Background()

	envOpts, err := loadBatchOptionsFromEnv()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "config error: %s\n", err)
		os.Exit(2)
	}

	fs := flag.NewFlagSet("batchselect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { usage(os.Stderr) }
	workers := fs.Int("workers", envOpts.Workers, "Number of concurrent jobs (env: WORKERS)")
	rateLimitJPS := fs.Float64("rate-limit-jps", envOpts.RateLimitJPS, "Global job-start rate limit (jobs/sec), 0 disables (env: RATE_LIMIT_JPS)")
	failFast := fs.Bool("fail-fast", envOpts.FailFast, "Stop on the first failed job (env: FAIL_FAST)")
	showVersion := fs.Bool("version", false, "Print the version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *showVersion {
		fmt.Println(version.Current)
		return
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(os.Stderr, "batchselect requires exactly one manifest path")
		usage(os.Stderr)
		os.Exit(2)
	}

	if err := app.RunBatch(ctx, fs.Arg(0), app.BatchOptions{
		Workers:      *workers,
		RateLimitJPS: *rateLimitJPS,
		FailFast:     *failFast,
	}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "batchselect failed: %s\n", err)
		os.Exit(1)
	}
}

func usage(w *os.File) {
	_, _ = fmt.Fprintf(w, `batchselect: run a manifest of shortest/pairs selector jobs

Usage:
  batchselect [flags] <manifest.yaml>

Manifest (YAML):
  jobs:
    - kind: shortest            # or: pairs
      input: data/all.csv
      output: data/short.csv    # optional; derived next to input when omitted

Jobs run concurrently up to --workers; each job itself is one sequential
selector pass over its input.

Environment:
  WORKERS         Default for --workers
  RATE_LIMIT_JPS  Default for --rate-limit-jps
  FAIL_FAST       Default for --fail-fast

`)
}

func loadBatchOptionsFromEnv() (app.BatchOptions, error) {
	workers, err := envInt("WORKERS", 4)
	if err != nil {
		return app.BatchOptions{}, err
	}
	rateLimitJPS, err := envFloat("RATE_LIMIT_JPS", 0)
	if err != nil {
		return app.BatchOptions{}, err
	}
	failFast, err := envBool("FAIL_FAST")
	if err != nil {
		return app.BatchOptions{}, err
	}

	return app.BatchOptions{
		Workers:      workers,
		RateLimitJPS: rateLimitJPS,
		FailFast:     failFast,
	}, nil
}

func envInt(varName string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(varName))
	if v == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", varName, v, err)
	}
	return out, nil
}

func envFloat(varName string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(varName))
	if v == "" {
		return fallback, nil
	}
	out, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", varName, v, err)
	}
	return out, nil
}

func envBool(varName string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(varName))
	if v == "" {
		return false, nil
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", varName, v, err)
	}
	return out, nil
}
