// Package app ties the selectors to file I/O and runs manifest batches.
package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shpitdev/csv-row-select/internal/batch"
	"github.com/shpitdev/csv-row-select/pkg/rows"
	"github.com/shpitdev/csv-row-select/pkg/selector"
	"github.com/shpitdev/csv-row-select/pkg/worker"
)

// DeriveOutput returns the conventional output path for an input: the given
// filename in the input's directory.
func DeriveOutput(inputPath, filename string) string {
	return filepath.Join(filepath.Dir(inputPath), filename)
}

// RunShortest writes the shortest half of the input's rows, ranked by the
// character length of field 0, to outputPath in original order.
func RunShortest(inputPath, outputPath string) error {
	inF, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = inF.Close()
	}()

	recs, err := rows.ReadAll(inF)
	if err != nil {
		return err
	}

	lengths := make([]int, len(recs))
	for i, rec := range recs {
		lengths[i] = selector.ColumnLength(rec)
	}
	selected := selector.ShortestHalf(lengths)

	kept := make([][]string, 0, len(selected))
	for i, rec := range recs {
		if selected[i] {
			kept = append(kept, rec)
		}
	}

	outF, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = outF.Close()
	}()

	if err := rows.Write(outF, kept); err != nil {
		return err
	}
	return outF.Close()
}

// RunPairs streams the input to outputPath, keeping rows whose field 0,
// trimmed, contains exactly one space. Memory stays constant in the input
// size.
func RunPairs(inputPath, outputPath string) error {
	inF, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = inF.Close()
	}()

	outF, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = outF.Close()
	}()

	cw := rows.NewWriter(outF)
	err = rows.Scan(inF, func(rec []string) error {
		if !selector.IsPairRecord(rec) {
			return nil
		}
		return cw.Write(rec)
	})
	if err != nil {
		return err
	}
	if err := cw.Flush(); err != nil {
		return err
	}
	return outF.Close()
}

// BatchOptions controls manifest execution.
type BatchOptions struct {
	Workers      int
	RateLimitJPS float64
	FailFast     bool
}

// RunBatch executes every job in the manifest at manifestPath.
//
// Jobs run concurrently on a bounded pool; each individual job is one
// sequential selector run. Without FailFast, all jobs run and the error
// reports how many failed.
func RunBatch(ctx context.Context, manifestPath string, opts BatchOptions) error {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	logf := func(format string, args ...any) {
		prefix := make([]any, 0, len(args)+1)
		prefix = append(prefix, runID)
		prefix = append(prefix, args...)
		logger.Printf("run=%s "+format, prefix...)
	}
	runStart := time.Now()

	m, err := batch.Load(manifestPath)
	if err != nil {
		return err
	}
	logf(
		"batch start: manifest=%s jobs=%d workers=%d rateLimitJPS=%g failFast=%t",
		manifestPath,
		len(m.Jobs),
		opts.Workers,
		opts.RateLimitJPS,
		opts.FailFast,
	)

	policy := worker.FailurePolicyCollect
	if opts.FailFast {
		policy = worker.FailurePolicyFailFast
	}

	out, err := worker.RunAll(ctx, m.Jobs, func(ctx context.Context, job batch.Job) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		jobStart := time.Now()
		runErr := runJob(job)
		if runErr != nil {
			logf(
				"job failed: kind=%s input=%s output=%s duration=%s error=%q",
				job.Kind,
				job.Input,
				job.OutputPath(),
				time.Since(jobStart).Round(time.Millisecond),
				runErr.Error(),
			)
			return runErr
		}
		logf(
			"job complete: kind=%s input=%s output=%s duration=%s",
			job.Kind,
			job.Input,
			job.OutputPath(),
			time.Since(jobStart).Round(time.Millisecond),
		)
		return nil
	}, worker.Options{
		Workers:       opts.Workers,
		RateLimitJPS:  opts.RateLimitJPS,
		FailurePolicy: policy,
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range out {
		if res.Err != nil {
			failed++
		}
	}
	logf(
		"batch complete: jobs=%d ok=%d failed=%d totalDuration=%s",
		len(out),
		len(out)-failed,
		failed,
		time.Since(runStart).Round(time.Millisecond),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(out))
	}
	return nil
}

func runJob(job batch.Job) error {
	switch job.Kind {
	case batch.KindShortest:
		return RunShortest(job.Input, job.OutputPath())
	case batch.KindPairs:
		return RunPairs(job.Input, job.OutputPath())
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}
