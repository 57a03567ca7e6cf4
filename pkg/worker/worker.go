// Package worker runs independent jobs on a bounded pool of goroutines.
//
// It exists for the batch runner: each job there is a full sequential
// selector run over one file pair, and jobs have no ordering dependency on
// each other.
package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type FailurePolicy int

const (
	// FailurePolicyCollect runs every job and records per-job errors.
	FailurePolicyCollect FailurePolicy = iota
	// FailurePolicyFailFast cancels remaining jobs on the first error.
	FailurePolicyFailFast
)

type Options struct {
	Workers int

	// RateLimitJPS is a global cap on job starts per second across all
	// workers. Set to <=0 to disable.
	RateLimitJPS float64

	FailurePolicy FailurePolicy
}

// Result holds the outcome for one input item.
type Result[In any] struct {
	Input In
	Err   error
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 4
	}
	return o
}

// RunAll runs fn over all items and returns input-order results.
//
// Under FailurePolicyCollect the returned error is nil even when individual
// jobs failed; callers inspect Result.Err. Under FailurePolicyFailFast the
// first job error cancels the run and is returned.
func RunAll[In any](
	ctx context.Context,
	items []In,
	fn func(context.Context, In) error,
	opts Options,
) ([]Result[In], error) {
	opts = opts.withDefaults()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var limiter *rate.Limiter
	if opts.RateLimitJPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimitJPS), 1)
	}

	out := make([]Result[In], len(items))

	type job struct {
		idx int
		in  In
	}
	jobs := make(chan job)

	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	var wg sync.WaitGroup
	workerFn := func() {
		defer wg.Done()
		for j := range jobs {
			if runCtx.Err() != nil {
				return
			}
			if limiter != nil {
				if err := limiter.Wait(runCtx); err != nil {
					out[j.idx] = Result[In]{Input: j.in, Err: err}
					return
				}
			}
			err := fn(runCtx, j.in)
			out[j.idx] = Result[In]{Input: j.in, Err: err}
			if err != nil && opts.FailurePolicy == FailurePolicyFailFast {
				fail(err)
				return
			}
		}
	}

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go workerFn()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case jobs <- job{idx: i, in: item}:
			case <-runCtx.Done():
				return
			}
		}
	}()

	wg.Wait()

	mu.Lock()
	err := firstErr
	mu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
