// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"abfeat/internal/output"
)

// Config controls the fan-out of per-file tasks.
type Config struct {
	Threads     int  // worker goroutines; 0 = all CPUs
	Incremental bool // append results in completion order instead of submission order
}

// TaskFunc processes one input file. Failures are degraded inside the
// FileResult; a task never returns an error.
type TaskFunc func(ctx context.Context, path string) output.FileResult

// Collect fans files out to Threads workers and gathers one FileResult per
// file. The default ordering matches the submission order of files;
// Incremental records each result as its task finishes. Tasks share no
// mutable state, so the pool needs no locking beyond the channels. The only
// error is context cancellation.
func Collect(ctx context.Context, cfg Config, files []string, run TaskFunc) ([]output.FileResult, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	type job struct {
		idx  int
		path string
	}
	type done struct {
		idx int
		res output.FileResult
	}
	jobs := make(chan job)
	results := make(chan done, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				d := done{idx: j.idx, res: run(ctx, j.path)}
				select {
				case results <- d:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, f := range files {
			select {
			case jobs <- job{idx: i, path: f}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []output.FileResult
	if !cfg.Incremental {
		out = make([]output.FileResult, len(files))
	}
	collected := 0
	for d := range results {
		if cfg.Incremental {
			out = append(out, d.res)
		} else {
			out[d.idx] = d.res
		}
		collected++
	}
	if err := ctx.Err(); err != nil && collected < len(files) {
		return nil, err
	}
	return out, nil
}
