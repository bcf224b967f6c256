package tasks

import (
	"context"
	"sync"

	"github.com/desertthunder/tubestuff/internal/resolver"
)

const (
	defaultWorkers = 4
	maxWorkers     = 16
)

// Resolver resolves a single input.
type Resolver interface {
	Resolve(ctx context.Context, input string) (resolver.Reference, error)
}

// BatchOpts configures [ResolveAll].
type BatchOpts struct {
	Workers  int                   // Concurrent resolves (default 4, capped at 16)
	Progress chan<- ProgressUpdate // Optional
}

// BatchResult is the outcome for one input.
type BatchResult struct {
	Input     string             `json:"input"`
	Reference resolver.Reference `json:"reference"`
	Err       error              `json:"-"`
}

// ResolveAll resolves inputs concurrently and returns one result per input, in input order.
//
// A failed lookup only fails its own result. Inputs not yet started when ctx is cancelled
// get ctx's error.
func ResolveAll(ctx context.Context, r Resolver, inputs []string, opts BatchOpts) []BatchResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]BatchResult, len(inputs))
	jobs := make(chan int)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := BatchResult{Input: inputs[i]}
				if err := ctx.Err(); err != nil {
					res.Err = err
				} else {
					res.Reference, res.Err = r.Resolve(ctx, inputs[i])
				}
				results[i] = res

				mu.Lock()
				completed++
				step := completed
				mu.Unlock()

				sendProgress(opts.Progress, resolvedUpdate(step, len(inputs), res))
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
