package driver

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// BatchItem is one unit of work dispatched by RunBatch: Do is called
// with the batch's shared context and ctx, and its result becomes
// BatchResult.Value/Err at the matching index.
type BatchItem[T any] struct {
	Do func(ctx context.Context) (T, error)
}

// BatchResult is one BatchItem's outcome. Err is set either from Do's
// own return or from a recovered panic; Panic carries the panic value
// for callers that want to re-raise or log it distinctly from an
// ordinary error.
type BatchResult[T any] struct {
	Value T
	Err   error
	Panic any
}

// RunBatch executes items concurrently, bounded by maxConcurrency, and
// returns one BatchResult per item in input order.
//
// Unlike golang.org/x/sync/errgroup's default behavior, one item's
// error or panic never cancels or skips its siblings: spec §5's batch
// model requires every sibling query in a transaction-less batch to run
// to completion independently, with failures reported per-item rather
// than aborting the whole batch. Concurrency is still bounded, via
// golang.org/x/sync/semaphore, so a large batch can't spawn unbounded
// goroutines against the driver.
func RunBatch[T any](ctx context.Context, items []BatchItem[T], maxConcurrency int64) []BatchResult[T] {
	results := make([]BatchResult[T], len(items))
	if len(items) == 0 {
		return results
	}
	if maxConcurrency <= 0 {
		maxConcurrency = int64(len(items))
	}

	sem := semaphore.NewWeighted(maxConcurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		i, item := i, item
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = BatchResult[T]{Err: err}
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			defer func() {
				if p := recover(); p != nil {
					results[i] = BatchResult[T]{Panic: p, Err: fmt.Errorf("driver: batch item %d panicked: %v", i, p)}
				}
			}()

			value, err := item.Do(ctx)
			results[i] = BatchResult[T]{Value: value, Err: err}
		}()
	}

	wg.Wait()
	return results
}
