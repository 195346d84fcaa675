package manager

import (
	"context"
	"sync"
)

// ProgressFunc reports a task's progress as it runs: percent in
// [-1,100], where -1 means error-terminal, plus a human-readable status
// message. Executors report their own completion; the Scheduler adds a
// (-1, message) call when a run fails or is cancelled, and a 100 call
// when a task chain completes.
type ProgressFunc func(percent int, message string)

func noopProgress(int, string) {}

// runBounded executes fn once per item in items, bounded to at most
// workers concurrent goroutines, and waits for all of them to return.
// No example in the retrieval pack carries a worker-pool library (the
// teacher's own fan-outs are unbounded sync.WaitGroup groups), so this
// is a plain buffered-channel semaphore rather than an imported one.
func runBounded[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T)) {
	if workers <= 0 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, item := range items {
		item := item
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			fn(ctx, item)
		}()
	}

	wg.Wait()
}
