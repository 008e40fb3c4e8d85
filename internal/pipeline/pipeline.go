// internal/pipeline/pipeline.go

// Package pipeline fans sample directories out to a worker pool and collects
// one Record per sample. Samples are independent: workers share only the
// read-only Auditor, and results land in per-index slots, so collection needs
// no locking and preserves discovery order.
package pipeline

import (
	"context"
	"sync"

	"teaudit/internal/audit"
)

// Map audits every directory in dirs with fn using up to threads workers and
// returns the Records in input order. Cancellation of ctx stops new work;
// Records already produced are kept, the rest are zero-valued.
func Map(ctx context.Context, threads int, dirs []string, fn func(string) audit.Record) []audit.Record {
	if threads < 1 {
		threads = 1
	}
	if threads > len(dirs) {
		threads = len(dirs)
	}

	out := make([]audit.Record, len(dirs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(dirs[i])
			}
		}()
	}

feed:
	for i := range dirs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return out
}
