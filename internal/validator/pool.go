package validator

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Pool runs archive validation on a bounded set of worker goroutines so
// decompression never runs on a request goroutine.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a Pool running at most workers validations at once.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

type outcome struct {
	result Result
	err    error
}

// Do waits for a free worker and runs fn on it, returning its outcome.
// ctx only bounds the wait for a worker; once fn starts it runs to completion.
func (p *Pool) Do(ctx context.Context, fn func() (Result, error)) (Result, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return Result{}, blockingError(fmt.Errorf("acquiring validation worker: %w", err))
	}

	done := make(chan outcome, 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: blockingError(fmt.Errorf("validation worker panicked: %v", r))}
			}
		}()
		res, err := fn()
		done <- outcome{result: res, err: err}
	}()

	out := <-done
	return out.result, out.err
}
