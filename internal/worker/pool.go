package worker

import "context"

// Pool bounds how many blocking model calls run at once, so one slow
// inference never starves unrelated requests.
type Pool struct {
	sem chan struct{}
}

// NewPool creates a pool allowing up to size concurrent tasks.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 4
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Do runs fn on the pool and waits for it to finish. Both the wait for a
// free slot and the wait for completion honor ctx. If the caller is
// cancelled after fn has started, fn runs to completion in its goroutine
// and the result is discarded.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-p.sem }()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
