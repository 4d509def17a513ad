// Package tasks provides a process-wide bounded pool for fire-and-forget
// background work. The pool's lifecycle is tied to application start and
// stop; it is never created per call.
package tasks

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"fixitfast_technician/platform/logger"
)

// Pool runs submitted tasks on background goroutines with a concurrency
// bound. Task failures are logged, never returned to the submitter.
type Pool struct {
	sem    *semaphore.Weighted
	log    *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// NewPool creates a pool allowing at most size concurrent tasks.
func NewPool(size int64, log *logger.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		sem:    semaphore.NewWeighted(size),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Submit schedules fn on a background goroutine. It blocks only while the
// pool is at capacity, and reports false when the pool is already shut
// down.
func (p *Pool) Submit(name string, fn func(ctx context.Context) error) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.wg.Add(1)
	p.mu.Unlock()

	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		p.wg.Done()
		return false
	}

	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		if err := fn(p.ctx); err != nil {
			p.log.Error("background task failed", "task", name, "error", err.Error())
		}
	}()
	return true
}

// Shutdown stops accepting tasks and waits for running ones until ctx
// expires.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}
