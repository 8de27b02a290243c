// Package parallel provides the fixed-size worker pool the batch
// query runner (RunBatch, in batch.go) uses to evaluate a script of
// independent queries concurrently over one read-only database
// snapshot.
//
// This is deliberately the static half of a worker pool: a known-size
// batch of independent queries needs neither the dynamic scaling nor
// the deadlock detector a long-lived, open-ended goal search might
// justify. There is exactly one pool shape here, sized once at
// construction.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit once the pool has been shut
// down.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// Pool is a fixed-size pool of goroutines draining a shared task
// channel. Tasks submitted after Shutdown has been called are
// rejected.
type Pool struct {
	workers      int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewPool starts a Pool with the given number of workers. workers <= 0
// defaults to runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		workers:      workers,
		taskChan:     make(chan func(), workers*2),
		shutdownChan: make(chan struct{}),
	}

	p.workerWg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task, ok := <-p.taskChan:
			if !ok {
				return
			}
			task()
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit enqueues task for execution by some worker. It blocks until a
// slot is free, ctx is cancelled, or the pool is shut down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}

	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for in-flight tasks to
// finish. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.workerWg.Wait()
	})
}

// Workers returns the fixed worker count the pool was started with.
func (p *Pool) Workers() int { return p.workers }
