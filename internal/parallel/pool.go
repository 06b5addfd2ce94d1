// Package parallel runs row bands of a frame on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool is a fixed set of goroutines draining one shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use. ExecuteAll may be
// called from several goroutines at once; their tasks interleave.
type WorkerPool struct {
	workers int
	queue   chan func()

	// mu guards closed and the queue against send-after-close.
	mu     sync.RWMutex
	closed bool

	wg sync.WaitGroup
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker runs tasks until the queue is closed and drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for task := range p.queue {
		task()
	}
}

// ExecuteAll runs every task and waits for all of them to finish.
// It returns false without running anything if the pool is closed.
func (p *WorkerPool) ExecuteAll(tasks []func()) bool {
	if len(tasks) == 0 {
		return true
	}

	var done sync.WaitGroup
	done.Add(len(tasks))

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	for _, fn := range tasks {
		task := fn
		p.queue <- func() {
			defer done.Done()
			task()
		}
	}
	p.mu.RUnlock()

	done.Wait()
	return true
}

// Close stops accepting work, lets queued tasks finish and stops the
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
