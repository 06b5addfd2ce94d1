package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numTasks = 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if !pool.ExecuteAll(work) {
		t.Fatal("ExecuteAll returned false on a running pool")
	}
	// ExecuteAll must not return before every task has finished.
	if counter.Load() != numTasks {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_DisjointWrites(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	out := make([]int, 1000)
	bands := SplitRows(len(out), 7, 2, 1)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for r := b.Start; r < b.End; r++ {
				out[r] = r * 2
			}
		}
	}
	pool.ExecuteAll(work)

	for i, v := range out {
		if v != i*2 {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if !pool.ExecuteAll(nil) {
		t.Error("ExecuteAll(nil) = false, want true")
	}
}

func TestWorkerPool_ExecuteAll_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	const callers, perCaller = 8, 50

	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), perCaller)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != callers*perCaller {
		t.Errorf("counter = %d, want %d", got, callers*perCaller)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	// Double close must not panic.
	pool.Close()

	ran := false
	if pool.ExecuteAll([]func(){func() { ran = true }}) {
		t.Error("ExecuteAll on closed pool returned true")
	}
	if ran {
		t.Error("task ran on closed pool")
	}
}

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(runtime.GOMAXPROCS(0))
	defer pool.Close()

	work := make([]func(), pool.Workers())
	for i := range work {
		work[i] = func() {}
	}

	b.ResetTimer()
	for b.Loop() {
		pool.ExecuteAll(work)
	}
}
