// Package bufpool recycles packed-pixel word buffers between frames.
package bufpool

import "sync"

// Pool is a thread-safe pool of []uint32 buffers.
//
// Buffers are grouped by length, so a stream of same-sized frames reuses
// the same few allocations. Unlike sync.Pool, retained buffers survive
// garbage collections.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint32
	maxSize int // max buffers per bucket
}

// New creates a pool that keeps at most maxPerBucket buffers of each length.
// A maxPerBucket of 0 means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint32),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n words. Reused buffers are not cleared:
// converters overwrite every word.
// Returns nil if n is not positive.
func (p *Pool) Get(n int) []uint32 {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]uint32, n)
}

// Put returns a buffer to the pool. The caller must not use buf afterwards.
// Empty buffers and buffers beyond the bucket limit are dropped.
func (p *Pool) Put(buf []uint32) {
	n := len(buf)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of buffers currently retained for length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}
