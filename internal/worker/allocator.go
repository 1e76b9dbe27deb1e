package worker

import "sync"

// slabSize is the chunk size the GlobalPool hands out, matching the
// reference engine's VectorAllocator (2 MiB slabs).
const slabSize = 2 << 20

// GlobalPool is the shared source of slab-sized byte chunks. It is the
// only allocator-layer object more than one thread touches concurrently;
// chunk handout itself is mutex-guarded since it happens rarely (once
// every slabSize bytes of churn per thread, not once per batch).
type GlobalPool struct {
	mu   sync.Mutex
	free [][]byte
}

// NewGlobalPool creates an empty pool; chunks are allocated lazily on
// first demand and recycled via Release.
func NewGlobalPool() *GlobalPool {
	return &GlobalPool{}
}

// Acquire returns a fresh slabSize chunk, reusing a released one if
// available.
func (p *GlobalPool) Acquire() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		chunk := p.free[n-1][:slabSize]
		p.free = p.free[:n-1]
		clear(chunk)
		return chunk
	}
	return make([]byte, slabSize)
}

// Release returns a chunk to the pool for reuse by any thread.
func (p *GlobalPool) Release(chunk []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, chunk[:0:cap(chunk)])
}

// VectorAllocator is a thread-local bump allocator carved from slabs
// obtained from a GlobalPool. Buffers it hands out are never individually
// freed; the allocator's whole arena is reset between queries (or
// pipelines) by calling Reset. Batch allocation costs about a pointer
// bump, with per-thread locality, since vector sizes are bounded and
// predictable.
type VectorAllocator struct {
	source *GlobalPool
	chunks [][]byte
	cur    []byte
	off    int
}

// NewVectorAllocator creates an allocator with no source set; call
// SetSource before first use.
func NewVectorAllocator() *VectorAllocator {
	return &VectorAllocator{}
}

// SetSource installs pool as this allocator's chunk source and returns
// the previous source, for a scoped-acquisition pattern: callers restore
// the previous source on every exit path via WithSource below rather
// than relying on remembering to call SetSource again.
func (a *VectorAllocator) SetSource(pool *GlobalPool) *GlobalPool {
	prev := a.source
	a.source = pool
	return prev
}

// WithSource runs fn with pool installed as the allocator's source,
// restoring the previous source afterward on every exit path (including
// panics) — an RAII-guard in place of a bare SetSource/restore pair.
func (a *VectorAllocator) WithSource(pool *GlobalPool, fn func()) {
	prev := a.SetSource(pool)
	defer a.SetSource(prev)
	fn()
}

// Alloc returns a zeroed byte slice of n bytes, bump-allocated from the
// current slab, fetching a new slab from the source pool if needed.
func (a *VectorAllocator) Alloc(n int) []byte {
	if n > slabSize {
		// Oversized request: a dedicated chunk, not tracked for reuse.
		return make([]byte, n)
	}
	if a.cur == nil || a.off+n > len(a.cur) {
		a.cur = a.source.Acquire()
		a.chunks = append(a.chunks, a.cur)
		a.off = 0
	}
	buf := a.cur[a.off : a.off+n]
	a.off += n
	return buf
}

// Reset releases every chunk this allocator is holding back to its
// source pool and rewinds to empty, ready for the next query/pipeline.
func (a *VectorAllocator) Reset() {
	for _, c := range a.chunks {
		if a.source != nil {
			a.source.Release(c)
		}
	}
	a.chunks = a.chunks[:0]
	a.cur = nil
	a.off = 0
}
