package worker

import (
	"runtime"
	"sync/atomic"
)

// Barrier is a flat, reusable rendezvous for a fixed number of threads,
// ported from the reference engine's Barrier (include/common/runtime/
// Barrier.hpp): single-finalize, leader detection, and reuse across many
// consecutive waits via a round counter.
//
// Hot atomics (counter, round) each get their own cache line to avoid
// false sharing between unrelated barrier waits.
type Barrier struct {
	counter atomic.Int64
	_       [56]byte // pad counter onto its own cache line
	round   atomic.Uint64
	_       [56]byte
	n       int64
}

// NewBarrier creates a Barrier for n participating threads.
func NewBarrier(n int) *Barrier {
	b := &Barrier{n: int64(n)}
	b.counter.Store(int64(n))
	return b
}

// Wait blocks the calling thread until all n threads have called Wait
// for the current round. The last arriver runs finalizer() before any
// thread (including itself) returns, and is the only caller to receive
// true.
//
// round.Load() happens strictly before counter.Add(-1), and both are
// real atomic operations under Go's memory model (equivalent to
// acquire/seq_cst), so a thread can never observe a stale round and
// alias a previous wait.
func (b *Barrier) Wait(finalizer func()) bool {
	myRound := b.round.Load()
	remaining := b.counter.Add(-1)
	if remaining == 0 {
		if finalizer != nil {
			finalizer()
		}
		b.counter.Store(b.n)
		b.round.Add(1)
		return true
	}
	for b.round.Load() == myRound {
		runtime.Gosched()
	}
	return false
}
