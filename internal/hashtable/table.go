// Package hashtable implements the hash join's linear-probing chained
// hash table: a bucket-head directory sized to the next
// power of two of max(1024, 2×count), a fixed-width entry arena built by
// partition-and-scatter, and three probe algorithms that all produce the
// same multiset of (probeRow, buildRow) pairs.
//
// Grounded in jakewins-cockroach/pkg/sql/colexec/hashjoiner.go's
// bucket-chaining hash table (first[]/next[] arrays, lookupInitial/check/
// findNext probe loop), generalized from its single-batch in-memory
// build to a cooperative multi-thread build.
package hashtable

import "sync/atomic"

const emptyBucket = -1

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Table is the shared hash table a Hashjoin's build phase publishes and
// every worker's probe phase reads. Its entry arena is stored as
// parallel slices (struct-of-arrays) rather than a slice of structs, so
// the SIMD probe kernel can gather hash/key columns directly through
// internal/simd.GatherIndex.
type Table struct {
	buckets []atomic.Int32 // bucket head: index into the arena, or -1
	mask    int32

	hashArena []uint64
	keyArena  []int64
	rowArena  []int32
	nextArena []int32
}

// NewTable allocates a Table sized for count entries: the bucket
// directory has nextPow2(max(1024, 2*count)) slots,
// and the arena has exactly count slots. Built by the build phase's
// leader once every thread has reported its local entry count.
func NewTable(count int) *Table {
	capacity := nextPow2(max(1024, 2*count))
	buckets := make([]atomic.Int32, capacity)
	for i := range buckets {
		buckets[i].Store(emptyBucket)
	}
	return &Table{
		buckets:   buckets,
		mask:      int32(capacity - 1),
		hashArena: make([]uint64, count),
		keyArena:  make([]int64, count),
		rowArena:  make([]int32, count),
		nextArena: make([]int32, count),
	}
}

// Count reports the arena's total entry count.
func (t *Table) Count() int { return len(t.hashArena) }

func (t *Table) bucketIndex(hash uint64) int32 {
	return int32(hash) & t.mask
}

// Scatter writes one thread-local entry batch into the shared arena
// starting at startIdx, linking each entry into its bucket's chain via
// compare-and-swap on the bucket head. Multiple
// threads call Scatter concurrently over disjoint [startIdx, startIdx+n)
// ranges; only the bucket-head CAS is contended.
func (t *Table) Scatter(local *LocalBuild, startIdx int32) {
	for i := range local.hash {
		idx := startIdx + int32(i)
		t.hashArena[idx] = local.hash[i]
		t.keyArena[idx] = local.key[i]
		t.rowArena[idx] = local.row[i]

		bucket := t.bucketIndex(local.hash[i])
		for {
			old := t.buckets[bucket].Load()
			t.nextArena[idx] = old
			if t.buckets[bucket].CompareAndSwap(old, idx) {
				break
			}
		}
	}
}

// headsSnapshot materializes the bucket-head directory as a plain int32
// slice. Valid only once the build phase has completed: probing never
// races with scattering, so reading through atomic.Int32.Load once up front and
// handing probes a plain slice is safe and lets every probe algorithm
// index bucket heads without an atomic load per row.
func (t *Table) headsSnapshot() []int32 {
	out := make([]int32, len(t.buckets))
	for i := range t.buckets {
		out[i] = t.buckets[i].Load()
	}
	return out
}
