package hashtable

import (
	"sync/atomic"

	"github.com/ansrivas/vecbase/internal/types"
)

// groupEntry is one distinct group key's accumulator in a GroupTable's
// arena. sum is atomic because two different threads' merge phases can
// race to fold a value into the same key's entry; next is written once,
// before the entry is ever published via a bucket-head CAS, so it never
// needs to be atomic itself.
type groupEntry struct {
	key  int64
	sum  atomic.Int64
	next int32
}

// GroupTable is a lock-free chained hash set keyed by group key, each
// key carrying a running int64 sum. Multiple threads call InsertOrAdd
// concurrently during HashGroup's merge phase; the bucket-head CAS loop
// and the tentative-entry retry below make concurrent first-insertion of
// the same key, from different threads, safe.
type GroupTable struct {
	buckets []atomic.Int32
	mask    int32

	entries []groupEntry
	next    atomic.Int32 // next free arena slot
}

// NewGroupTable allocates a GroupTable with arena capacity entries. The
// caller passes an upper bound on the final distinct-key count — the sum
// of every thread's own local distinct-key count, which can only shrink
// as local tables merge, never grow.
func NewGroupTable(capacity int) *GroupTable {
	if capacity < 1 {
		capacity = 1
	}
	directorySize := nextPow2(max(1024, 2*capacity))
	buckets := make([]atomic.Int32, directorySize)
	for i := range buckets {
		buckets[i].Store(emptyBucket)
	}
	return &GroupTable{
		buckets: buckets,
		mask:    int32(directorySize - 1),
		entries: make([]groupEntry, capacity),
	}
}

// InsertOrAdd folds val into key's running sum, creating a new entry the
// first time key is seen by any thread. Safe to call concurrently from
// every merging thread.
func (t *GroupTable) InsertOrAdd(key int64, val int64) {
	bucket := int32(types.MixHash64(uint64(key))) & t.mask
	idx := int32(-1)
	for {
		head := t.buckets[bucket].Load()
		if found, ok := t.find(head, key); ok {
			t.entries[found].sum.Add(val)
			return
		}

		if idx < 0 {
			idx = t.next.Add(1) - 1
		}
		e := &t.entries[idx]
		e.key = key
		e.sum.Store(val)
		e.next = head
		if t.buckets[bucket].CompareAndSwap(head, idx) {
			return
		}
		// Lost the race to another thread inserting into this bucket —
		// idx stays reserved for the retry, and the search restarts from
		// the new head, which may now already hold key (then idx is left
		// unlinked). Each call reserves at most one slot, so the arena
		// never needs more slots than distinct-key insertions attempted.
	}
}

func (t *GroupTable) find(head int32, key int64) (int32, bool) {
	for cur := head; cur != emptyBucket; cur = t.entries[cur].next {
		if t.entries[cur].key == key {
			return cur, true
		}
	}
	return 0, false
}

// Len reports how many distinct keys are reachable from the bucket
// directory. An InsertOrAdd call that loses its CAS and then finds key
// already linked leaves its reserved arena slot unlinked, so Len and
// Each both walk the chains rather than the raw arena range — an
// abandoned slot is simply never visited.
func (t *GroupTable) Len() int {
	n := 0
	t.Each(func(int64, int64) { n++ })
	return n
}

// Each calls fn once per distinct (key, sum) pair, in arbitrary order.
// Only safe once every merging thread has finished its InsertOrAdd
// calls.
func (t *GroupTable) Each(fn func(key, sum int64)) {
	for b := range t.buckets {
		for cur := t.buckets[b].Load(); cur != emptyBucket; cur = t.entries[cur].next {
			fn(t.entries[cur].key, t.entries[cur].sum.Load())
		}
	}
}
