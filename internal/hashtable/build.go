package hashtable

// LocalBuild accumulates one thread's build-side rows during the
// cooperative build phase, before the barrier-gated scatter: each batch
// is hashed on the join key and each row is appended to this
// thread-local entry list, held in ordinary growable Go slices. Stored
// as parallel slices so Scatter can copy straight into the shared
// arena's own parallel layout.
type LocalBuild struct {
	hash []uint64
	key  []int64
	row  []int32
}

// Add appends one build-side row: its join-key hash, the key itself, and
// its row index into the build relation.
func (lb *LocalBuild) Add(hash uint64, key int64, row int32) {
	lb.hash = append(lb.hash, hash)
	lb.key = append(lb.key, key)
	lb.row = append(lb.row, row)
}

// Len reports how many rows this thread has accumulated so far.
func (lb *LocalBuild) Len() int { return len(lb.hash) }
