package coldata

// DefaultVectorSize is the default batch row-count bound.
const DefaultVectorSize = 1024

// SelectionVector is an ascending list of in-batch row indices
// identifying surviving rows without materializing them. A nil SelectionVector means "no selection vector": the
// batch's rows are the dense prefix [0, Size).
type SelectionVector []int32

// IsMonotonic reports whether sv is strictly increasing, the invariant
// every selection primitive's output must satisfy.
func (sv SelectionVector) IsMonotonic() bool {
	for i := 1; i < len(sv); i++ {
		if sv[i] <= sv[i-1] {
			return false
		}
	}
	return true
}

// Batch is the unit of dataflow between operators: a logical row count
// and, optionally, a selection vector refining which of those rows are
// live. Buffers backing a batch's derived columns are owned by the
// operator pipeline (allocated once, reused across batches); Batch
// itself holds no buffer memory, only bookkeeping.
type Batch struct {
	// Size is the batch's row count before any selection vector is
	// applied: either the dense row count from a Scan, or the parent
	// batch's Size forwarded unchanged through Select/Project.
	Size int
	// Sel is nil for a dense batch, or an ascending list of surviving
	// row indices into [0, Size).
	Sel SelectionVector
}

// Dense constructs a Batch with no selection vector over n rows.
func Dense(n int) Batch { return Batch{Size: n} }

// NumLive reports how many rows are actually live: len(Sel) if a
// selection vector is present, else Size.
func (b Batch) NumLive() int {
	if b.Sel != nil {
		return len(b.Sel)
	}
	return b.Size
}

// Positions materializes the batch's live row indices, allocating a
// dense [0,Size) slice only when there is no selection vector. Used by
// tests and by primitives that always want an explicit index list; hot
// primitive kernels instead branch on Sel == nil themselves to avoid
// this allocation").
func (b Batch) Positions() []int32 {
	if b.Sel != nil {
		return b.Sel
	}
	out := make([]int32, b.Size)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}
