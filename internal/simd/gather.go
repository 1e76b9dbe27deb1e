package simd

// GatherIndex reads base[indices[i]] into lane i for every i, the
// vocabulary's gather primitive. Used by the hash join's probe kernels
// to pull bucket-head pointers and chain-next pointers in bulk instead
// of one dependent load at a time.
func GatherIndex[T Lanes, I ~int32 | ~int64 | ~uint32 | ~uint64](base []T, indices []I) Vec[T] {
	out := make([]T, len(indices))
	for i, idx := range indices {
		ii := int(idx)
		if ii >= 0 && ii < len(base) {
			out[i] = base[ii]
		}
	}
	return Vec[T]{data: out}
}

// GatherIndexMasked is GatherIndex restricted to active lanes of pred;
// inactive lanes stay zero. Mirrors the reference engine's masked gather
// used once a probe's candidate set has started shrinking.
func GatherIndexMasked[T Lanes, I ~int32 | ~int64 | ~uint32 | ~uint64](base []T, indices []I, pred []bool) Vec[T] {
	out := make([]T, len(indices))
	for i, idx := range indices {
		if i < len(pred) && pred[i] {
			ii := int(idx)
			if ii >= 0 && ii < len(base) {
				out[i] = base[ii]
			}
		}
	}
	return Vec[T]{data: out}
}

// CompressStore writes only the lanes of v where m is active,
// contiguously, into dst, and returns the count written. This is the
// "compressed store" in the abstract vocabulary, the operation behind
// selection-vector emission: a selection primitive's output positions
// are exactly the compressed indices of its surviving mask.
func CompressStore[T Lanes](v Vec[T], m Mask[T], dst []T) int {
	n := 0
	for i, x := range v.data {
		if i < len(m.bits) && m.bits[i] {
			if n < len(dst) {
				dst[n] = x
			}
			n++
		}
	}
	return n
}

// CompressIndices writes, densely, the positions (not the values) where
// m is active. This is what a sel-vec-producing primitive actually
// calls: the engine's "compressed store" target is a row-index array,
// not a value array.
func CompressIndices[T Lanes](m Mask[T], base int32, dst []int32) int {
	n := 0
	for i, b := range m.bits {
		if b {
			if n < len(dst) {
				dst[n] = base + int32(i)
			}
			n++
		}
	}
	return n
}
