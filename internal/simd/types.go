// Package simd provides the engine's abstract SIMD vocabulary: load,
// store, masked load/store, compare-to-mask, gather, compressed store,
// element-wise arithmetic, and shift — one portable Go implementation,
// dispatched at runtime by CPU width, standing in for per-ISA
// intrinsics.
//
// There is one implementation per operation here, not one per ISA: Go
// has no portable way to emit real AVX2/AVX-512 without either cgo or
// the experimental, unfetchable simd/archsimd package. The vectorized
// kernels below are width-8 manually unrolled Go loops, chosen so that
// the scalar and "vectorized" code paths are bit-identical by
// construction while still modeling a real two-path dispatch;
// CurrentLevel() reports what a real SIMD backend would have selected,
// and HasWideVector() gates the vectorized kernels on it.
package simd

// Lanes is the constraint for every scalar type the engine's primitives
// operate over: 32-bit keys/values (Integer, Date) and 64-bit keys/
// values (Numeric.Raw, Timestamp, hash buckets).
type Lanes interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// Width is the number of lanes processed per vectorized step. The
// reference engine uses 512-bit registers (8 lanes of int64, 16 of
// int32); the portable path mirrors that grouping so chain lengths and
// gather batch sizes match the original's behavior.
const Width = 8

// Vec is a portable vector handle, analogous to go-highway's Vec[T] but
// narrowed to the engine's integer lane types.
type Vec[T Lanes] struct {
	data []T
}

// Load copies src (up to Width elements) into a new Vec.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), Width)
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Zero returns a Vec of n zeroed lanes.
func Zero[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// Const returns a Vec with every lane set to v.
func Const[T Lanes](v T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return Vec[T]{data: data}
}

// Store writes the vector's lanes into dst.
func (v Vec[T]) Store(dst []T) int {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
	return n
}

// NumLanes reports how many lanes are populated.
func (v Vec[T]) NumLanes() int { return len(v.data) }

// Data exposes the underlying lanes; for tests and non-hot-path callers.
func (v Vec[T]) Data() []T { return v.data }

// Mask is the result of a lane-wise comparison.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes reports the mask's lane count.
func (m Mask[T]) NumLanes() int { return len(m.bits) }

// Get reports whether lane i is active.
func (m Mask[T]) Get(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// CountTrue reports the number of active lanes.
func (m Mask[T]) CountTrue() int {
	c := 0
	for _, b := range m.bits {
		if b {
			c++
		}
	}
	return c
}
