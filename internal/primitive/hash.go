// Package primitive implements the engine's primitive kernel library:
// type-specialized F2/F3/F4 functions with both a branch-free
// scalar implementation and a width-8 vectorized implementation built on
// internal/simd, selected at primitive-lookup time by Config.
package primitive

import (
	"github.com/ansrivas/vecbase/internal/simd"
	"github.com/ansrivas/vecbase/internal/types"
)

// hashOne mixes one scalar's bit pattern through the shared hash,
// matching types.MixHash64/32 exactly so hash(v) from a column primitive
// equals v's own Hash() method result.
func hashOne32(v int32) uint64 { return types.MixHash32(uint32(v)) }
func hashOne64(v int64) uint64 { return types.MixHash64(uint64(v)) }

// HashInt32ColScalar is the F2 hash primitive for Integer/Date columns:
// (out, inA, n) -> n_out, writing n hashes.
func HashInt32ColScalar(out []uint64, col []int32, n int) int {
	for i := 0; i < n; i++ {
		out[i] = hashOne32(col[i])
	}
	return n
}

// HashInt32ColSIMD is HashInt32ColScalar's width-8 vectorized twin: it
// runs the xorshift mix itself through simd's elementwise Xor/ShiftLeft/
// ShiftRight vocabulary across Width lanes at a time, rather than looping
// scalar mixes one at a time. Its output is bit-identical to the scalar
// version — xorshift is a pure bitwise/arithmetic recurrence, so
// batching it through vector lanes changes nothing about each lane's
// individual result.
func HashInt32ColSIMD(out []uint64, col []int32, n int) int {
	var widened [simd.Width]uint64
	for base := 0; base < n; base += simd.Width {
		end := min(base+simd.Width, n)
		w := end - base
		for i := 0; i < w; i++ {
			widened[i] = hashSeedXOR(uint64(uint32(col[base+i])))
		}
		mixLanes(widened[:w], out[base:end])
	}
	return n
}

// hashSeedXOR applies the shared engine seed to a raw bit pattern before
// the xorshift mix runs.
func hashSeedXOR(bits uint64) uint64 { return hashSeed ^ bits }

const hashSeed uint64 = 0x0139684090906A9C

// mixLanes runs the xorshift recurrence (x^=x<<13; x^=x>>7; x^=x<<17)
// across up to simd.Width lanes using internal/simd's vector ops.
func mixLanes(seeded []uint64, out []uint64) {
	x := simd.Load(seeded)
	x = simd.Xor(x, simd.ShiftLeft(x, 13))
	x = simd.Xor(x, simd.ShiftRight(x, 7))
	x = simd.Xor(x, simd.ShiftLeft(x, 17))
	x.Store(out)
}

// HashInt64ColScalar is the F2 hash primitive for Numeric/Timestamp
// columns.
func HashInt64ColScalar(out []uint64, col []int64, n int) int {
	for i := 0; i < n; i++ {
		out[i] = hashOne64(col[i])
	}
	return n
}

// HashInt64ColSIMD is HashInt64ColScalar's width-8 vectorized twin.
func HashInt64ColSIMD(out []uint64, col []int64, n int) int {
	var widened [simd.Width]uint64
	for base := 0; base < n; base += simd.Width {
		end := min(base+simd.Width, n)
		w := end - base
		for i := 0; i < w; i++ {
			widened[i] = hashSeedXOR(uint64(col[base+i]))
		}
		mixLanes(widened[:w], out[base:end])
	}
	return n
}

// RehashInt32ColScalar combines an incoming hash with a new int32 column,
// for multi-column join keys: rehash(h, col) folds col into h rather than
// overwriting it.
func RehashInt32ColScalar(hash []uint64, col []int32, n int) int {
	for i := 0; i < n; i++ {
		hash[i] = types.MixHash64(hash[i] ^ uint64(uint32(col[i])))
	}
	return n
}

// RehashInt32ColSIMD is RehashInt32ColScalar's width-8 vectorized twin.
func RehashInt32ColSIMD(hash []uint64, col []int32, n int) int {
	var seeded [simd.Width]uint64
	for base := 0; base < n; base += simd.Width {
		end := min(base+simd.Width, n)
		w := end - base
		for i := 0; i < w; i++ {
			seeded[i] = hashSeed ^ (hash[base+i] ^ uint64(uint32(col[base+i])))
		}
		mixLanes(seeded[:w], hash[base:end])
	}
	return n
}

// HashSelInt32Col is the F3 sel-restricted hash primitive: hash only the
// rows named by sel, writing into out at the same dense positions
// 0..len(sel) (not at the original row indices), matching how a build-
// side batch's selected rows are appended contiguously to an entry
// vector.
func HashSelInt32Col(out []uint64, col []int32, sel []int32) int {
	for i, row := range sel {
		out[i] = hashOne32(col[row])
	}
	return len(sel)
}

// HashSelInt64Col is HashSelInt32Col's int64 counterpart.
func HashSelInt64Col(out []uint64, col []int64, sel []int32) int {
	for i, row := range sel {
		out[i] = hashOne64(col[row])
	}
	return len(sel)
}
