package primitive

import "github.com/ansrivas/vecbase/internal/simd"

// cmp identifies which comparison a sel/selsel primitive applies. The
// reference engine instantiates one named C++ function template per
// comparison; Go generics give the same specialization without the
// combinatorial source blowup, while the exported names below still
// match the reference engine's sel_<cmp>_T_col_T_val naming exactly.
type cmp int

const (
	cmpLess cmp = iota
	cmpLessEqual
	cmpGreaterEqual
)

func compareScalar[T simd.Lanes](c cmp, a, b T) bool {
	switch c {
	case cmpLess:
		return a < b
	case cmpLessEqual:
		return a <= b
	default:
		return a >= b
	}
}

// selScalar is the shared F3 scalar body: filter a dense column against
// a scalar value, emitting a selection vector of surviving row indices.
func selScalar[T simd.Lanes](c cmp, selOut []int32, col []T, val T, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if compareScalar(c, col[i], val) {
			selOut[count] = int32(i)
			count++
		}
	}
	return count
}

// selSIMD is the shared F3 vectorized body: width-8 masked compare plus
// compressed store of surviving indices.
func selSIMD[T simd.Lanes](c cmp, selOut []int32, col []T, val T, n int) int {
	count := 0
	for base := 0; base < n; base += simd.Width {
		end := min(base+simd.Width, n)
		w := end - base
		v := simd.Load(col[base:end])
		valVec := simd.Const(val, w)
		var mask simd.Mask[T]
		switch c {
		case cmpLess:
			mask = simd.Less(v, valVec)
		case cmpLessEqual:
			mask = simd.LessOrEqual(v, valVec)
		default:
			mask = simd.GreaterOrEqual(v, valVec)
		}
		count += simd.CompressIndices(mask, int32(base), selOut[count:])
	}
	return count
}

// selSelScalar is the shared F4 scalar body: further filter an input
// selection vector, reading only positions it names.
func selSelScalar[T simd.Lanes](c cmp, selOut []int32, selIn []int32, col []T, val T) int {
	count := 0
	for _, row := range selIn {
		if compareScalar(c, col[row], val) {
			selOut[count] = row
			count++
		}
	}
	return count
}

// selSelSIMD is selSelScalar's width-8 vectorized twin: gather the
// selected column values, compare, compress the surviving *row indices*
// (not positions within selIn) into selOut.
func selSelSIMD[T simd.Lanes](c cmp, selOut []int32, selIn []int32, col []T, val T) int {
	count := 0
	for base := 0; base < len(selIn); base += simd.Width {
		end := min(base+simd.Width, len(selIn))
		rows := selIn[base:end]
		gathered := simd.GatherIndex[T](col, rows)
		valVec := simd.Const(val, len(rows))
		var mask simd.Mask[T]
		switch c {
		case cmpLess:
			mask = simd.Less(gathered, valVec)
		case cmpLessEqual:
			mask = simd.LessOrEqual(gathered, valVec)
		default:
			mask = simd.GreaterOrEqual(gathered, valVec)
		}
		for i, row := range rows {
			if mask.Get(i) {
				selOut[count] = row
				count++
			}
		}
	}
	return count
}

// SelLessInt32ColValScalar: sel_less_int32_t_col_int32_t_val, scalar.
func SelLessInt32ColValScalar(selOut []int32, col []int32, val int32, n int) int {
	return selScalar(cmpLess, selOut, col, val, n)
}

// SelLessInt32ColValSIMD: sel_less_int32_t_col_int32_t_val, vectorized.
func SelLessInt32ColValSIMD(selOut []int32, col []int32, val int32, n int) int {
	return selSIMD(cmpLess, selOut, col, val, n)
}

// SelGreaterEqualInt32ColValScalar: sel_greater_equal, scalar.
func SelGreaterEqualInt32ColValScalar(selOut []int32, col []int32, val int32, n int) int {
	return selScalar(cmpGreaterEqual, selOut, col, val, n)
}

// SelGreaterEqualInt32ColValSIMD: sel_greater_equal, vectorized.
func SelGreaterEqualInt32ColValSIMD(selOut []int32, col []int32, val int32, n int) int {
	return selSIMD(cmpGreaterEqual, selOut, col, val, n)
}

// SelSelGreaterEqualInt32ColValScalar: selsel_greater_equal, scalar.
func SelSelGreaterEqualInt32ColValScalar(selOut, selIn []int32, col []int32, val int32) int {
	return selSelScalar(cmpGreaterEqual, selOut, selIn, col, val)
}

// SelSelGreaterEqualInt32ColValSIMD: selsel_greater_equal, vectorized.
func SelSelGreaterEqualInt32ColValSIMD(selOut, selIn []int32, col []int32, val int32) int {
	return selSelSIMD(cmpGreaterEqual, selOut, selIn, col, val)
}

// SelSelLessInt32ColValScalar: selsel_less, scalar.
func SelSelLessInt32ColValScalar(selOut, selIn []int32, col []int32, val int32) int {
	return selSelScalar(cmpLess, selOut, selIn, col, val)
}

// SelSelLessInt32ColValSIMD: selsel_less, vectorized.
func SelSelLessInt32ColValSIMD(selOut, selIn []int32, col []int32, val int32) int {
	return selSelSIMD(cmpLess, selOut, selIn, col, val)
}

// SelLessEqualInt64ColValScalar: sel_less_equal_int64_t_col, scalar.
func SelLessEqualInt64ColValScalar(selOut []int32, col []int64, val int64, n int) int {
	return selScalar(cmpLessEqual, selOut, col, val, n)
}

// SelLessEqualInt64ColValSIMD: sel_less_equal_int64_t_col, vectorized.
func SelLessEqualInt64ColValSIMD(selOut []int32, col []int64, val int64, n int) int {
	return selSIMD(cmpLessEqual, selOut, col, val, n)
}

// SelSelLessEqualInt64ColValScalar: selsel_less_equal, scalar.
func SelSelLessEqualInt64ColValScalar(selOut, selIn []int32, col []int64, val int64) int {
	return selSelScalar(cmpLessEqual, selOut, selIn, col, val)
}

// SelSelLessEqualInt64ColValSIMD: selsel_less_equal, vectorized.
func SelSelLessEqualInt64ColValSIMD(selOut, selIn []int32, col []int64, val int64) int {
	return selSelSIMD(cmpLessEqual, selOut, selIn, col, val)
}

// SelSelLessInt64ColValScalar: selsel_less, scalar.
func SelSelLessInt64ColValScalar(selOut, selIn []int32, col []int64, val int64) int {
	return selSelScalar(cmpLess, selOut, selIn, col, val)
}

// SelSelLessInt64ColValSIMD: selsel_less, vectorized.
func SelSelLessInt64ColValSIMD(selOut, selIn []int32, col []int64, val int64) int {
	return selSelSIMD(cmpLess, selOut, selIn, col, val)
}

// SelSelGreaterEqualInt64ColValScalar: selsel_greater_equal, scalar.
func SelSelGreaterEqualInt64ColValScalar(selOut, selIn []int32, col []int64, val int64) int {
	return selSelScalar(cmpGreaterEqual, selOut, selIn, col, val)
}

// SelSelGreaterEqualInt64ColValSIMD: selsel_greater_equal, vectorized.
func SelSelGreaterEqualInt64ColValSIMD(selOut, selIn []int32, col []int64, val int64) int {
	return selSelSIMD(cmpGreaterEqual, selOut, selIn, col, val)
}
