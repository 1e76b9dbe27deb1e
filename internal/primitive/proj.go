package primitive

import "github.com/ansrivas/vecbase/internal/simd"

// ProjMultipliesInt64ColInt64ColScalar is the dense F3 projection
// proj_multiplies_int64_t_col_int64_t_col: out[i] = a[i] * b[i] for the
// first n rows.
func ProjMultipliesInt64ColInt64ColScalar(out []int64, a, b []int64, n int) int {
	for i := 0; i < n; i++ {
		out[i] = a[i] * b[i]
	}
	return n
}

// ProjMultipliesInt64ColInt64ColSIMD is the width-8 vectorized twin.
func ProjMultipliesInt64ColInt64ColSIMD(out []int64, a, b []int64, n int) int {
	for base := 0; base < n; base += simd.Width {
		end := min(base+simd.Width, n)
		va := simd.Load(a[base:end])
		vb := simd.Load(b[base:end])
		simd.Mul(va, vb).Store(out[base:end])
	}
	return n
}

// ProjSelBothMultipliesInt64ColInt64ColScalar is the F4 "sel_both"
// projection: read both inputs through sel, write the product densely
// into out[0:len(sel)].
func ProjSelBothMultipliesInt64ColInt64ColScalar(out []int64, sel []int32, a, b []int64) int {
	for i, row := range sel {
		out[i] = a[row] * b[row]
	}
	return len(sel)
}

// ProjSelBothMultipliesInt64ColInt64ColSIMD is the width-8 vectorized
// twin: gather both operands through sel, multiply, store densely.
func ProjSelBothMultipliesInt64ColInt64ColSIMD(out []int64, sel []int32, a, b []int64) int {
	for base := 0; base < len(sel); base += simd.Width {
		end := min(base+simd.Width, len(sel))
		rows := sel[base:end]
		va := simd.GatherIndex[int64](a, rows)
		vb := simd.GatherIndex[int64](b, rows)
		simd.Mul(va, vb).Store(out[base:end])
	}
	return len(sel)
}

// ProjSelPlusInt64ColInt64ValScalar is the F4 sel-driven unary projection
// proj_sel_plus_int64_t_col_int64_t_val: out[i] = col[sel[i]] + val,
// written densely.
func ProjSelPlusInt64ColInt64ValScalar(out []int64, sel []int32, col []int64, val int64) int {
	for i, row := range sel {
		out[i] = col[row] + val
	}
	return len(sel)
}

// ProjSelPlusInt64ColInt64ValSIMD is the width-8 vectorized twin.
func ProjSelPlusInt64ColInt64ValSIMD(out []int64, sel []int32, col []int64, val int64) int {
	for base := 0; base < len(sel); base += simd.Width {
		end := min(base+simd.Width, len(sel))
		rows := sel[base:end]
		gathered := simd.GatherIndex[int64](col, rows)
		valVec := simd.Const(val, len(rows))
		simd.Add(gathered, valVec).Store(out[base:end])
	}
	return len(sel)
}
