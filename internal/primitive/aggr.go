package primitive

// AggrStaticPlusInt64Col is the aggr_static_plus_int64_t_col family:
// accumulates the named rows of col into a caller-owned scalar. A nil
// sel means the dense prefix [0, n). Used by FixedAggregation to fold
// an incoming Project result column into the running revenue sum for
// TPC-H Q6; there is no separate SIMD variant because folding into a
// single scalar accumulator is an inherently serial reduction once the
// batch's own column was already produced by a (possibly vectorized)
// Project — vectorizing the fold itself would require a parallel
// reduction tree for at most `vector_size` elements, which is not worth
// the complexity.
func AggrStaticPlusInt64Col(acc *int64, col []int64, sel []int32, n int) {
	if sel != nil {
		for _, row := range sel {
			*acc += col[row]
		}
		return
	}
	for i := 0; i < n; i++ {
		*acc += col[i]
	}
}
