package primitive

import "github.com/ansrivas/vecbase/internal/simd"

// Config is a per-query immutable primitive-selection config struct
// passed down into operator construction, rather than the reference
// engine's process-wide mutable ExperimentConfig.
type Config struct {
	UseSimdHash bool
	UseSimdProj bool
	UseSimdSel  bool
	UseSimdJoin bool

	// JoinBoncz mirrors the reference engine's JoinBoncz=1 environment
	// variable, captured once at query-build time instead of read from
	// the process environment mid-query.
	JoinBoncz bool
}

// simdAvailable reports whether the runtime CPU actually supports the
// width the vectorized kernels need; "on" in a Config flag still falls
// back to scalar when the hardware can't back it.
func simdAvailable() bool { return simd.HasWideVector() }

// resolve picks a Kind's scalar or vectorized kernel out of the dense
// table and asserts it to the caller's expected function type, the
// single point where every Config accessor below does its lookup.
func resolve[F any](kind Kind, simdOn bool) F {
	return lookup(kind, simdOn).(F)
}

// HashInt32Col resolves the hash_int32_t_col primitive, matching
// ExperimentConfig::hash_int32_t_col in the reference engine.
func (c Config) HashInt32Col() func(out []uint64, col []int32, n int) int {
	return resolve[func(out []uint64, col []int32, n int) int](
		KindHashInt32Col, c.UseSimdHash && simdAvailable())
}

// HashInt64Col resolves the hash_int64_t_col primitive.
func (c Config) HashInt64Col() func(out []uint64, col []int64, n int) int {
	return resolve[func(out []uint64, col []int64, n int) int](
		KindHashInt64Col, c.UseSimdHash && simdAvailable())
}

// RehashInt32Col resolves the rehash_int32_t_col primitive.
func (c Config) RehashInt32Col() func(hash []uint64, col []int32, n int) int {
	return resolve[func(hash []uint64, col []int32, n int) int](
		KindRehashInt32Col, c.UseSimdHash && simdAvailable())
}

// SelLessInt32ColVal resolves sel_less_int32_t_col_int32_t_val.
func (c Config) SelLessInt32ColVal() func(selOut []int32, col []int32, val int32, n int) int {
	return resolve[func(selOut []int32, col []int32, val int32, n int) int](
		KindSelLessInt32ColVal, c.UseSimdSel && simdAvailable())
}

// SelGreaterEqualInt32ColVal resolves sel_greater_equal_int32_t_col_int32_t_val.
func (c Config) SelGreaterEqualInt32ColVal() func(selOut []int32, col []int32, val int32, n int) int {
	return resolve[func(selOut []int32, col []int32, val int32, n int) int](
		KindSelGreaterEqualInt32ColVal, c.UseSimdSel && simdAvailable())
}

// SelSelGreaterEqualInt32ColVal resolves selsel_greater_equal_int32_t_col_int32_t_val.
func (c Config) SelSelGreaterEqualInt32ColVal() func(selOut, selIn []int32, col []int32, val int32) int {
	return resolve[func(selOut, selIn []int32, col []int32, val int32) int](
		KindSelSelGreaterEqualInt32ColVal, c.UseSimdSel && simdAvailable())
}

// SelSelLessInt32ColVal resolves selsel_less_int32_t_col_int32_t_val.
func (c Config) SelSelLessInt32ColVal() func(selOut, selIn []int32, col []int32, val int32) int {
	return resolve[func(selOut, selIn []int32, col []int32, val int32) int](
		KindSelSelLessInt32ColVal, c.UseSimdSel && simdAvailable())
}

// SelSelLessInt64ColVal resolves selsel_less_int64_t_col_int64_t_val.
func (c Config) SelSelLessInt64ColVal() func(selOut, selIn []int32, col []int64, val int64) int {
	return resolve[func(selOut, selIn []int32, col []int64, val int64) int](
		KindSelSelLessInt64ColVal, c.UseSimdSel && simdAvailable())
}

// SelSelLessEqualInt64ColVal resolves selsel_less_equal_int64_t_col_int64_t_val.
func (c Config) SelSelLessEqualInt64ColVal() func(selOut, selIn []int32, col []int64, val int64) int {
	return resolve[func(selOut, selIn []int32, col []int64, val int64) int](
		KindSelSelLessEqualInt64ColVal, c.UseSimdSel && simdAvailable())
}

// SelSelGreaterEqualInt64ColVal resolves selsel_greater_equal_int64_t_col_int64_t_val.
func (c Config) SelSelGreaterEqualInt64ColVal() func(selOut, selIn []int32, col []int64, val int64) int {
	return resolve[func(selOut, selIn []int32, col []int64, val int64) int](
		KindSelSelGreaterEqualInt64ColVal, c.UseSimdSel && simdAvailable())
}

// ProjMultipliesInt64ColInt64Col resolves proj_multiplies_int64_t_col_int64_t_col.
func (c Config) ProjMultipliesInt64ColInt64Col() func(out []int64, a, b []int64, n int) int {
	return resolve[func(out []int64, a, b []int64, n int) int](
		KindProjMultipliesInt64ColInt64Col, c.UseSimdProj && simdAvailable())
}

// ProjSelBothMultipliesInt64ColInt64Col resolves
// proj_sel_both_multiplies_int64_t_col_int64_t_col.
func (c Config) ProjSelBothMultipliesInt64ColInt64Col() func(out []int64, sel []int32, a, b []int64) int {
	return resolve[func(out []int64, sel []int32, a, b []int64) int](
		KindProjSelBothMultipliesInt64ColInt64Col, c.UseSimdProj && simdAvailable())
}

// JoinAlgorithm names the hash join's three probe algorithms.
type JoinAlgorithm int

const (
	JoinAllParallel JoinAlgorithm = iota
	JoinBoncz
	JoinAllSIMD
)

// SelectJoinAlgorithm resolves which probe algorithm to run, matching
// ExperimentConfig::joinAll/joinSel: useSimdJoin wins outright (hardware
// permitting), otherwise JoinBoncz forces the Boncz algorithm (the
// env-var-driven choice in the reference engine, ported here as an
// explicit Config field instead of reading os.Getenv mid-query, per
// Design Note §9's "do not retain a mutable global").
func (c Config) SelectJoinAlgorithm() JoinAlgorithm {
	if c.UseSimdJoin && simdAvailable() {
		return JoinAllSIMD
	}
	if c.JoinBoncz {
		return JoinBoncz
	}
	return JoinAllParallel
}
