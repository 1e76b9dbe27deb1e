package primitive

// Kind enumerates primitive families by (operation, type) pair, the
// dense-table axis Design Note §9 asks for: "port as an enum of
// primitive kinds plus a dense table of kernel function addresses
// indexed by (kind, type_tag, simd_on)". Config's resolver methods above
// are the call-site-facing API; table is the backing store they read
// from, built once at init so primitive-lookup is a single slice index
// rather than a fresh switch per call.
type Kind int

const (
	KindHashInt32Col Kind = iota
	KindHashInt64Col
	KindRehashInt32Col
	KindSelLessInt32ColVal
	KindSelGreaterEqualInt32ColVal
	KindSelSelGreaterEqualInt32ColVal
	KindSelSelLessInt32ColVal
	KindSelSelLessInt64ColVal
	KindSelSelLessEqualInt64ColVal
	KindSelSelGreaterEqualInt64ColVal
	KindProjMultipliesInt64ColInt64Col
	KindProjSelBothMultipliesInt64ColInt64Col
	kindCount
)

// entry holds a primitive's scalar and vectorized kernel function
// values, type-erased to `any` since each Kind's two function types
// differ; callers (Config's methods) know the concrete signature for
// the Kind they asked for and type-assert once.
type entry struct {
	scalar any
	simd   any
}

var table [kindCount]entry

func init() {
	table[KindHashInt32Col] = entry{scalar: HashInt32ColScalar, simd: HashInt32ColSIMD}
	table[KindHashInt64Col] = entry{scalar: HashInt64ColScalar, simd: HashInt64ColSIMD}
	table[KindRehashInt32Col] = entry{scalar: RehashInt32ColScalar, simd: RehashInt32ColSIMD}
	table[KindSelLessInt32ColVal] = entry{scalar: SelLessInt32ColValScalar, simd: SelLessInt32ColValSIMD}
	table[KindSelGreaterEqualInt32ColVal] = entry{scalar: SelGreaterEqualInt32ColValScalar, simd: SelGreaterEqualInt32ColValSIMD}
	table[KindSelSelGreaterEqualInt32ColVal] = entry{scalar: SelSelGreaterEqualInt32ColValScalar, simd: SelSelGreaterEqualInt32ColValSIMD}
	table[KindSelSelLessInt32ColVal] = entry{scalar: SelSelLessInt32ColValScalar, simd: SelSelLessInt32ColValSIMD}
	table[KindSelSelLessInt64ColVal] = entry{scalar: SelSelLessInt64ColValScalar, simd: SelSelLessInt64ColValSIMD}
	table[KindSelSelLessEqualInt64ColVal] = entry{scalar: SelSelLessEqualInt64ColValScalar, simd: SelSelLessEqualInt64ColValSIMD}
	table[KindSelSelGreaterEqualInt64ColVal] = entry{scalar: SelSelGreaterEqualInt64ColValScalar, simd: SelSelGreaterEqualInt64ColValSIMD}
	table[KindProjMultipliesInt64ColInt64Col] = entry{scalar: ProjMultipliesInt64ColInt64ColScalar, simd: ProjMultipliesInt64ColInt64ColSIMD}
	table[KindProjSelBothMultipliesInt64ColInt64Col] = entry{scalar: ProjSelBothMultipliesInt64ColInt64ColScalar, simd: ProjSelBothMultipliesInt64ColInt64ColSIMD}
}

// lookup returns the scalar or vectorized kernel for kind depending on
// simdOn, completing the (kind, simd_on) half of the dense-table index
// (the "type_tag" half is already folded into each Kind, since Go's
// function values are concretely typed per Kind rather than needing a
// further runtime type switch).
func lookup(kind Kind, simdOn bool) any {
	if simdOn {
		return table[kind].simd
	}
	return table[kind].scalar
}
