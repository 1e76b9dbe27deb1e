package query

import (
	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/operator"
	"github.com/ansrivas/vecbase/internal/types"
)

// Q6RevenueBuffer names the Project buffer (and the aggregation target)
// Q6's pipeline writes l_extendedprice*l_discount into.
const Q6RevenueBuffer = "revenue"

// Q6Builder assembles TPC-H Q6: the revenue impact of applying a
// discount in a given year with bounded quantity, grounded exactly in
// Q6Builder::getQuery()'s operator chain (original_source/src/
// benchmarks/tpch/queries/q6.cpp):
//
//	Scan(lineitem)
//	  -> Select(l_shipdate < c2, l_shipdate >= c1,
//	            l_quantity < c5, l_discount >= c3, l_discount <= c4)
//	  -> Project(l_extendedprice * l_discount)
//	  -> FixedAggregation(sum)
type Q6Builder struct {
	// VectorSize is the batch row-count bound each thread's Scan uses;
	// 0 selects coldata.DefaultVectorSize.
	VectorSize int
}

// bindQ6Constants parses Q6's five literal constants the way
// q6_hyper/getQuery() does: castString on the Date/Numeric scalar types
// rather than hand-computed integers, so a change to either type's
// parser (e.g. Date's epoch) is automatically reflected here.
type q6Constants struct {
	shipdateLo types.Date // c1: 1994-01-01, inclusive
	shipdateHi types.Date // c2: 1995-01-01, exclusive
	discountLo types.Numeric
	discountHi types.Numeric
	quantityHi types.Numeric // c5: 24.00, l_quantity's Numeric<12,2>
}

func bindQ6Constants() (q6Constants, error) {
	c1, err := types.ParseDate("1994-01-01")
	if err != nil {
		return q6Constants{}, errors.Wrap(err, "q6: c1")
	}
	c2, err := types.ParseDate("1995-01-01")
	if err != nil {
		return q6Constants{}, errors.Wrap(err, "q6: c2")
	}
	c3, err := types.ParseNumeric("0.05", 2)
	if err != nil {
		return q6Constants{}, errors.Wrap(err, "q6: c3")
	}
	c4, err := types.ParseNumeric("0.07", 2)
	if err != nil {
		return q6Constants{}, errors.Wrap(err, "q6: c4")
	}
	// c5 = 24.00 at l_quantity's Numeric<12,2> representation, matching
	// q6_hyper's `int64_t c5_v = 24*100`.
	c5 := types.NumericFromInteger(24, 2)
	return q6Constants{
		shipdateLo: c1,
		shipdateHi: c2,
		discountLo: c3,
		discountHi: c4,
		quantityHi: c5,
	}, nil
}

// Build assembles threadID's Q6 pipeline over its morsel of lineitem.
func (b Q6Builder) Build(db *coldata.Database, threadID, nThreads int) (operator.Operator, error) {
	lineitem, ok := db.Table("lineitem")
	if !ok {
		return nil, errors.New("q6: database has no lineitem relation")
	}
	consts, err := bindQ6Constants()
	if err != nil {
		return nil, err
	}

	vectorSize := b.VectorSize
	if vectorSize <= 0 {
		vectorSize = coldata.DefaultVectorSize
	}
	lo, hi := morsel(lineitem.NumRows(), nThreads, threadID)
	scan := operator.NewRangeScan(lineitem, vectorSize, lo, hi)

	shipdate := lineitem.MustColumn("l_shipdate")
	quantity := lineitem.MustColumn("l_quantity")
	discount := lineitem.MustColumn("l_discount")
	extendedprice := lineitem.MustColumn("l_extendedprice")

	selectExpr := (&operator.Expression{}).
		Add(operator.SelLessInt32(shipdate, int32(consts.shipdateHi))).
		Add(operator.SelSelGreaterEqualInt32(shipdate, int32(consts.shipdateLo))).
		Add(operator.SelSelLessInt64(quantity, consts.quantityHi.Raw)).
		Add(operator.SelSelGreaterEqualInt64(discount, consts.discountLo.Raw)).
		Add(operator.SelSelLessEqualInt64(discount, consts.discountHi.Raw))
	sel := operator.NewSelect(scan, selectExpr)

	// Project writes into a scratch buffer sized for one full batch; bind
	// it once here rather than lazily on first Next, matching a real
	// VectorAllocator acquisition happening at pipeline build time.
	scan.BindInt64Buffer(Q6RevenueBuffer, vectorSize)

	projectExpr := (&operator.Expression{}).
		Add(operator.ProjSelBothMultiplyInt64(Q6RevenueBuffer, extendedprice, discount))
	proj := operator.NewProject(sel, projectExpr)

	agg := operator.NewFixedAggregation(proj, operator.SumInt64Buffer(Q6RevenueBuffer))
	return agg, nil
}
