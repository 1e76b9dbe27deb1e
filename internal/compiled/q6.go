// Package compiled implements the "compiled" execution strategy: a
// query fused into one tight tuple-at-a-time loop dispatched across a
// thread pool, bypassing the operator pipeline entirely.
package compiled

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/types"
)

// Q6 computes TPC-H Q6's revenue sum tuple-at-a-time, ported from
// q6_hyper: each thread walks a contiguous, statically assigned row
// range directly against the raw column arrays, accumulating a local
// sum with no operator/Expression/selection-vector machinery in the
// loop body, then combines partial sums by plain addition — the
// reduce-then-combine shape of tbb::parallel_reduce, run here with
// errgroup fan-out instead of TBB's work-stealing scheduler.
func Q6(db *coldata.Database, nThreads int) (int64, error) {
	lineitem, ok := db.Table("lineitem")
	if !ok {
		return 0, errors.New("compiled: q6: database has no lineitem relation")
	}

	c1, err := types.ParseDate("1994-01-01")
	if err != nil {
		return 0, errors.Wrap(err, "compiled: q6: c1")
	}
	c2, err := types.ParseDate("1995-01-01")
	if err != nil {
		return 0, errors.Wrap(err, "compiled: q6: c2")
	}
	c3, err := types.ParseNumeric("0.05", 2)
	if err != nil {
		return 0, errors.Wrap(err, "compiled: q6: c3")
	}
	c4, err := types.ParseNumeric("0.07", 2)
	if err != nil {
		return 0, errors.Wrap(err, "compiled: q6: c4")
	}
	c5 := types.NumericFromInteger(24, 2)

	shipdate := lineitem.MustColumn("l_shipdate").Int32Data()
	quantity := lineitem.MustColumn("l_quantity").Int64Data()
	discount := lineitem.MustColumn("l_discount").Int64Data()
	price := lineitem.MustColumn("l_extendedprice").Int64Data()

	n := lineitem.NumRows()
	if nThreads < 1 {
		nThreads = 1
	}
	chunk := (n + nThreads - 1) / nThreads

	var total int64
	var mu sync.Mutex
	var g errgroup.Group
	for t := 0; t < nThreads; t++ {
		lo := t * chunk
		hi := lo + chunk
		if lo > n {
			lo = n
		}
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			var local int64
			for i := lo; i < hi; i++ {
				if shipdate[i] >= int32(c1) && shipdate[i] < int32(c2) &&
					discount[i] >= c3.Raw && discount[i] <= c4.Raw &&
					quantity[i] < c5.Raw {
					local += price[i] * discount[i]
				}
			}
			mu.Lock()
			total += local
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
