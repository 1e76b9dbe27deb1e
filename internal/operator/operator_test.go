package operator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
)

func buildLineitemLike(t *testing.T, n int) *coldata.Relation {
	t.Helper()
	shipdate := make([]int32, n)
	discount := make([]int64, n)
	quantity := make([]int32, n)
	extendedprice := make([]int64, n)
	for i := 0; i < n; i++ {
		shipdate[i] = int32(9000 + i%400)
		discount[i] = int64(5 + i%5) // scale-2 numeric: 0.05..0.09
		quantity[i] = int32(i % 30)
		extendedprice[i] = int64(100 + i)
	}
	rel, err := coldata.NewRelation("lineitem",
		coldata.NewDateColumn("l_shipdate", shipdate),
		coldata.NewNumericColumn("l_discount", 2, discount),
		coldata.NewIntegerColumn("l_quantity", quantity),
		coldata.NewNumericColumn("l_extendedprice", 2, extendedprice),
	)
	require.NoError(t, err)
	return rel
}

// TestScanEmitsBoundedDenseBatches checks that every batch Scan emits is
// at most vector_size rows, and all N rows are covered exactly once
// across calls.
func TestScanEmitsBoundedDenseBatches(t *testing.T) {
	rel := buildLineitemLike(t, 2500)
	scan := NewScan(rel, 1024)
	cfg := primitive.Config{}

	total := 0
	for {
		n, err := scan.Next(cfg)
		require.NoError(t, err)
		if n == 0 {
			break
		}
		require.LessOrEqual(t, n, 1024)
		require.Nil(t, scan.Ctx().Sel)
		total += n
	}
	require.Equal(t, 2500, total)
}

// TestSelectChainNarrowsAndStaysMonotonic exercises Select with a
// SelLessInt32 first filter followed by a SelSel second filter, checking
// the output sel-vec is a strictly ascending subset of [0, Size).
func TestSelectChainNarrowsAndStaysMonotonic(t *testing.T) {
	rel := buildLineitemLike(t, 1000)
	scan := NewScan(rel, 1024)
	expr := (&Expression{}).
		Add(SelLessInt32(rel.MustColumn("l_quantity"), 24)).
		Add(SelSelGreaterEqualInt64(rel.MustColumn("l_discount"), 6))
	sel := NewSelect(scan, expr)

	cfg := primitive.Config{}
	n, err := sel.Next(cfg)
	require.NoError(t, err)
	require.True(t, sel.Ctx().Sel.IsMonotonic())
	require.Equal(t, len(sel.Ctx().Sel), n)

	for _, row := range sel.Ctx().Sel {
		require.Less(t, rel.MustColumn("l_quantity").Int32Data()[row], int32(24))
		require.GreaterOrEqual(t, rel.MustColumn("l_discount").Int64Data()[row], int64(6))
	}
}

// TestProjectWritesOnlySelectedRows checks Project writes a dense buffer
// of exactly NumLive() product values, matching the sel-vec inherited
// from Select.
func TestProjectWritesOnlySelectedRows(t *testing.T) {
	rel := buildLineitemLike(t, 500)
	scan := NewScan(rel, 1024)
	selExpr := (&Expression{}).Add(SelLessInt32(rel.MustColumn("l_quantity"), 24))
	sel := NewSelect(scan, selExpr)

	projExpr := (&Expression{}).Add(
		ProjSelBothMultiplyInt64("revenue", rel.MustColumn("l_extendedprice"), rel.MustColumn("l_discount")))
	proj := NewProject(sel, projExpr)

	cfg := primitive.Config{}
	// The scan's EvalContext is shared by Select and Project (both
	// forward it unchanged); seed its buffer before the first pull, the
	// way a query builder does once per thread via Scan.BindInt64Buffer.
	scan.ctx.Int64Buffers = map[string][]int64{"revenue": make([]int64, 1024)}
	_, err := proj.Next(cfg)
	require.NoError(t, err)

	buf := proj.Ctx().Int64Buffers["revenue"]
	require.GreaterOrEqual(t, len(buf), proj.Ctx().NumLive())
	for i, row := range proj.Ctx().Sel {
		want := rel.MustColumn("l_extendedprice").Int64Data()[row] * rel.MustColumn("l_discount").Int64Data()[row]
		require.Equal(t, want, buf[i])
	}
}

// TestFixedAggregationYieldsSingleRowAtEOS: invariant-style check that a
// full Q6-shaped pipeline (Scan->Select->Project->FixedAggregation)
// returns exactly one row, matching a brute-force sum, and 0 afterward.
func TestFixedAggregationYieldsSingleRowAtEOS(t *testing.T) {
	rel := buildLineitemLike(t, 777)
	scan := NewScan(rel, 128)
	selExpr := (&Expression{}).
		Add(SelLessInt32(rel.MustColumn("l_quantity"), 24)).
		Add(SelSelGreaterEqualInt64(rel.MustColumn("l_discount"), 6))
	sel := NewSelect(scan, selExpr)
	projExpr := (&Expression{}).Add(
		ProjSelBothMultiplyInt64("revenue", rel.MustColumn("l_extendedprice"), rel.MustColumn("l_discount")))
	proj := NewProject(sel, projExpr)

	const vectorSize = 128
	agg := NewFixedAggregation(proj, SumInt64Buffer("revenue"))

	// Seed the shared EvalContext's buffer before first pull, since
	// Project looks it up by name rather than allocating it itself.
	scan.ctx.Int64Buffers = map[string][]int64{"revenue": make([]int64, vectorSize)}

	cfg := primitive.Config{}
	n, err := agg.Next(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	var want int64
	qty := rel.MustColumn("l_quantity").Int32Data()
	disc := rel.MustColumn("l_discount").Int64Data()
	price := rel.MustColumn("l_extendedprice").Int64Data()
	for i := 0; i < rel.NumRows(); i++ {
		if qty[i] < 24 && disc[i] >= 6 {
			want += price[i] * disc[i]
		}
	}
	require.Equal(t, want, agg.Result())

	n, err = agg.Next(cfg)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
