package join

import (
	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/operator"
)

// KeyFunc extracts a batch's equi-join key column as a dense []int64
// plus, parallel to it, each key's batch-local row position (ctx.Sel[i]
// if a selection vector is present, else i) — the Hashjoin uses the
// latter to turn a probe match's local index back into an absolute row
// via ctx.Base + localPos.
type KeyFunc func(ctx *operator.EvalContext) (keys []int64, localPos []int32)

// IntegerKeyColumn builds a KeyFunc over an Integer (or Date) column,
// the common case for TPC-H join keys like l_orderkey/o_custkey.
func IntegerKeyColumn(col *coldata.Column) KeyFunc {
	data := col.Int32Data()
	return func(ctx *operator.EvalContext) ([]int64, []int32) {
		n := ctx.NumLive()
		keys := make([]int64, n)
		pos := make([]int32, n)
		if ctx.Sel != nil {
			for i, row := range ctx.Sel {
				keys[i] = int64(data[ctx.Base+int(row)])
				pos[i] = row
			}
			return keys, pos
		}
		for i := 0; i < n; i++ {
			keys[i] = int64(data[ctx.Base+i])
			pos[i] = int32(i)
		}
		return keys, pos
	}
}

// NumericKeyColumn builds a KeyFunc over a Numeric column's raw int64
// representation, for the rarer case of a Numeric-typed join key.
func NumericKeyColumn(col *coldata.Column) KeyFunc {
	data := col.Int64Data()
	return func(ctx *operator.EvalContext) ([]int64, []int32) {
		n := ctx.NumLive()
		keys := make([]int64, n)
		pos := make([]int32, n)
		if ctx.Sel != nil {
			for i, row := range ctx.Sel {
				keys[i] = data[ctx.Base+int(row)]
				pos[i] = row
			}
			return keys, pos
		}
		for i := 0; i < n; i++ {
			keys[i] = data[ctx.Base+i]
			pos[i] = int32(i)
		}
		return keys, pos
	}
}
