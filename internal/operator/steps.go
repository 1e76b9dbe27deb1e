package operator

import (
	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
)

// window slices col to ctx's current batch, the Column(scan, name)
// operand binding's job: "raw column pointer with stride".
func windowInt32(col *coldata.Column, ctx *EvalContext) []int32 {
	return col.Int32Data()[ctx.Base : ctx.Base+ctx.Size]
}

func windowInt64(col *coldata.Column, ctx *EvalContext) []int64 {
	return col.Int64Data()[ctx.Base : ctx.Base+ctx.Size]
}

// SelLessInt32 is a Select step: filter col < val over the dense batch
// (no prior sel-vec), installing the result as ctx.Sel. Used as the
// first filter in an Expression chain.
func SelLessInt32(col *coldata.Column, val int32) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelLessInt32ColVal()
		out := make([]int32, ctx.Size)
		n := fn(out, windowInt32(col, ctx), val, ctx.Size)
		ctx.Sel = out[:n]
	}
}

// SelGreaterEqualInt32 is SelLessInt32's >= counterpart.
func SelGreaterEqualInt32(col *coldata.Column, val int32) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelGreaterEqualInt32ColVal()
		out := make([]int32, ctx.Size)
		n := fn(out, windowInt32(col, ctx), val, ctx.Size)
		ctx.Sel = out[:n]
	}
}

// SelSelGreaterEqualInt32 is a Select step that further filters the
// current ctx.Sel by col[row] >= val.
func SelSelGreaterEqualInt32(col *coldata.Column, val int32) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelSelGreaterEqualInt32ColVal()
		out := make([]int32, len(ctx.Sel))
		n := fn(out, ctx.Sel, windowInt32(col, ctx), val)
		ctx.Sel = out[:n]
	}
}

// SelSelLessInt32 further filters ctx.Sel by col[row] < val.
func SelSelLessInt32(col *coldata.Column, val int32) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelSelLessInt32ColVal()
		out := make([]int32, len(ctx.Sel))
		n := fn(out, ctx.Sel, windowInt32(col, ctx), val)
		ctx.Sel = out[:n]
	}
}

// SelSelLessInt64 further filters ctx.Sel by col[row] < val.
func SelSelLessInt64(col *coldata.Column, val int64) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelSelLessInt64ColVal()
		out := make([]int32, len(ctx.Sel))
		n := fn(out, ctx.Sel, windowInt64(col, ctx), val)
		ctx.Sel = out[:n]
	}
}

// SelSelLessEqualInt64 further filters ctx.Sel by col[row] <= val, for
// Numeric-typed columns whose raw storage is int64.
func SelSelLessEqualInt64(col *coldata.Column, val int64) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelSelLessEqualInt64ColVal()
		out := make([]int32, len(ctx.Sel))
		n := fn(out, ctx.Sel, windowInt64(col, ctx), val)
		ctx.Sel = out[:n]
	}
}

// SelSelGreaterEqualInt64 further filters ctx.Sel by col[row] >= val.
func SelSelGreaterEqualInt64(col *coldata.Column, val int64) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		fn := cfg.SelSelGreaterEqualInt64ColVal()
		out := make([]int32, len(ctx.Sel))
		n := fn(out, ctx.Sel, windowInt64(col, ctx), val)
		ctx.Sel = out[:n]
	}
}

// ProjSelBothMultiplyInt64 is a Project step: multiply a*b, reading both
// through ctx.Sel, writing the product densely into Int64Buffers[dest].
// The buffer keeps its full allocated capacity across calls; readers use
// ctx.NumLive() to know how many leading elements are meaningful.
func ProjSelBothMultiplyInt64(dest string, a, b *coldata.Column) Step {
	return func(cfg primitive.Config, ctx *EvalContext) {
		out := ctx.Int64Buffers[dest]
		if ctx.Sel == nil {
			dense := cfg.ProjMultipliesInt64ColInt64Col()
			dense(out, windowInt64(a, ctx), windowInt64(b, ctx), ctx.Size)
			return
		}
		fn := cfg.ProjSelBothMultipliesInt64ColInt64Col()
		fn(out, ctx.Sel, windowInt64(a, ctx), windowInt64(b, ctx))
	}
}
