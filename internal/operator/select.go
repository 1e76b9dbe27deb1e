package operator

import "github.com/ansrivas/vecbase/internal/primitive"

// Select runs its Expression over a child's batch; each primitive either
// writes a sel-vec or refines one already present, and the last sel-vec
// is the batch's output. Select forwards the batch (unchanged columns
// plus the final sel-vec) upward by mutating the child's EvalContext in
// place rather than copying it.
type Select struct {
	child Operator
	expr  *Expression
}

// NewSelect wraps child with an Expression of Select-flavored Steps
// (SelLessInt32, SelSelGreaterEqualInt64, ...).
func NewSelect(child Operator, expr *Expression) *Select {
	return &Select{child: child, expr: expr}
}

func (s *Select) Next(cfg primitive.Config) (int, error) {
	n, err := s.child.Next(cfg)
	if err != nil || n == 0 {
		return n, err
	}
	ctx := s.child.Ctx()
	ctx.Sel = nil
	s.expr.Run(cfg, ctx)
	return ctx.NumLive(), nil
}

func (s *Select) Ctx() *EvalContext { return s.child.Ctx() }
