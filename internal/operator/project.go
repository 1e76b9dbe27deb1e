package operator

import "github.com/ansrivas/vecbase/internal/primitive"

// Project runs its Expression over a child's batch; each primitive
// writes a result Buffer, optionally sel-vec-driven. The output batch
// is the child's unchanged row bookkeeping (Base/Size/Sel) plus the new
// buffer contents Project wrote.
type Project struct {
	child Operator
	expr  *Expression
}

// NewProject wraps child with an Expression of Project-flavored Steps
// (ProjSelBothMultiplyInt64, ...). The caller must have pre-sized the
// destination buffers in the child's EvalContext.
func NewProject(child Operator, expr *Expression) *Project {
	return &Project{child: child, expr: expr}
}

func (p *Project) Next(cfg primitive.Config) (int, error) {
	n, err := p.child.Next(cfg)
	if err != nil || n == 0 {
		return n, err
	}
	p.expr.Run(cfg, p.child.Ctx())
	return n, nil
}

func (p *Project) Ctx() *EvalContext { return p.child.Ctx() }
