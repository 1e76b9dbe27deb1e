package operator

import "github.com/ansrivas/vecbase/internal/primitive"

// AggrStep folds one batch's contribution into acc, reading whichever
// named buffer or column the aggregation targets through ctx.
type AggrStep func(cfg primitive.Config, ctx *EvalContext, acc *int64)

// SumInt64Buffer builds an AggrStep that sums a Project-written buffer,
// the shape TPC-H Q6's sum(l_extendedprice*l_discount) needs.
func SumInt64Buffer(name string) AggrStep {
	return func(cfg primitive.Config, ctx *EvalContext, acc *int64) {
		n := ctx.NumLive()
		primitive.AggrStaticPlusInt64Col(acc, ctx.Int64Buffers[name][:n], nil, n)
	}
}

// FixedAggregation is a terminal folding operator: each Next call drains
// the child completely, folding every batch into a caller-owned
// accumulator, and at child EOS yields exactly one row carrying the
// final value. A second Next call after that returns 0,
// matching every other operator's exhaustion contract.
type FixedAggregation struct {
	child Operator
	step  AggrStep

	acc  int64
	done bool
	ctx  EvalContext
}

// NewFixedAggregation builds a FixedAggregation folding child's batches
// with step.
func NewFixedAggregation(child Operator, step AggrStep) *FixedAggregation {
	return &FixedAggregation{child: child, step: step}
}

func (f *FixedAggregation) Next(cfg primitive.Config) (int, error) {
	if f.done {
		return 0, nil
	}
	for {
		n, err := f.child.Next(cfg)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		f.step(cfg, f.child.Ctx(), &f.acc)
	}
	f.done = true
	f.ctx = EvalContext{Base: 0, Size: 1}
	return 1, nil
}

func (f *FixedAggregation) Ctx() *EvalContext { return &f.ctx }

// Result reports the final folded value; only meaningful after Next has
// returned 1.
func (f *FixedAggregation) Result() int64 { return f.acc }
