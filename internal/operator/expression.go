// Package operator implements the engine's operator pipeline: Scan,
// Select, Project, FixedAggregation, and HashGroup, each pulling batches
// from a child and running an Expression of primitive steps.
package operator

import (
	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
)

// EvalContext is the state one Expression step reads and mutates while
// processing a single batch: the batch's absolute row offset into the
// scanned relation (so a Step can slice a Column to this batch's
// window), its row count, and the running selection vector a chain of
// Select steps refines.
//
// Buffers holds named scratch destinations for Project steps, plain Go
// slices allocated once per pipeline (Scan.BindInt64Buffer); a Project
// step writes into them and does not allocate its own output storage,
// while a Select step allocates a fresh selection vector per batch.
type EvalContext struct {
	Base int
	Size int
	Sel  coldata.SelectionVector

	Int64Buffers map[string][]int64
	Int32Buffers map[string][]int32
}

// NumLive reports how many rows ctx currently carries: len(Sel) if a
// selection vector has been installed, else the dense Size.
func (ctx *EvalContext) NumLive() int {
	if ctx.Sel != nil {
		return len(ctx.Sel)
	}
	return ctx.Size
}

// Step is one primitive invocation against an operand binding: a
// (primitive, operand-binding) pair. An Expression is an ordered list of
// Steps; each either writes/refines ctx.Sel (a Select step) or writes a
// named buffer (a Project step).
type Step func(cfg primitive.Config, ctx *EvalContext)

// Expression is an ordered list of Steps, built with Add in source order
// — mirroring the reference engine's Expression().addOp(...).addOp(...)
// chaining from Q6Builder::getQuery().
type Expression struct {
	steps []Step
}

// Add appends a step and returns the Expression for chaining.
func (e *Expression) Add(s Step) *Expression {
	e.steps = append(e.steps, s)
	return e
}

// Run executes every step in order against ctx.
func (e *Expression) Run(cfg primitive.Config, ctx *EvalContext) {
	for _, s := range e.steps {
		s(cfg, ctx)
	}
}
