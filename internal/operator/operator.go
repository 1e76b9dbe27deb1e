package operator

import "github.com/ansrivas/vecbase/internal/primitive"

// Operator is the pull-model interface every pipeline stage implements:
// a single method next() pulls the next batch (or 0 on exhaustion) and
// returns the row count produced. Ctx exposes the batch Next just
// produced; it is only valid until the next Next call.
type Operator interface {
	Next(cfg primitive.Config) (int, error)
	Ctx() *EvalContext
}
