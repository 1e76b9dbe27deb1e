// Package engine wires a query.Builder's per-thread pipelines (or the
// compiled tuple-at-a-time path) to a worker.Group and rendezvouses
// their partial results — the top-level orchestration run.cpp's main()
// performs inline, pulled out into a reusable entry point here.
package engine

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/compiled"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/query"
	"github.com/ansrivas/vecbase/internal/vlog"
	"github.com/ansrivas/vecbase/internal/worker"
)

// Strategy selects which of the engine's two execution strategies
// RunQuery dispatches to.
type Strategy int

const (
	// Vectorized runs the query through internal/operator's
	// Scan/Select/Project/FixedAggregation pipeline, one per worker
	// thread, batched at Options.VectorSize rows.
	Vectorized Strategy = iota
	// Compiled bypasses the operator pipeline for a single fused
	// tuple-at-a-time parallel reduction (internal/compiled).
	Compiled
)

// Options configures one RunQuery invocation.
type Options struct {
	NThreads        int
	VectorSize      int
	Strategy        Strategy
	PrimitiveConfig primitive.Config
}

// resultAggregator is satisfied by operator.FixedAggregation; RunQuery
// depends only on this narrow interface rather than importing
// internal/operator for a single method.
type resultAggregator interface {
	Result() int64
}

// RunQuery executes Q6 — the engine's one fully wired query — against
// db under opts.Strategy, fanning out across opts.NThreads workers and
// summing each thread's partial revenue into the final scalar result.
func RunQuery(db *coldata.Database, opts Options) (int64, error) {
	nThreads := opts.NThreads
	if nThreads < 1 {
		nThreads = 1
	}

	if opts.Strategy == Compiled {
		total, err := compiled.Q6(db, nThreads)
		if err != nil {
			return 0, err
		}
		vlog.Default().Info("query complete", "strategy", "compiled", "threads", nThreads, "revenue", total)
		return total, nil
	}

	builder := query.Q6Builder{VectorSize: opts.VectorSize}
	group := worker.NewGroup(nThreads)

	var mu sync.Mutex
	var total int64
	err := group.RunAll(func(threadID int) error {
		op, err := builder.Build(db, threadID, nThreads)
		if err != nil {
			return errors.Wrapf(err, "engine: thread %d: build", threadID)
		}
		for {
			n, err := op.Next(opts.PrimitiveConfig)
			if err != nil {
				return errors.Wrapf(err, "engine: thread %d: next", threadID)
			}
			if n == 0 {
				break
			}
			agg, ok := op.(resultAggregator)
			if !ok {
				return errors.Errorf("engine: thread %d: pipeline root has no Result()", threadID)
			}
			mu.Lock()
			total += agg.Result()
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	vlog.Default().Info("query complete", "strategy", "vectorized", "threads", nThreads, "revenue", total)
	return total, nil
}
