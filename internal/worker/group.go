package worker

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group drives one query's worker threads: a fixed thread count and a
// RunAll that runs one closure per thread. Unlike go-highway's
// workerpool.Pool, it keeps no persistent goroutines: every RunAll call
// starts n fresh goroutines through an errgroup.Group and they exit when
// the closure returns, so nothing is reused between calls. Its unit of
// work is "one full query pipeline per thread, run exactly once, with
// the first error (if any) recorded" rather than workerpool's generic
// range-splitting ParallelFor.
type Group struct {
	n int
}

// NewGroup creates a Group of n worker threads. If n <= 0, uses
// GOMAXPROCS — one thread per logical core by default.
func NewGroup(n int) *Group {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Group{n: n}
}

// NumThreads reports how many worker threads this Group drives.
func (g *Group) NumThreads() int { return g.n }

// RunAll runs fn(threadID) once per worker thread, in parallel, and
// returns the first non-nil error any thread produced. An error raised
// in a worker aborts that worker's pipeline and is recorded; RunAll is
// the boundary that surfaces it to the caller once every thread has
// returned (whether by finishing its pipeline or by unwinding after an
// error).
func (g *Group) RunAll(fn func(threadID int) error) error {
	var eg errgroup.Group
	for t := 0; t < g.n; t++ {
		tid := t
		eg.Go(func() error {
			return fn(tid)
		})
	}
	return eg.Wait()
}
