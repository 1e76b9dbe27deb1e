package operator

import (
	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
)

// Scan emits min(vectorSize, remaining) dense rows per call, advancing a
// cursor over the relation's N rows. A query built for
// parallel execution gives each worker thread its own Scan over a
// disjoint [lo, hi) range — the morsel-driven split NewRangeScan exposes.
type Scan struct {
	rel        *coldata.Relation
	vectorSize int
	cursor     int
	end        int
	ctx        EvalContext
}

// NewScan scans an entire relation from a single thread.
func NewScan(rel *coldata.Relation, vectorSize int) *Scan {
	return NewRangeScan(rel, vectorSize, 0, rel.NumRows())
}

// NewRangeScan scans only [lo, hi) of rel, the binding a WorkerGroup
// hands to each thread's morsel.
func NewRangeScan(rel *coldata.Relation, vectorSize, lo, hi int) *Scan {
	return &Scan{
		rel: rel, vectorSize: vectorSize, cursor: lo, end: hi,
		ctx: EvalContext{
			Int64Buffers: make(map[string][]int64),
			Int32Buffers: make(map[string][]int32),
		},
	}
}

func (s *Scan) Next(cfg primitive.Config) (int, error) {
	remaining := s.end - s.cursor
	if remaining <= 0 {
		s.ctx.Size = 0
		s.ctx.Sel = nil
		return 0, nil
	}
	size := s.vectorSize
	if remaining < size {
		size = remaining
	}
	// Only Base/Size/Sel change per batch; Int64Buffers/Int32Buffers are
	// scratch allocated once (by BindInt64Buffer et al.) and reused
	// across calls without resetting length — Project always writes
	// exactly NumLive() leading elements each call, so stale tail data
	// is never read.
	s.ctx.Base = s.cursor
	s.ctx.Size = size
	s.ctx.Sel = nil
	s.cursor += size
	return size, nil
}

// BindInt64Buffer allocates a length-n scratch buffer under name in this
// Scan's shared EvalContext, for a Project step downstream to write
// into. Must be called once, before the first Next, by the pipeline's
// builder — the stand-in for a real per-thread VectorAllocator
// acquisition.
func (s *Scan) BindInt64Buffer(name string, n int) {
	s.ctx.Int64Buffers[name] = make([]int64, n)
}

func (s *Scan) Ctx() *EvalContext { return &s.ctx }

// Relation exposes the scanned relation, for operators above Scan (e.g.
// Project) that need to bind a Column(scan, name) operand.
func (s *Scan) Relation() *coldata.Relation { return s.rel }
