package operator

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/hashtable"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/worker"
)

var errNoGroupTable = errors.New("hashgroup: merged table not published")

// GroupKeyFunc extracts a batch's group-by key column as a dense []int64
// plus, parallel to it, each key's batch-local row position — the same
// shape join.KeyFunc uses, redeclared here to avoid importing
// internal/join (which itself imports this package).
type GroupKeyFunc func(ctx *EvalContext) (keys []int64, localPos []int32)

// IntegerGroupKey builds a GroupKeyFunc over an Integer (or Date)
// column.
func IntegerGroupKey(col *coldata.Column) GroupKeyFunc {
	data := col.Int32Data()
	return func(ctx *EvalContext) ([]int64, []int32) {
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

// GroupValueFunc reads the values a HashGroup folds into each group's
// sum, at the row positions localPos (as returned alongside the matching
// keys by a GroupKeyFunc).
type GroupValueFunc func(ctx *EvalContext, localPos []int32) []int64

// SumInt64GroupValue builds a GroupValueFunc reading col's raw int64
// storage (a Numeric column's Raw values, or a plain int64 measure).
func SumInt64GroupValue(col *coldata.Column) GroupValueFunc {
	data := col.Int64Data()
	return func(ctx *EvalContext, localPos []int32) []int64 {
		out := make([]int64, len(localPos))
		for i, row := range localPos {
			out[i] = data[ctx.Base+int(row)]
		}
		return out
	}
}

// groupState names HashGroup's run states: Initial -> Building ->
// MergeBarrier -> Merging -> OutputBarrier -> Emitting -> Done.
type groupState int

const (
	groupInitial groupState = iota
	groupBuilding
	groupMergeBarrier
	groupMerging
	groupOutputBarrier
	groupEmitting
	groupDone
)

// groupCoordinator is the per-query, per-HashGroup scratch state shared
// by every worker thread's HashGroup instance: each thread reports its
// own local distinct-key count before the merge barrier, and the
// barrier's leader sums those into an upper bound on the merged table's
// distinct-key count.
type groupCoordinator struct {
	mu     sync.Mutex
	counts []int
}

func newGroupCoordinator(nThreads int) *groupCoordinator {
	return &groupCoordinator{counts: make([]int, nThreads)}
}

func (c *groupCoordinator) reportCount(threadID, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[threadID] = n
}

func (c *groupCoordinator) totalCapacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// GroupConfig is the shared, per-HashGroup construction state every
// worker thread's HashGroup needs a reference to.
type GroupConfig struct {
	SiteID  int
	Barrier *worker.HierarchicBarrier
	Shared  *worker.SharedStateManager
	coord   *groupCoordinator
}

// NewGroupConfig allocates the state a HashGroup's NumThreads per-thread
// instances all share: one barrier, one SharedStateManager site, one
// groupCoordinator.
func NewGroupConfig(siteID int, barrier *worker.HierarchicBarrier, shared *worker.SharedStateManager) *GroupConfig {
	return &GroupConfig{
		SiteID:  siteID,
		Barrier: barrier,
		Shared:  shared,
		coord:   newGroupCoordinator(barrier.NumThreads()),
	}
}

// HashGroup is a parallel GROUP BY: each worker thread folds its own
// morsel into a thread-local map[key]sum, then every thread merges its
// local map into one shared hashtable.GroupTable using atomic chaining,
// and finally one designated thread streams the merged (key, sum) pairs
// out as result batches.
type HashGroup struct {
	threadID   int
	isEmitter  bool
	vectorSize int

	child Operator
	keyFn GroupKeyFunc
	valFn GroupValueFunc

	barrier *worker.HierarchicBarrier
	shared  *worker.SharedStateManager
	siteID  int
	coord   *groupCoordinator

	state groupState
	local map[int64]int64
	table *hashtable.GroupTable

	keys   []int64
	sums   []int64
	cursor int

	ctx EvalContext
}

// NewHashGroup builds one worker thread's HashGroup. threadID == 0 is
// the designated emitter: after the merge completes, it alone streams
// the merged result; every other thread's Next returns 0 once merging is
// done, matching a terminal operator whose output lives on a single
// thread.
func NewHashGroup(threadID int, cfg *GroupConfig, child Operator, keyFn GroupKeyFunc, valFn GroupValueFunc, vectorSize int) *HashGroup {
	if vectorSize <= 0 {
		vectorSize = coldata.DefaultVectorSize
	}
	return &HashGroup{
		threadID:   threadID,
		isEmitter:  threadID == 0,
		vectorSize: vectorSize,
		child:      child,
		keyFn:      keyFn,
		valFn:      valFn,
		barrier:    cfg.Barrier,
		shared:     cfg.Shared,
		siteID:     cfg.SiteID,
		coord:      cfg.coord,
		state:      groupInitial,
		local:      make(map[int64]int64),
		ctx: EvalContext{
			Int64Buffers: map[string][]int64{},
			Int32Buffers: map[string][]int32{},
		},
	}
}

func (g *HashGroup) Next(cfg primitive.Config) (int, error) {
	for {
		switch g.state {
		case groupInitial:
			g.state = groupBuilding

		case groupBuilding:
			n, err := g.child.Next(cfg)
			if err != nil {
				return 0, err
			}
			if n == 0 {
				g.coord.reportCount(g.threadID, len(g.local))
				g.state = groupMergeBarrier
				continue
			}
			g.absorbBatch(g.child.Ctx())

		case groupMergeBarrier:
			g.barrier.Wait(g.threadID, func() {
				g.shared.Publish(g.siteID, hashtable.NewGroupTable(g.coord.totalCapacity()))
			})
			g.state = groupMerging

		case groupMerging:
			tableAny, ok := g.shared.Lookup(g.siteID)
			if !ok {
				return 0, errNoGroupTable
			}
			g.table = tableAny.(*hashtable.GroupTable)
			for key, sum := range g.local {
				g.table.InsertOrAdd(key, sum)
			}
			g.state = groupOutputBarrier

		case groupOutputBarrier:
			g.barrier.Wait(g.threadID, nil)
			if g.isEmitter {
				n := g.table.Len()
				g.keys = make([]int64, 0, n)
				g.sums = make([]int64, 0, n)
				g.table.Each(func(key, sum int64) {
					g.keys = append(g.keys, key)
					g.sums = append(g.sums, sum)
				})
			}
			g.state = groupEmitting

		case groupEmitting:
			if !g.isEmitter || g.cursor >= len(g.keys) {
				g.state = groupDone
				continue
			}
			size := min(g.vectorSize, len(g.keys)-g.cursor)
			g.ctx.Int64Buffers["group_key"] = g.keys[g.cursor : g.cursor+size]
			g.ctx.Int64Buffers["group_sum"] = g.sums[g.cursor : g.cursor+size]
			g.ctx.Base = 0
			g.ctx.Size = size
			g.ctx.Sel = nil
			g.cursor += size
			return size, nil

		case groupDone:
			g.ctx.Size = 0
			g.ctx.Sel = nil
			return 0, nil
		}
	}
}

func (g *HashGroup) absorbBatch(ctx *EvalContext) {
	keys, localPos := g.keyFn(ctx)
	vals := g.valFn(ctx, localPos)
	for i, k := range keys {
		g.local[k] += vals[i]
	}
}

func (g *HashGroup) Ctx() *EvalContext { return &g.ctx }
