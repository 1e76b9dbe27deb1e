// Package join implements the Hashjoin operator: a
// cooperative partition-and-scatter build over internal/hashtable.Table
// followed by an independent-per-worker probe, driven through an
// explicit state machine and grounded in jakewins-cockroach's
// hashJoinEqOp/hashJoinProber Init/Next pull-model shape.
package join

import (
	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/hashtable"
	"github.com/ansrivas/vecbase/internal/operator"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/types"
	"github.com/ansrivas/vecbase/internal/worker"
)

// State names the Hashjoin's run states: Initial -> Building ->
// BuildBarrier -> Scattering -> ProbeBarrier -> Probing -> Done.
type State int

const (
	Initial State = iota
	Building
	BuildBarrier
	Scattering
	ProbeBarrier
	Probing
	Done
)

// Hashjoin is one worker thread's view of a join: it shares a
// buildCoordinator and a worker.SharedStateManager site with every other
// thread running the same join, but otherwise owns its state machine,
// its thread-local build entries, and its own probe-child pipeline.
type Hashjoin struct {
	threadID int
	siteID   int

	buildChild operator.Operator
	buildKeyFn KeyFunc
	probeChild operator.Operator
	probeKeyFn KeyFunc

	barrier *worker.HierarchicBarrier
	shared  *worker.SharedStateManager
	coord   *buildCoordinator

	state State
	local hashtable.LocalBuild
	table *hashtable.Table

	probeRows []int32
	buildRows []int32
	ctx       operator.EvalContext
}

// Config is the shared, per-join construction state every worker
// thread's Hashjoin needs a reference to, built once by the query
// builder and handed to NewHashjoin once per thread.
type Config struct {
	SiteID  int
	Barrier *worker.HierarchicBarrier
	Shared  *worker.SharedStateManager
	Coord   *buildCoordinator
}

// NewSharedConfig allocates the state a join's NumThreads per-thread
// Hashjoin instances all share: one barrier, one SharedStateManager
// site, one buildCoordinator.
func NewSharedConfig(siteID int, barrier *worker.HierarchicBarrier, shared *worker.SharedStateManager) *Config {
	return &Config{
		SiteID:  siteID,
		Barrier: barrier,
		Shared:  shared,
		Coord:   newBuildCoordinator(barrier.NumThreads()),
	}
}

// NewHashjoin builds one worker thread's Hashjoin. buildChild and
// probeChild are this thread's own Scan-rooted pipelines (typically
// over disjoint morsels of the build/probe relations); buildKeyFn and
// probeKeyFn extract each side's equi-join key.
func NewHashjoin(threadID int, cfg *Config, buildChild operator.Operator, buildKeyFn KeyFunc, probeChild operator.Operator, probeKeyFn KeyFunc) *Hashjoin {
	return &Hashjoin{
		threadID:   threadID,
		siteID:     cfg.SiteID,
		buildChild: buildChild,
		buildKeyFn: buildKeyFn,
		probeChild: probeChild,
		probeKeyFn: probeKeyFn,
		barrier:    cfg.Barrier,
		shared:     cfg.Shared,
		coord:      cfg.Coord,
		state:      Initial,
	}
}

// Next drives the state machine to completion or to the next batch of
// probe matches, blocking at the two barriers alongside this join's
// other worker threads. It returns the number of (probeRow, buildRow)
// pairs in the batch now available via ProbeRows/BuildRows.
func (hj *Hashjoin) Next(cfg primitive.Config) (int, error) {
	for {
		switch hj.state {
		case Initial:
			hj.state = Building

		case Building:
			n, err := hj.buildChild.Next(cfg)
			if err != nil {
				return 0, errors.Wrap(err, "hashjoin: build child")
			}
			if n == 0 {
				hj.coord.reportCount(hj.threadID, hj.local.Len())
				hj.state = BuildBarrier
				continue
			}
			hj.absorbBuildBatch(hj.buildChild.Ctx())

		case BuildBarrier:
			hj.barrier.Wait(hj.threadID, func() {
				total := hj.coord.computeOffsets()
				hj.shared.Publish(hj.siteID, hashtable.NewTable(total))
			})
			hj.state = Scattering

		case Scattering:
			tableAny, ok := hj.shared.Lookup(hj.siteID)
			if !ok {
				return 0, errors.Errorf("hashjoin: site %d: build table not published", hj.siteID)
			}
			hj.table = tableAny.(*hashtable.Table)
			hj.table.Scatter(&hj.local, hj.coord.offsetFor(hj.threadID))
			hj.state = ProbeBarrier

		case ProbeBarrier:
			hj.barrier.Wait(hj.threadID, nil)
			hj.state = Probing

		case Probing:
			n, err := hj.probeOneBatch(cfg)
			if err != nil {
				return 0, errors.Wrap(err, "hashjoin: probe")
			}
			if n < 0 {
				hj.state = Done
				continue
			}
			if n == 0 {
				continue
			}
			return n, nil

		case Done:
			return 0, nil
		}
	}
}

// absorbBuildBatch hashes and accumulates one build-side batch into this
// thread's LocalBuild.
func (hj *Hashjoin) absorbBuildBatch(ctx *operator.EvalContext) {
	keys, localPos := hj.buildKeyFn(ctx)
	for i, k := range keys {
		row := int32(ctx.Base) + localPos[i]
		hj.local.Add(types.MixHash64(uint64(k)), k, row)
	}
}

// probeOneBatch pulls exactly one probe-child batch and runs the
// configured probe algorithm over it. Returns -1 at probe-child EOS, 0
// if the batch produced no matches (caller should pull again), or the
// positive match count otherwise.
func (hj *Hashjoin) probeOneBatch(cfg primitive.Config) (int, error) {
	n, err := hj.probeChild.Next(cfg)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return -1, nil
	}

	ctx := hj.probeChild.Ctx()
	keys, localPos := hj.probeKeyFn(ctx)
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = types.MixHash64(uint64(k))
	}

	var localProbe, buildRows []int32
	switch cfg.SelectJoinAlgorithm() {
	case primitive.JoinBoncz:
		localProbe, buildRows = hashtable.ProbeBoncz(hj.table, hashes, keys, nil)
	case primitive.JoinAllSIMD:
		localProbe, buildRows = hashtable.ProbeAllSIMD(hj.table, hashes, keys, nil)
	default:
		localProbe, buildRows = hashtable.ProbeAllParallel(hj.table, hashes, keys, nil)
	}

	hj.probeRows = make([]int32, len(localProbe))
	for i, lp := range localProbe {
		hj.probeRows[i] = int32(ctx.Base) + localPos[lp]
	}
	hj.buildRows = buildRows
	hj.ctx = operator.EvalContext{Base: 0, Size: len(hj.probeRows)}
	return len(hj.probeRows), nil
}

// Ctx exposes a dense [0, n) EvalContext over the current match batch;
// ProbeRows/BuildRows are the parallel buffers a parent operator
// projects probe/build columns through.
func (hj *Hashjoin) Ctx() *operator.EvalContext { return &hj.ctx }

// ProbeRows reports, for the current batch, each match's absolute row
// index into the probe relation.
func (hj *Hashjoin) ProbeRows() []int32 { return hj.probeRows }

// BuildRows reports, for the current batch, each match's absolute row
// index into the build relation, parallel to ProbeRows.
func (hj *Hashjoin) BuildRows() []int32 { return hj.buildRows }
