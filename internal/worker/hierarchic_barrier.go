package worker

// threadsPerBarrier is the hierarchical barrier's fan-in, matching the
// reference engine's HierarchicBarrier.
const threadsPerBarrier = 8

// HierarchicBarrier is a tree of flat Barriers with fan-in 8, reducing
// cross-core/cross-socket traffic from O(n) to O(log8 n) at moderate
// thread counts. Ported from Barrier.hpp's HierarchicBarrier.
//
// Construction is bottom-up into an explicit slice of levels, each level
// a slice of *Barrier: level[0] has one Barrier per up-to-8 leaf threads,
// level[1] has one Barrier per up-to-8 level[0] barriers, and so on. A
// partial last group at level i still has a single, unambiguous parent
// at level i+1 because the parent index is always i/threadsPerBarrier,
// computed from the child's own index rather than tracked via a
// separate "current group" pointer.
type HierarchicBarrier struct {
	levels [][]*Barrier
	// leaf[threadID] is the level-0 barrier that thread waits on.
	leaf []*Barrier
	// leafGroup[threadID] is threadID's position within its level-0 group
	// (recorded at construction; not read by Wait and not required for
	// correctness).
	leafGroup []int
}

// NewHierarchicBarrier builds a tree for nThreads participants.
func NewHierarchicBarrier(nThreads int) *HierarchicBarrier {
	hb := &HierarchicBarrier{}
	levelSize := nThreads
	var prevLevel []*Barrier
	for {
		numBarriers := (levelSize + threadsPerBarrier - 1) / threadsPerBarrier
		level := make([]*Barrier, numBarriers)
		remaining := levelSize
		for i := range level {
			sz := threadsPerBarrier
			if remaining < threadsPerBarrier {
				sz = remaining
			}
			level[i] = NewBarrier(sz)
			remaining -= sz
		}
		hb.levels = append(hb.levels, level)
		if prevLevel == nil {
			hb.leaf = make([]*Barrier, nThreads)
			hb.leafGroup = make([]int, nThreads)
			for t := 0; t < nThreads; t++ {
				hb.leaf[t] = level[t/threadsPerBarrier]
				hb.leafGroup[t] = t % threadsPerBarrier
			}
		}
		if numBarriers == 1 {
			break
		}
		prevLevel = level
		levelSize = numBarriers
	}
	return hb
}

// Wait rendezvouses threadID at its leaf barrier. Only the thread that
// becomes the leaf's last arriver ever calls into the parent level, so
// exactly one thread per leaf group propagates upward; only the single
// thread that executes the true root's finalizer returns true here —
// the same leader-uniqueness guarantee as a flat Barrier, now holding transitively across the whole tree.
func (hb *HierarchicBarrier) Wait(threadID int, finalizer func()) bool {
	leafIdx := threadID / threadsPerBarrier
	var globalLeader bool
	isLeafLast := hb.levels[0][leafIdx].Wait(func() {
		globalLeader = hb.propagateUp(0, leafIdx, finalizer)
	})
	if !isLeafLast {
		return false
	}
	return globalLeader
}

// propagateUp runs inside the finalizer of the barrier at (level, idx)
// once that barrier's last arriver has been determined. If that barrier
// is the root (the single barrier in the tree's last level), it runs the
// caller's finalizer directly; otherwise it waits at the parent level,
// whose index is always idx/threadsPerBarrier — unambiguous even when
// the child group at (level, idx) is a partial (fewer than
// threadsPerBarrier) last group, since the parent is never derived from
// anything but integer division of the child's index.
func (hb *HierarchicBarrier) propagateUp(level, idx int, finalizer func()) bool {
	if level == len(hb.levels)-1 {
		if finalizer != nil {
			finalizer()
		}
		return true
	}
	parentIdx := idx / threadsPerBarrier
	var leader bool
	isParentLast := hb.levels[level+1][parentIdx].Wait(func() {
		leader = hb.propagateUp(level+1, parentIdx, finalizer)
	})
	if !isParentLast {
		return false
	}
	return leader
}

// NumThreads reports the number of leaf participants.
func (hb *HierarchicBarrier) NumThreads() int { return len(hb.leaf) }
