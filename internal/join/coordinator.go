package join

import "sync"

// buildCoordinator is the build phase's per-query, per-join scratch
// state shared by every worker thread's Hashjoin instance: each thread
// reports its local entry count before the build barrier, and the
// barrier's leader turns those counts into a prefix-sum of arena
// offsets every thread reads back after the barrier releases them.
//
// One buildCoordinator is constructed per Hashjoin in the query plan and
// shared by reference across that join's per-thread clones; it is
// distinct from the *hashtable.Table itself, which is published through
// the worker.SharedStateManager.
type buildCoordinator struct {
	mu      sync.Mutex
	counts  []int
	offsets []int32
}

func newBuildCoordinator(nThreads int) *buildCoordinator {
	return &buildCoordinator{counts: make([]int, nThreads)}
}

// reportCount records threadID's local entry count.
func (c *buildCoordinator) reportCount(threadID, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[threadID] = n
}

// computeOffsets runs once, inside the build barrier's finalizer: turns
// the recorded counts into a prefix sum and returns the total, the
// count NewTable needs.
func (c *buildCoordinator) computeOffsets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsets = make([]int32, len(c.counts))
	var total int32
	for i, n := range c.counts {
		c.offsets[i] = total
		total += int32(n)
	}
	return int(total)
}

// offsetFor reports threadID's scatter start index, valid only after
// computeOffsets has run.
func (c *buildCoordinator) offsetFor(threadID int) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offsets[threadID]
}
