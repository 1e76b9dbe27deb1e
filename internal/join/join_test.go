package join

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/operator"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/worker"
)

type matchedPair struct{ probe, build int32 }

func bruteForce(buildKeys, probeKeys []int32) []matchedPair {
	var want []matchedPair
	for p, pk := range probeKeys {
		for b, bk := range buildKeys {
			if pk == bk {
				want = append(want, matchedPair{int32(p), int32(b)})
			}
		}
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i].probe != want[j].probe {
			return want[i].probe < want[j].probe
		}
		return want[i].build < want[j].build
	})
	return want
}

// runParallelJoin runs one Hashjoin across nThreads worker threads, each
// scanning a disjoint morsel of buildRel/probeRel, and collects every
// thread's matches into one sorted slice.
func runParallelJoin(t *testing.T, nThreads int, buildRel, probeRel *coldata.Relation, cfg primitive.Config) []matchedPair {
	t.Helper()
	barrier := worker.NewHierarchicBarrier(nThreads)
	shared := worker.NewSharedStateManager()
	joinCfg := NewSharedConfig(1, barrier, shared)

	group := worker.NewGroup(nThreads)
	var mu sync.Mutex
	var got []matchedPair

	err := group.RunAll(func(threadID int) error {
		buildLo, buildHi := morsel(buildRel.NumRows(), nThreads, threadID)
		probeLo, probeHi := morsel(probeRel.NumRows(), nThreads, threadID)

		buildScan := operator.NewRangeScan(buildRel, 64, buildLo, buildHi)
		probeScan := operator.NewRangeScan(probeRel, 64, probeLo, probeHi)

		hj := NewHashjoin(threadID, joinCfg,
			buildScan, IntegerKeyColumn(buildRel.MustColumn("key")),
			probeScan, IntegerKeyColumn(probeRel.MustColumn("key")))

		for {
			n, err := hj.Next(cfg)
			if err != nil {
				return err
			}
			if n == 0 && hj.state == Done {
				return nil
			}
			if n > 0 {
				mu.Lock()
				for i := range hj.ProbeRows() {
					got = append(got, matchedPair{hj.ProbeRows()[i], hj.BuildRows()[i]})
				}
				mu.Unlock()
			}
		}
	})
	require.NoError(t, err)

	sort.Slice(got, func(i, j int) bool {
		if got[i].probe != got[j].probe {
			return got[i].probe < got[j].probe
		}
		return got[i].build < got[j].build
	})
	return got
}

func morsel(n, nThreads, threadID int) (int, int) {
	chunk := (n + nThreads - 1) / nThreads
	lo := threadID * chunk
	hi := lo + chunk
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

func buildRelationFromKeys(t *testing.T, name string, keys []int32) *coldata.Relation {
	t.Helper()
	rel, err := coldata.NewRelation(name, coldata.NewIntegerColumn("key", keys))
	require.NoError(t, err)
	return rel
}

// TestHashjoinParallelMatchesBruteForce runs the full cooperative build
// + probe state machine across multiple worker threads and checks the
// resulting multiset of matches against a brute-force nested-loop join
// — the parallel, operator-level analogue of hashtable's own
// all-probe-algorithms check.
func TestHashjoinParallelMatchesBruteForce(t *testing.T) {
	buildKeys := []int32{1, 2, 2, 3, 4, 5, 5, 5, 9, 10, 11, 12, 13, 14, 15, 16}
	probeKeys := []int32{2, 5, 20, 1, 9, 5, 3, 0, 14, 2, 11, 16, 1, 1, 1, 1}

	buildRel := buildRelationFromKeys(t, "build", buildKeys)
	probeRel := buildRelationFromKeys(t, "probe", probeKeys)

	want := bruteForce(buildKeys, probeKeys)

	for _, nThreads := range []int{1, 3, 4} {
		got := runParallelJoin(t, nThreads, buildRel, probeRel, primitive.Config{})
		require.Equal(t, want, got, "nThreads=%d", nThreads)
	}
}

// TestHashjoinEmptyBuildSide covers the degenerate case: an empty
// build side still drives the state machine to Done with zero matches.
func TestHashjoinEmptyBuildSide(t *testing.T) {
	buildRel := buildRelationFromKeys(t, "build", nil)
	probeRel := buildRelationFromKeys(t, "probe", []int32{1, 2, 3})

	got := runParallelJoin(t, 2, buildRel, probeRel, primitive.Config{})
	require.Empty(t, got)
}
