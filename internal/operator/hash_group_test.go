package operator

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/worker"
)

type groupTotal struct {
	key int64
	sum int64
}

func bruteForceGroup(keys []int32, vals []int64) []groupTotal {
	totals := map[int64]int64{}
	for i, k := range keys {
		totals[int64(k)] += vals[i]
	}
	var want []groupTotal
	for k, s := range totals {
		want = append(want, groupTotal{k, s})
	}
	sort.Slice(want, func(i, j int) bool { return want[i].key < want[j].key })
	return want
}

// runParallelGroup runs one HashGroup across nThreads worker threads,
// each scanning a disjoint morsel of rel, and collects the emitter
// thread's final (key, sum) pairs.
func runParallelGroup(t *testing.T, nThreads int, rel *coldata.Relation, vectorSize int) []groupTotal {
	t.Helper()
	barrier := worker.NewHierarchicBarrier(nThreads)
	shared := worker.NewSharedStateManager()
	cfg := NewGroupConfig(1, barrier, shared)

	group := worker.NewGroup(nThreads)
	var mu sync.Mutex
	var got []groupTotal

	err := group.RunAll(func(threadID int) error {
		lo, hi := morselRange(rel.NumRows(), nThreads, threadID)
		scan := NewRangeScan(rel, 64, lo, hi)
		hg := NewHashGroup(threadID, cfg, scan,
			IntegerGroupKey(rel.MustColumn("key")),
			SumInt64GroupValue(rel.MustColumn("val")),
			vectorSize)

		for {
			n, err := hg.Next(primitive.Config{})
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
			ctx := hg.Ctx()
			keys := ctx.Int64Buffers["group_key"]
			sums := ctx.Int64Buffers["group_sum"]
			mu.Lock()
			for i := range keys {
				got = append(got, groupTotal{keys[i], sums[i]})
			}
			mu.Unlock()
		}
	})
	require.NoError(t, err)

	sort.Slice(got, func(i, j int) bool { return got[i].key < got[j].key })
	return got
}

func morselRange(n, nThreads, threadID int) (int, int) {
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

func buildGroupRelation(t *testing.T, keys []int32, vals []int64) *coldata.Relation {
	t.Helper()
	rel, err := coldata.NewRelation("t",
		coldata.NewIntegerColumn("key", keys),
		coldata.NewNumericColumn("val", 0, vals))
	require.NoError(t, err)
	return rel
}

// TestHashGroupParallelMatchesBruteForce runs HashGroup's full
// build/merge/emit state machine across multiple worker threads and
// checks the resulting per-key sums against a plain Go map fold.
func TestHashGroupParallelMatchesBruteForce(t *testing.T) {
	keys := []int32{1, 2, 2, 3, 4, 5, 5, 5, 9, 10, 1, 2, 1, 1, 3, 9}
	vals := []int64{10, 20, 5, 7, 1, 2, 3, 4, 9, 8, 11, 12, 13, 14, 15, 16}

	rel := buildGroupRelation(t, keys, vals)
	want := bruteForceGroup(keys, vals)

	for _, nThreads := range []int{1, 3, 4} {
		got := runParallelGroup(t, nThreads, rel, 4)
		require.Equal(t, want, got, "nThreads=%d", nThreads)
	}
}

// TestHashGroupEmptyInput covers the degenerate empty-relation case: the
// state machine still reaches Done with zero groups.
func TestHashGroupEmptyInput(t *testing.T) {
	rel := buildGroupRelation(t, nil, nil)
	got := runParallelGroup(t, 2, rel, 4)
	require.Empty(t, got)
}

// TestHashGroupSingleKey covers every row folding into one group.
func TestHashGroupSingleKey(t *testing.T) {
	keys := []int32{7, 7, 7, 7, 7}
	vals := []int64{1, 2, 3, 4, 5}
	rel := buildGroupRelation(t, keys, vals)

	got := runParallelGroup(t, 3, rel, 2)
	require.Equal(t, []groupTotal{{7, 15}}, got)
}
