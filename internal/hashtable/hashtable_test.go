package hashtable

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/types"
)

type pair struct{ probe, build int32 }

func pairs(probeRows, buildRows []int32) []pair {
	out := make([]pair, len(probeRows))
	for i := range probeRows {
		out[i] = pair{probeRows[i], buildRows[i]}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].probe != out[j].probe {
			return out[i].probe < out[j].probe
		}
		return out[i].build < out[j].build
	})
	return out
}

// buildTable builds a Table over buildKeys using two simulated threads,
// exercising the partition-and-scatter build: each thread
// hashes and accumulates its half into a LocalBuild, then both scatter
// into disjoint arena ranges of one shared Table.
func buildTable(t *testing.T, buildKeys []int64) *Table {
	t.Helper()
	mid := len(buildKeys) / 2
	var left, right LocalBuild
	for row, k := range buildKeys[:mid] {
		left.Add(types.MixHash64(uint64(k)), k, int32(row))
	}
	for row, k := range buildKeys[mid:] {
		right.Add(types.MixHash64(uint64(k)), k, int32(mid+row))
	}

	table := NewTable(len(buildKeys))
	table.Scatter(&left, 0)
	table.Scatter(&right, int32(left.Len()))
	return table
}

func bruteForceJoin(buildKeys []int64, probeKeys []int64) []pair {
	var want []pair
	for p, pk := range probeKeys {
		for b, bk := range buildKeys {
			if pk == bk {
				want = append(want, pair{int32(p), int32(b)})
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

// TestAllProbeAlgorithmsMatchBruteForce: all three probe algorithms must
// produce the exact same multiset of (probeRow, buildRow) pairs as a
// brute-force nested-loop join, including duplicate build keys forming
// chains.
func TestAllProbeAlgorithmsMatchBruteForce(t *testing.T) {
	buildKeys := []int64{1, 2, 2, 3, 4, 4, 4, 5, 100, 101, 2, 7}
	probeKeys := []int64{2, 4, 9, 1, 100, 4, 2, 0, 5}

	table := buildTable(t, buildKeys)

	hashes := make([]uint64, len(probeKeys))
	for i, k := range probeKeys {
		hashes[i] = types.MixHash64(uint64(k))
	}

	want := bruteForceJoin(buildKeys, probeKeys)

	p1, b1 := ProbeAllParallel(table, hashes, probeKeys, nil)
	require.Equal(t, want, pairs(p1, b1))

	p2, b2 := ProbeBoncz(table, hashes, probeKeys, nil)
	require.Equal(t, want, pairs(p2, b2))

	p3, b3 := ProbeAllSIMD(table, hashes, probeKeys, nil)
	require.Equal(t, want, pairs(p3, b3))
}

// TestProbeRespectsSelectionVector checks that only the probe rows
// named by sel are considered, not the full dense batch.
func TestProbeRespectsSelectionVector(t *testing.T) {
	buildKeys := []int64{10, 20, 30}
	table := buildTable(t, buildKeys)

	probeKeys := []int64{10, 20, 30, 10}
	hashes := make([]uint64, len(probeKeys))
	for i, k := range probeKeys {
		hashes[i] = types.MixHash64(uint64(k))
	}
	sel := []int32{0, 3} // only rows matching key 10

	p, b := ProbeAllParallel(table, hashes, probeKeys, sel)
	require.Equal(t, []int32{0, 3}, p)
	require.Equal(t, []int32{0, 0}, b)
}

// TestEmptyTableProbeYieldsNoMatches covers the degenerate case: an
// empty build side still yields a valid, empty Table.
func TestEmptyTableProbeYieldsNoMatches(t *testing.T) {
	table := NewTable(0)
	probeKeys := []int64{1, 2, 3}
	hashes := make([]uint64, len(probeKeys))
	for i, k := range probeKeys {
		hashes[i] = types.MixHash64(uint64(k))
	}
	p, b := ProbeAllParallel(table, hashes, probeKeys, nil)
	require.Empty(t, p)
	require.Empty(t, b)
}
