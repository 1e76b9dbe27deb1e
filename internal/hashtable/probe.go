package hashtable

import "github.com/ansrivas/vecbase/internal/simd"

// probePositions returns sel if non-nil, else the dense prefix [0, n).
func probePositions(sel []int32, n int) []int32 {
	if sel != nil {
		return sel
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// ProbeAllParallel is the default probe algorithm: for each
// probe row, hash to a bucket and walk its chain, emitting one output
// row per matching entry. Grounded in hashJoinProber.exec's
// lookupInitial/check/findNext loop, collapsed to one pass per probe row
// since there is no toCheck/groupID array to batch here.
func ProbeAllParallel(t *Table, hashes []uint64, keys []int64, sel []int32) (probeRows, buildRows []int32) {
	for _, p := range probePositions(sel, len(hashes)) {
		idx := t.buckets[t.bucketIndex(hashes[p])].Load()
		for idx != emptyBucket {
			if t.hashArena[idx] == hashes[p] && t.keyArena[idx] == keys[p] {
				probeRows = append(probeRows, p)
				buildRows = append(buildRows, t.rowArena[idx])
			}
			idx = t.nextArena[idx]
		}
	}
	return probeRows, buildRows
}

// ProbeBoncz first gathers every probe row's bucket head into a buffer,
// then iteratively advances the still-live chain pointers together,
// comparing keys and compacting the set of rows still being chased —
// trading the branchy "one chain walked to completion at a time" shape
// of ProbeAllParallel for a breadth-first walk that keeps the working
// set dense.
func ProbeBoncz(t *Table, hashes []uint64, keys []int64, sel []int32) (probeRows, buildRows []int32) {
	positions := probePositions(sel, len(hashes))
	heads := make([]int32, len(positions))
	for i, p := range positions {
		heads[i] = t.buckets[t.bucketIndex(hashes[p])].Load()
	}

	// active holds, for every row still being chased, the index into
	// positions/heads it corresponds to.
	active := make([]int32, len(positions))
	for i := range active {
		active[i] = int32(i)
	}

	for len(active) > 0 {
		next := active[:0]
		for _, ai := range active {
			idx := heads[ai]
			if idx == emptyBucket {
				continue
			}
			p := positions[ai]
			if t.hashArena[idx] == hashes[p] && t.keyArena[idx] == keys[p] {
				probeRows = append(probeRows, p)
				buildRows = append(buildRows, t.rowArena[idx])
			}
			heads[ai] = t.nextArena[idx]
			if heads[ai] != emptyBucket {
				next = append(next, ai)
			}
		}
		active = next
	}
	return probeRows, buildRows
}

// ProbeAllSIMD is the width-8 probe: gather bucket heads for
// a lane of probe rows, gather the pointed-to entries' hash/key columns,
// compare both vector-wise into a surviving mask, compress matches out,
// and advance chain pointers only for lanes still alive. Structurally
// the same breadth-first shape as ProbeBoncz, but processes lanes in
// internal/simd.Width-sized groups through the abstract vector
// vocabulary instead of one row at a time.
func ProbeAllSIMD(t *Table, hashes []uint64, keys []int64, sel []int32) (probeRows, buildRows []int32) {
	positions := probePositions(sel, len(hashes))
	heads := t.headsSnapshot()

	cur := make([]int32, len(positions))
	alive := make([]bool, len(positions))
	for i, p := range positions {
		cur[i] = heads[t.bucketIndex(hashes[p])]
		alive[i] = cur[i] != emptyBucket
	}

	for {
		anyAlive := false
		for base := 0; base < len(positions); base += simd.Width {
			end := min(base+simd.Width, len(positions))
			lane := cur[base:end]
			pred := alive[base:end]

			gotHash := simd.GatherIndexMasked[uint64](t.hashArena, lane, pred)
			wantHash := simd.MaskedLoad(probeHashLane(hashes, positions[base:end]), pred)
			hashMatch := simd.Equal(gotHash, wantHash)

			gotKey := simd.GatherIndexMasked[int64](t.keyArena, lane, pred)
			wantKey := simd.MaskedLoad(probeKeyLane(keys, positions[base:end]), pred)
			keyMatch := simd.Equal(gotKey, wantKey)

			nextPtr := simd.GatherIndexMasked[int32](t.nextArena, lane, pred)
			rowVal := simd.GatherIndexMasked[int32](t.rowArena, lane, pred)

			for i := 0; i < len(lane); i++ {
				if !pred[i] {
					continue
				}
				if hashMatch.Get(i) && keyMatch.Get(i) {
					probeRows = append(probeRows, positions[base+i])
					buildRows = append(buildRows, rowVal.Data()[i])
				}
				nv := nextPtr.Data()[i]
				cur[base+i] = nv
				if nv == emptyBucket {
					alive[base+i] = false
				} else {
					anyAlive = true
				}
			}
		}
		if !anyAlive {
			break
		}
	}
	return probeRows, buildRows
}

func probeHashLane(hashes []uint64, positions []int32) []uint64 {
	out := make([]uint64, len(positions))
	for i, p := range positions {
		out[i] = hashes[p]
	}
	return out
}

func probeKeyLane(keys []int64, positions []int32) []int64 {
	out := make([]int64, len(positions))
	for i, p := range positions {
		out[i] = keys[p]
	}
	return out
}
