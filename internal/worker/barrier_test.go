package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBarrierReuseAcrossRounds: 16 threads, 1000 consecutive wait(fn)
// calls with fn incrementing a counter; counter==1000 and no thread
// exits a wait before fn of that round completed.
func TestBarrierReuseAcrossRounds(t *testing.T) {
	const threads = 16
	const rounds = 1000
	b := NewBarrier(threads)
	var counter atomic.Int64
	var seenByRound [rounds]atomic.Int64

	var wg sync.WaitGroup
	wg.Add(threads)
	for tid := 0; tid < threads; tid++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				b.Wait(func() {
					counter.Add(1)
				})
				// Every thread, after returning from Wait, must observe
				// a counter value that already reflects this round's
				// increment (single-finalize-before-release).
				seenByRound[r].Add(counter.Load())
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(rounds), counter.Load())
	for r := 0; r < rounds; r++ {
		require.GreaterOrEqual(t, seenByRound[r].Load(), int64(r+1)*threads,
			"round %d: some thread observed counter before finalizer completed", r)
	}
}

// TestBarrierLeaderUniqueness: exactly one thread observes leader=true
// per wait.
func TestBarrierLeaderUniqueness(t *testing.T) {
	const threads = 32
	b := NewBarrier(threads)
	var leaders atomic.Int64
	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			if b.Wait(nil) {
				leaders.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(1), leaders.Load())
}

// TestHierarchicBarrierMatchesFlatBarrier: for n in {1,7,8,9,64,129},
// HierarchicBarrier preserves a flat Barrier's single-finalize and
// leader-uniqueness guarantees across many consecutive rounds.
func TestHierarchicBarrierMatchesFlatBarrier(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 64, 129} {
		t.Run("", func(t *testing.T) {
			hb := NewHierarchicBarrier(n)
			const rounds = 200
			var counter atomic.Int64
			var wg sync.WaitGroup
			wg.Add(n)
			for tid := 0; tid < n; tid++ {
				go func(id int) {
					defer wg.Done()
					for r := 0; r < rounds; r++ {
						hb.Wait(id, func() {
							counter.Add(1)
						})
					}
				}(tid)
			}
			wg.Wait()
			require.Equal(t, int64(rounds), counter.Load())
		})
	}
}

func TestHierarchicLeaderUniqueness(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 64, 129} {
		hb := NewHierarchicBarrier(n)
		var leaders atomic.Int64
		var wg sync.WaitGroup
		wg.Add(n)
		for tid := 0; tid < n; tid++ {
			go func(id int) {
				defer wg.Done()
				if hb.Wait(id, nil) {
					leaders.Add(1)
				}
			}(tid)
		}
		wg.Wait()
		require.Equal(t, int64(1), leaders.Load(), "n=%d", n)
	}
}
