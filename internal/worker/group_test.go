package worker

import (
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGroupRunAllRunsEveryThread(t *testing.T) {
	g := NewGroup(8)
	var count atomic.Int64
	err := g.RunAll(func(threadID int) error {
		count.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(8), count.Load())
}

func TestGroupRunAllSurfacesFirstError(t *testing.T) {
	g := NewGroup(4)
	sentinel := errors.New("boom")
	err := g.RunAll(func(threadID int) error {
		if threadID == 2 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestVectorAllocatorBumpAndReset(t *testing.T) {
	pool := NewGlobalPool()
	a := NewVectorAllocator()
	a.SetSource(pool)

	buf1 := a.Alloc(64)
	buf2 := a.Alloc(64)
	require.Len(t, buf1, 64)
	require.Len(t, buf2, 64)

	a.Reset()
	// after reset, the allocator must not hold onto stale chunks
	buf3 := a.Alloc(64)
	require.Len(t, buf3, 64)
}

func TestVectorAllocatorWithSourceRestores(t *testing.T) {
	pool1 := NewGlobalPool()
	pool2 := NewGlobalPool()
	a := NewVectorAllocator()
	a.SetSource(pool1)

	a.WithSource(pool2, func() {
		require.Equal(t, pool2, a.source)
	})
	require.Equal(t, pool1, a.source)
}

func TestSharedStateManagerPublishLookup(t *testing.T) {
	m := NewSharedStateManager()
	_, ok := m.Lookup(1)
	require.False(t, ok)

	m.Publish(1, "hash-table")
	v, ok := m.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "hash-table", v)

	m.Teardown()
	_, ok = m.Lookup(1)
	require.False(t, ok)
}
