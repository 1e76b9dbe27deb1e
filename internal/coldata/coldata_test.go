package coldata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelationColumnLookup(t *testing.T) {
	rel, err := NewRelation("t",
		NewIntegerColumn("a", []int32{1, 2, 3}),
		NewNumericColumn("b", 2, []int64{100, 200, 300}),
	)
	require.NoError(t, err)
	require.Equal(t, 3, rel.NumRows())

	c, ok := rel.Column("a")
	require.True(t, ok)
	require.Equal(t, []int32{1, 2, 3}, c.Int32Data())

	_, ok = rel.Column("missing")
	require.False(t, ok)
}

func TestRelationRejectsLengthMismatch(t *testing.T) {
	_, err := NewRelation("t",
		NewIntegerColumn("a", []int32{1, 2, 3}),
		NewIntegerColumn("b", []int32{1, 2}),
	)
	require.Error(t, err)
}

func TestDatabaseTableLookup(t *testing.T) {
	db := NewDatabase()
	rel, _ := NewRelation("lineitem", NewIntegerColumn("l_quantity", []int32{24, 10}))
	db.AddTable("lineitem", rel)

	got, ok := db.Table("lineitem")
	require.True(t, ok)
	require.Equal(t, 2, got.NumRows())

	_, ok = db.Table("nope")
	require.False(t, ok)
}

func TestSelectionVectorMonotonic(t *testing.T) {
	require.True(t, SelectionVector{0, 1, 5, 9}.IsMonotonic())
	require.False(t, SelectionVector{0, 1, 1}.IsMonotonic())
	require.False(t, SelectionVector{5, 2}.IsMonotonic())
}

func TestBatchDenseVsSelected(t *testing.T) {
	b := Dense(5)
	require.Equal(t, 5, b.NumLive())
	require.Equal(t, []int32{0, 1, 2, 3, 4}, b.Positions())

	b.Sel = SelectionVector{1, 3}
	require.Equal(t, 2, b.NumLive())
	require.Equal(t, []int32{1, 3}, b.Positions())
}

func TestRelationResetAndPushBack(t *testing.T) {
	rel, _ := NewRelation("result", NewNumericColumn("revenue", 4, nil))
	rel.Reset(1)
	require.NoError(t, rel.PushBackInt64Row(123141147))
	require.Equal(t, 1, rel.NumRows())
	c := rel.MustColumn("revenue")
	require.Equal(t, []int64{123141147}, c.Int64Data())
}
