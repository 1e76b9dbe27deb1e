package compiled

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/types"
)

func buildQ6Database(t *testing.T) (*coldata.Database, int64) {
	t.Helper()

	inShip, err := types.ParseDate("1994-06-01")
	require.NoError(t, err)
	outShip, err := types.ParseDate("1995-06-01")
	require.NoError(t, err)

	shipdate := []int32{int32(inShip), int32(inShip), int32(inShip), int32(outShip), int32(inShip)}
	quantity := []int64{1000, 2399, 0, 500, 2400}
	discount := []int64{6, 5, 7, 6, 6}
	price := []int64{1000, 2000, 500, 9999, 9999}

	rel, err := coldata.NewRelation("lineitem",
		coldata.NewDateColumn("l_shipdate", shipdate),
		coldata.NewNumericColumn("l_discount", 2, discount),
		coldata.NewNumericColumn("l_quantity", 2, quantity),
		coldata.NewNumericColumn("l_extendedprice", 2, price),
	)
	require.NoError(t, err)

	db := coldata.NewDatabase()
	db.AddTable("lineitem", rel)

	want := int64(1000*6 + 2000*5 + 500*7)
	return db, want
}

func TestCompiledQ6SingleThreadMatchesHandComputedRevenue(t *testing.T) {
	db, want := buildQ6Database(t)
	got, err := Q6(db, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCompiledQ6AgreesAcrossThreadCounts(t *testing.T) {
	db, want := buildQ6Database(t)
	for _, n := range []int{1, 2, 3, 8} {
		got, err := Q6(db, n)
		require.NoError(t, err)
		require.Equal(t, want, got, "nThreads=%d", n)
	}
}

func TestCompiledQ6UnknownTableErrors(t *testing.T) {
	db := coldata.NewDatabase()
	_, err := Q6(db, 1)
	require.Error(t, err)
}
