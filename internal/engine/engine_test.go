package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/primitive"
	"github.com/ansrivas/vecbase/internal/types"
)

func buildEngineTestDatabase(t *testing.T) (*coldata.Database, int64) {
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

func TestRunQueryVectorizedMatchesCompiled(t *testing.T) {
	db, want := buildEngineTestDatabase(t)

	got, err := RunQuery(db, Options{NThreads: 3, VectorSize: 2, Strategy: Vectorized})
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = RunQuery(db, Options{NThreads: 3, Strategy: Compiled})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRunQuerySingleThreadDefaultsApply(t *testing.T) {
	db, want := buildEngineTestDatabase(t)

	got, err := RunQuery(db, Options{PrimitiveConfig: primitive.Config{}})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRunQueryMissingTableErrors(t *testing.T) {
	db := coldata.NewDatabase()
	_, err := RunQuery(db, Options{NThreads: 1})
	require.Error(t, err)
}
