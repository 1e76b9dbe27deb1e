package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStability(t *testing.T) {
	// hash(v) is deterministic across runs.
	var vals []uint64
	for i := 0; i < 1000; i++ {
		vals = append(vals, MixHash64(uint64(i*2654435761)))
	}
	for i := 0; i < 1000; i++ {
		require.Equal(t, vals[i], MixHash64(uint64(i*2654435761)))
	}
}

func TestIntegerHashDeterministic(t *testing.T) {
	a := Integer(42)
	b := Integer(42)
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), Integer(43).Hash())
}

func TestParseInteger(t *testing.T) {
	v, err := ParseInteger("  -123")
	require.NoError(t, err)
	require.Equal(t, Integer(-123), v)

	_, err = ParseInteger("12x")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	epoch, err := ParseDate("1970-01-01")
	require.NoError(t, err)
	require.Equal(t, Date(0), epoch)

	d, err := ParseDate("1994-01-01")
	require.NoError(t, err)
	require.Greater(t, int32(d), int32(0))

	_, err = ParseDate("not-a-date")
	require.Error(t, err)
}

func TestParseNumeric(t *testing.T) {
	n, err := ParseNumeric("0.07", 4)
	require.NoError(t, err)
	require.Equal(t, int64(700), n.Raw)

	n, err = ParseNumeric("-3.5", 2)
	require.NoError(t, err)
	require.Equal(t, int64(-350), n.Raw)

	_, err = ParseNumeric("1.23456", 2)
	require.Error(t, err, "excess fractional digits must error")
}

func TestNumericMulScale(t *testing.T) {
	price, _ := ParseNumeric("100.00", 2)
	discount, _ := ParseNumeric("0.05", 2)
	product := price.Mul(discount)
	require.Equal(t, uint8(4), product.Scale)
	require.Equal(t, int64(50000), product.Raw) // 100.00 * 0.05 == 5.0000
}

func TestCharTrimsLeadingSpace(t *testing.T) {
	c, err := NewChar(8, "  abc")
	require.NoError(t, err)
	require.Equal(t, "abc", string(c.Bytes))
}

func TestVarcharDoesNotTrim(t *testing.T) {
	v, err := NewVarchar(8, "  abc")
	require.NoError(t, err)
	require.Equal(t, "  abc", string(v.Bytes))
}

func TestVarcharCompareLexicographic(t *testing.T) {
	a, _ := NewVarchar(8, "abc")
	b, _ := NewVarchar(8, "abd")
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}
