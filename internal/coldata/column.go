// Package coldata implements the engine's columnar storage layer:
// Database, Relation, Column, selection vectors, and batches — the
// data model shared by both execution strategies.
package coldata

import "github.com/pkg/errors"

// Kind tags a Column's element type.
type Kind int

const (
	KindInteger Kind = iota
	KindNumeric
	KindDate
	KindTimestamp
	KindChar
	KindVarchar
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindNumeric:
		return "Numeric"
	case KindDate:
		return "Date"
	case KindTimestamp:
		return "Timestamp"
	case KindChar:
		return "Char"
	case KindVarchar:
		return "Varchar"
	default:
		return "Unknown"
	}
}

// Column is a typed, contiguous buffer of fixed-size elements plus a type
// descriptor. Integer and Date share the int32 backing store; Numeric
// and Timestamp share int64/uint64 respectively; Char and Varchar are
// stored as a blob-per-row since their payload is variable-length — the
// one place this port departs from "one flat buffer," because Go has no
// portable fixed-stride variable-length buffer short of hand-rolled
// offset arithmetic. Every fixed-width primitive family (hash, sel,
// proj, aggr) operates on Int32Data/Int64Data, never on the blob store.
//
// Columns are append-only during build (via the AppendX methods) and
// read-only thereafter; a result-relation column may be Reset and
// refilled by FixedAggregation/Project output.
type Column struct {
	Name string
	Kind Kind

	// Scale is meaningful only for KindNumeric (p in Numeric<len,p>).
	Scale uint8
	// Cap is meaningful only for KindChar/KindVarchar (the n in Char<n>).
	Cap int

	i32 []int32
	i64 []int64
	u64 []uint64
	blb [][]byte
}

// NewIntegerColumn builds a Column of Integer values.
func NewIntegerColumn(name string, vals []int32) *Column {
	return &Column{Name: name, Kind: KindInteger, i32: vals}
}

// NewDateColumn builds a Column of Date values (stored as int32 days).
func NewDateColumn(name string, vals []int32) *Column {
	return &Column{Name: name, Kind: KindDate, i32: vals}
}

// NewNumericColumn builds a Column of Numeric values of a fixed scale.
func NewNumericColumn(name string, scale uint8, vals []int64) *Column {
	return &Column{Name: name, Kind: KindNumeric, Scale: scale, i64: vals}
}

// NewTimestampColumn builds a Column of Timestamp values.
func NewTimestampColumn(name string, vals []uint64) *Column {
	return &Column{Name: name, Kind: KindTimestamp, u64: vals}
}

// NewCharColumn builds a Column of fixed-capacity, leading-space-trimmed
// strings.
func NewCharColumn(name string, cap int, vals [][]byte) *Column {
	return &Column{Name: name, Kind: KindChar, Cap: cap, blb: vals}
}

// NewVarcharColumn builds a Column of fixed-capacity, untrimmed strings.
func NewVarcharColumn(name string, cap int, vals [][]byte) *Column {
	return &Column{Name: name, Kind: KindVarchar, Cap: cap, blb: vals}
}

// Len reports the column's row count.
func (c *Column) Len() int {
	switch c.Kind {
	case KindInteger, KindDate:
		return len(c.i32)
	case KindNumeric:
		return len(c.i64)
	case KindTimestamp:
		return len(c.u64)
	default:
		return len(c.blb)
	}
}

// Int32Data returns the raw backing slice for Integer/Date columns.
func (c *Column) Int32Data() []int32 {
	if c.Kind != KindInteger && c.Kind != KindDate {
		panic(errors.Errorf("coldata: Int32Data on %s column %q", c.Kind, c.Name))
	}
	return c.i32
}

// Int64Data returns the raw backing slice for Numeric columns.
func (c *Column) Int64Data() []int64 {
	if c.Kind != KindNumeric {
		panic(errors.Errorf("coldata: Int64Data on %s column %q", c.Kind, c.Name))
	}
	return c.i64
}

// Uint64Data returns the raw backing slice for Timestamp columns.
func (c *Column) Uint64Data() []uint64 {
	if c.Kind != KindTimestamp {
		panic(errors.Errorf("coldata: Uint64Data on %s column %q", c.Kind, c.Name))
	}
	return c.u64
}

// BlobData returns the raw backing slice for Char/Varchar columns.
func (c *Column) BlobData() [][]byte {
	if c.Kind != KindChar && c.Kind != KindVarchar {
		panic(errors.Errorf("coldata: BlobData on %s column %q", c.Kind, c.Name))
	}
	return c.blb
}

// Reset discards this column's contents and reserves capacity n, for
// reuse as a result-relation column across query runs.
func (c *Column) Reset(n int) {
	switch c.Kind {
	case KindInteger, KindDate:
		c.i32 = make([]int32, 0, n)
	case KindNumeric:
		c.i64 = make([]int64, 0, n)
	case KindTimestamp:
		c.u64 = make([]uint64, 0, n)
	default:
		c.blb = make([][]byte, 0, n)
	}
}

// AppendInt32 appends to an Integer/Date column.
func (c *Column) AppendInt32(v int32) { c.i32 = append(c.i32, v) }

// AppendInt64 appends to a Numeric column.
func (c *Column) AppendInt64(v int64) { c.i64 = append(c.i64, v) }

// AppendUint64 appends to a Timestamp column.
func (c *Column) AppendUint64(v uint64) { c.u64 = append(c.u64, v) }

// AppendBlob appends to a Char/Varchar column.
func (c *Column) AppendBlob(v []byte) { c.blb = append(c.blb, v) }
