// Package query builds per-thread operator pipelines for the engine's
// supported TPC-H queries, mirroring Q6Builder::getQuery()'s
// Scan/Select/Project/FixedAggregation assembly from
// original_source/src/benchmarks/tpch/queries/q6.cpp.
package query

import (
	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/operator"
)

// Builder constructs one worker thread's operator pipeline over its
// morsel of a query's input relation(s).
type Builder interface {
	// Build returns threadID's pipeline root, scanning only
	// [lo, hi) of its (query-specific) driving relation.
	Build(db *coldata.Database, threadID, nThreads int) (operator.Operator, error)
}

// morsel splits n rows into nThreads disjoint, near-equal ranges and
// returns threadID's [lo, hi), matching Scan's "each worker thread gets
// its own Scan over a disjoint range".
func morsel(n, nThreads, threadID int) (int, int) {
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

// ErrNotImplemented is returned by the query stubs for TPC-H queries the
// engine does not implement.
var ErrNotImplemented = errors.New("query: not implemented")

// notImplementedBuilder is a Builder stub for a named, unimplemented
// query.
type notImplementedBuilder struct{ name string }

func (b notImplementedBuilder) Build(db *coldata.Database, threadID, nThreads int) (operator.Operator, error) {
	return nil, errors.Wrapf(ErrNotImplemented, "query %s", b.name)
}

// Q1 is a stub: TPC-H Q1's pricing summary report groups by
// returnflag/linestatus, which operator.HashGroup can compute, but no
// builder here wires it into a full single-table scan-filter-group
// pipeline yet.
var Q1 Builder = notImplementedBuilder{"q1"}

// Q3 is a stub: the shipping priority query needs a three-way join
// (customer/orders/lineitem) the query layer does not assemble.
var Q3 Builder = notImplementedBuilder{"q3"}

// Q5 is a stub: the local supplier volume query needs a five-way join.
var Q5 Builder = notImplementedBuilder{"q5"}

// Q9 is a stub: the product type profit measure query needs a six-way
// join feeding operator.HashGroup, which this package does not assemble.
var Q9 Builder = notImplementedBuilder{"q9"}

// Q18 is a stub: the large volume customer query needs an
// operator.HashGroup aggregation feeding a second join, which this
// package does not assemble.
var Q18 Builder = notImplementedBuilder{"q18"}
