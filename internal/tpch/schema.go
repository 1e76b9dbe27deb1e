// Package tpch loads TPC-H's pipe-delimited .tbl dump files into
// coldata.Relations, enough of the standard eight-table schema to drive
// the engine's implemented queries (Q6's lineitem, plus the tables the
// stubbed queries would need once built).
package tpch

import "github.com/ansrivas/vecbase/internal/coldata"

// columnSpec describes one .tbl field: its destination name, storage
// kind, and (for Numeric) fixed-point scale.
type columnSpec struct {
	name  string
	kind  coldata.Kind
	scale uint8
}

// tableSpec is a table's full column list, in .tbl field order.
type tableSpec struct {
	name    string
	file    string
	columns []columnSpec
}

// lineitemSpec mirrors the standard TPC-H lineitem DDL; scales match
// q6_hyper's `types::Numeric<12, 2>` bindings for quantity/extendedprice/
// discount/tax.
var lineitemSpec = tableSpec{
	name: "lineitem",
	file: "lineitem.tbl",
	columns: []columnSpec{
		{"l_orderkey", coldata.KindInteger, 0},
		{"l_partkey", coldata.KindInteger, 0},
		{"l_suppkey", coldata.KindInteger, 0},
		{"l_linenumber", coldata.KindInteger, 0},
		{"l_quantity", coldata.KindNumeric, 2},
		{"l_extendedprice", coldata.KindNumeric, 2},
		{"l_discount", coldata.KindNumeric, 2},
		{"l_tax", coldata.KindNumeric, 2},
		{"l_returnflag", coldata.KindChar, 0},
		{"l_linestatus", coldata.KindChar, 0},
		{"l_shipdate", coldata.KindDate, 0},
		{"l_commitdate", coldata.KindDate, 0},
		{"l_receiptdate", coldata.KindDate, 0},
		{"l_shipinstruct", coldata.KindChar, 0},
		{"l_shipmode", coldata.KindChar, 0},
		{"l_comment", coldata.KindVarchar, 0},
	},
}

var ordersSpec = tableSpec{
	name: "orders",
	file: "orders.tbl",
	columns: []columnSpec{
		{"o_orderkey", coldata.KindInteger, 0},
		{"o_custkey", coldata.KindInteger, 0},
		{"o_orderstatus", coldata.KindChar, 0},
		{"o_totalprice", coldata.KindNumeric, 2},
		{"o_orderdate", coldata.KindDate, 0},
		{"o_orderpriority", coldata.KindChar, 0},
		{"o_clerk", coldata.KindChar, 0},
		{"o_shippriority", coldata.KindInteger, 0},
		{"o_comment", coldata.KindVarchar, 0},
	},
}

var customerSpec = tableSpec{
	name: "customer",
	file: "customer.tbl",
	columns: []columnSpec{
		{"c_custkey", coldata.KindInteger, 0},
		{"c_name", coldata.KindVarchar, 0},
		{"c_address", coldata.KindVarchar, 0},
		{"c_nationkey", coldata.KindInteger, 0},
		{"c_phone", coldata.KindChar, 0},
		{"c_acctbal", coldata.KindNumeric, 2},
		{"c_mktsegment", coldata.KindChar, 0},
		{"c_comment", coldata.KindVarchar, 0},
	},
}

var supplierSpec = tableSpec{
	name: "supplier",
	file: "supplier.tbl",
	columns: []columnSpec{
		{"s_suppkey", coldata.KindInteger, 0},
		{"s_name", coldata.KindChar, 0},
		{"s_address", coldata.KindVarchar, 0},
		{"s_nationkey", coldata.KindInteger, 0},
		{"s_phone", coldata.KindChar, 0},
		{"s_acctbal", coldata.KindNumeric, 2},
		{"s_comment", coldata.KindVarchar, 0},
	},
}

var nationSpec = tableSpec{
	name: "nation",
	file: "nation.tbl",
	columns: []columnSpec{
		{"n_nationkey", coldata.KindInteger, 0},
		{"n_name", coldata.KindChar, 0},
		{"n_regionkey", coldata.KindInteger, 0},
		{"n_comment", coldata.KindVarchar, 0},
	},
}

var regionSpec = tableSpec{
	name: "region",
	file: "region.tbl",
	columns: []columnSpec{
		{"r_regionkey", coldata.KindInteger, 0},
		{"r_name", coldata.KindChar, 0},
		{"r_comment", coldata.KindVarchar, 0},
	},
}

var partSpec = tableSpec{
	name: "part",
	file: "part.tbl",
	columns: []columnSpec{
		{"p_partkey", coldata.KindInteger, 0},
		{"p_name", coldata.KindVarchar, 0},
		{"p_mfgr", coldata.KindChar, 0},
		{"p_brand", coldata.KindChar, 0},
		{"p_type", coldata.KindVarchar, 0},
		{"p_size", coldata.KindInteger, 0},
		{"p_container", coldata.KindChar, 0},
		{"p_retailprice", coldata.KindNumeric, 2},
		{"p_comment", coldata.KindVarchar, 0},
	},
}

var partsuppSpec = tableSpec{
	name: "partsupp",
	file: "partsupp.tbl",
	columns: []columnSpec{
		{"ps_partkey", coldata.KindInteger, 0},
		{"ps_suppkey", coldata.KindInteger, 0},
		{"ps_availqty", coldata.KindInteger, 0},
		{"ps_supplycost", coldata.KindNumeric, 2},
		{"ps_comment", coldata.KindVarchar, 0},
	},
}

// allSpecs lists every table LoadDatabase attempts, in dependency-free
// order (no spec needs another already loaded).
var allSpecs = []tableSpec{
	lineitemSpec, ordersSpec, customerSpec, supplierSpec,
	nationSpec, regionSpec, partSpec, partsuppSpec,
}
