package tpch

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ansrivas/vecbase/internal/coldata"
	"github.com/ansrivas/vecbase/internal/types"
)

// LoadDatabase reads every known TPC-H table's .tbl file out of dir
// (the standard dbgen output layout: one <table>.tbl per table,
// '|'-delimited fields, no quoting, a trailing '|' on every line) and
// returns a coldata.Database with all of them registered. A table whose
// .tbl file is absent from dir is silently skipped — callers needing
// only lineitem (Q6) don't have to stage the full eight-table set.
func LoadDatabase(dir string) (*coldata.Database, error) {
	db := coldata.NewDatabase()
	loaded := 0
	for _, spec := range allSpecs {
		path := filepath.Join(dir, spec.file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		rel, err := loadTable(path, spec)
		if err != nil {
			return nil, errors.Wrapf(err, "tpch: loading %s", spec.file)
		}
		db.AddTable(spec.name, rel)
		loaded++
	}
	if loaded == 0 {
		return nil, errors.Errorf("tpch: no .tbl files found under %s", dir)
	}
	return db, nil
}

func loadTable(path string, spec tableSpec) (*coldata.Relation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cols := make([]*coldata.Column, len(spec.columns))
	for i, c := range spec.columns {
		switch c.kind {
		case coldata.KindInteger:
			cols[i] = coldata.NewIntegerColumn(c.name, nil)
		case coldata.KindNumeric:
			cols[i] = coldata.NewNumericColumn(c.name, c.scale, nil)
		case coldata.KindDate:
			cols[i] = coldata.NewDateColumn(c.name, nil)
		case coldata.KindChar:
			cols[i] = coldata.NewCharColumn(c.name, 0, nil)
		case coldata.KindVarchar:
			cols[i] = coldata.NewVarcharColumn(c.name, 0, nil)
		}
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(strings.TrimSuffix(line, "|"), "|")
		if len(fields) != len(spec.columns) {
			return nil, errors.Errorf(
				"tpch: %s line %d: expected %d fields, got %d",
				spec.file, lineNo, len(spec.columns), len(fields))
		}
		for i, c := range spec.columns {
			if err := appendField(cols[i], c, fields[i]); err != nil {
				return nil, errors.Wrapf(err, "tpch: %s line %d field %s", spec.file, lineNo, c.name)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return coldata.NewRelation(spec.name, cols...)
}

func appendField(col *coldata.Column, spec columnSpec, raw string) error {
	switch spec.kind {
	case coldata.KindInteger:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return err
		}
		col.AppendInt32(int32(v))
	case coldata.KindNumeric:
		n, err := types.ParseNumeric(raw, spec.scale)
		if err != nil {
			return err
		}
		col.AppendInt64(n.Raw)
	case coldata.KindDate:
		d, err := types.ParseDate(raw)
		if err != nil {
			return err
		}
		col.AppendInt32(int32(d))
	case coldata.KindChar, coldata.KindVarchar:
		col.AppendBlob([]byte(raw))
	}
	return nil
}
