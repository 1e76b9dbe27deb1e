package coldata

import "github.com/pkg/errors"

// Relation is an ordered collection of named Columns sharing one tuple
// count N. Column insertion order is preserved for display only; it has
// no semantic meaning to the engine.
type Relation struct {
	Name    string
	columns []*Column
	index   map[string]int
	n       int
}

// NewRelation builds a Relation from columns that must all share the
// same length; that length becomes N.
func NewRelation(name string, columns ...*Column) (*Relation, error) {
	r := &Relation{Name: name, index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if err := r.addColumn(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Relation) addColumn(c *Column) error {
	if len(r.columns) > 0 && c.Len() != r.n {
		return errors.Errorf(
			"coldata: column %q has %d rows, relation %q has %d", c.Name, c.Len(), r.Name, r.n)
	}
	if len(r.columns) == 0 {
		r.n = c.Len()
	}
	if _, dup := r.index[c.Name]; dup {
		return errors.Errorf("coldata: duplicate column %q in relation %q", c.Name, r.Name)
	}
	r.index[c.Name] = len(r.columns)
	r.columns = append(r.columns, c)
	return nil
}

// NumRows reports N, this relation's shared tuple count.
func (r *Relation) NumRows() int { return r.n }

// Column looks up a column by name.
func (r *Relation) Column(name string) (*Column, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.columns[i], true
}

// MustColumn looks up a column by name, panicking with a SchemaError-
// flavored message on miss — used at query-build time, where a missing
// column is an assertion failure, not a runtime-recoverable condition.
func (r *Relation) MustColumn(name string) *Column {
	c, ok := r.Column(name)
	if !ok {
		panic(errors.Errorf("coldata: schema error: relation %q has no column %q", r.Name, name))
	}
	return c
}

// Columns returns the relation's columns in insertion order.
func (r *Relation) Columns() []*Column { return r.columns }

// Reset discards every column's contents and reserves capacity n for
// each, then sets N to 0; used to prepare a result relation for
// FixedAggregation's push_back emission.
func (r *Relation) Reset(n int) {
	for _, c := range r.columns {
		c.Reset(n)
	}
	r.n = 0
}

// bumpN is called by push-back helpers once a row has been appended to
// every column, to keep N consistent with the columns' new lengths.
func (r *Relation) bumpN() {
	if len(r.columns) > 0 {
		r.n = r.columns[0].Len()
	}
}

// PushBackInt64Row appends one row across int64 columns in column order,
// for a result relation whose every column is Numeric (FixedAggregation's
// typical shape for TPC-H Q6).
func (r *Relation) PushBackInt64Row(vals ...int64) error {
	if len(vals) != len(r.columns) {
		return errors.Errorf("coldata: expected %d values, got %d", len(r.columns), len(vals))
	}
	for i, v := range vals {
		r.columns[i].AppendInt64(v)
	}
	r.bumpN()
	return nil
}
