package coldata

import "github.com/pkg/errors"

// Database is a process-lifetime mapping from table name to Relation,
// populated at import and read-only thereafter.
type Database struct {
	tables map[string]*Relation
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{tables: make(map[string]*Relation)}
}

// AddTable registers rel under name. Import is the only phase allowed to
// call this; once a query begins executing, the Database is treated as
// immutable.
func (d *Database) AddTable(name string, rel *Relation) {
	d.tables[name] = rel
}

// Table looks up a relation by name.
func (d *Database) Table(name string) (*Relation, bool) {
	r, ok := d.tables[name]
	return r, ok
}

// MustTable looks up a relation by name, panicking with a SchemaError-
// flavored message on miss.
func (d *Database) MustTable(name string) *Relation {
	r, ok := d.Table(name)
	if !ok {
		panic(errors.Errorf("coldata: schema error: no table %q", name))
	}
	return r
}
