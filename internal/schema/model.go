package schema

import "strings"

// ConstraintKind identifies the flavor of a key or constraint clause.
type ConstraintKind string

const (
	PrimaryKey ConstraintKind = "PRIMARY KEY"
	Unique     ConstraintKind = "UNIQUE"
	ForeignKey ConstraintKind = "FOREIGN KEY"
	Index      ConstraintKind = "INDEX"
)

// Column is one column definition inside a table.
type Column struct {
	Name     string
	DataType string // as written in the dump, e.g. "int(11)" or "enum('a','b')"
	Nullable bool
	Default  *string // nil when the column declares no DEFAULT
	Extra    string  // "AUTO_INCREMENT" or empty
}

// Equal reports field-wise structural equality.
func (c *Column) Equal(other *Column) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.DataType == other.DataType &&
		c.Nullable == other.Nullable &&
		strPtrEqual(c.Default, other.Default) &&
		c.Extra == other.Extra
}

// Constraint is a key or constraint clause. ReferencedTable and
// ReferencedColumns are set only for ForeignKey.
type Constraint struct {
	Name              string // "PRIMARY" for primary keys
	Kind              ConstraintKind
	Columns           []string
	ReferencedTable   string
	ReferencedColumns []string
}

// IdentityKey correlates constraints across two schemas: kind plus the
// ordered column tuple, regardless of declared name. A renamed constraint
// over the same columns is therefore the same constraint.
func (c *Constraint) IdentityKey() string {
	return string(c.Kind) + "(" + strings.Join(c.Columns, ",") + ")"
}

// Equal reports field-wise structural equality, name included.
func (c *Constraint) Equal(other *Constraint) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.Kind == other.Kind &&
		strSliceEqual(c.Columns, other.Columns) &&
		c.ReferencedTable == other.ReferencedTable &&
		strSliceEqual(c.ReferencedColumns, other.ReferencedColumns)
}

// String renders the constraint with full detail for diff reports.
func (c *Constraint) String() string {
	s := string(c.Kind) + " " + c.Name + " (" + strings.Join(c.Columns, ", ") + ")"
	if c.Kind == ForeignKey {
		s += " REFERENCES " + c.ReferencedTable + " (" + strings.Join(c.ReferencedColumns, ", ") + ")"
	}
	return s
}

// Table holds the structural definition of one table. Columns is keyed by
// column name; ColumnOrder preserves definition order.
type Table struct {
	Name        string
	Columns     map[string]*Column
	ColumnOrder []string
	Constraints []*Constraint
	Charset     string
	Collation   string
}

func NewTable(name string) *Table {
	return &Table{
		Name:    name,
		Columns: make(map[string]*Column),
	}
}

// AddColumn registers a column. A duplicate name replaces the earlier
// definition without changing its position.
func (t *Table) AddColumn(col *Column) {
	if _, exists := t.Columns[col.Name]; !exists {
		t.ColumnOrder = append(t.ColumnOrder, col.Name)
	}
	t.Columns[col.Name] = col
}

func (t *Table) AddConstraint(c *Constraint) {
	t.Constraints = append(t.Constraints, c)
}

// ConstraintSet indexes the table's constraints by identity key.
// Duplicates collapse, last one kept.
func (t *Table) ConstraintSet() map[string]*Constraint {
	set := make(map[string]*Constraint, len(t.Constraints))
	for _, c := range t.Constraints {
		set[c.IdentityKey()] = c
	}
	return set
}

// Equal reports structural equality. Constraints compare as a set by
// identity key; column order does not participate.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if t.Name != other.Name || t.Charset != other.Charset || t.Collation != other.Collation {
		return false
	}
	if len(t.Columns) != len(other.Columns) {
		return false
	}
	for name, col := range t.Columns {
		if !col.Equal(other.Columns[name]) {
			return false
		}
	}
	a, b := t.ConstraintSet(), other.ConstraintSet()
	if len(a) != len(b) {
		return false
	}
	for key, c := range a {
		if !c.Equal(b[key]) {
			return false
		}
	}
	return true
}

// Schema maps table name to table definition for one dump or database.
type Schema struct {
	Tables map[string]*Table
}

func NewSchema() *Schema {
	return &Schema{Tables: make(map[string]*Table)}
}

// AddTable registers a table. A duplicate name overwrites the earlier
// entry, last seen wins.
func (s *Schema) AddTable(t *Table) {
	s.Tables[t.Name] = t
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
