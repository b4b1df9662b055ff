package schema_test

import (
	"testing"

	"sql-diff/internal/schema"
)

func strPtr(s string) *string { return &s }

func TestColumnEqual(t *testing.T) {
	base := &schema.Column{Name: "id", DataType: "int(11)", Nullable: false, Extra: "AUTO_INCREMENT"}

	if !base.Equal(&schema.Column{Name: "id", DataType: "int(11)", Nullable: false, Extra: "AUTO_INCREMENT"}) {
		t.Error("identical columns should be equal")
	}
	if base.Equal(nil) {
		t.Error("nil is never equal")
	}
	if base.Equal(&schema.Column{Name: "id", DataType: "bigint(20)", Nullable: false, Extra: "AUTO_INCREMENT"}) {
		t.Error("type change should break equality")
	}
	if base.Equal(&schema.Column{Name: "id", DataType: "int(11)", Nullable: true, Extra: "AUTO_INCREMENT"}) {
		t.Error("nullability change should break equality")
	}
}

func TestColumnEqualDefaults(t *testing.T) {
	noDefault := &schema.Column{Name: "c", DataType: "int(11)"}
	withDefault := &schema.Column{Name: "c", DataType: "int(11)", Default: strPtr("0")}
	sameDefault := &schema.Column{Name: "c", DataType: "int(11)", Default: strPtr("0")}
	otherDefault := &schema.Column{Name: "c", DataType: "int(11)", Default: strPtr("1")}

	if noDefault.Equal(withDefault) {
		t.Error("nil default vs set default should differ")
	}
	if !withDefault.Equal(sameDefault) {
		t.Error("equal default values should compare equal")
	}
	if withDefault.Equal(otherDefault) {
		t.Error("different default values should differ")
	}
}

func TestConstraintIdentityKeyIgnoresName(t *testing.T) {
	a := &schema.Constraint{Name: "fk_1", Kind: schema.ForeignKey, Columns: []string{"user_id"}}
	b := &schema.Constraint{Name: "fk_2", Kind: schema.ForeignKey, Columns: []string{"user_id"}}

	if a.IdentityKey() != b.IdentityKey() {
		t.Errorf("renamed constraint over same columns should share identity: %q vs %q",
			a.IdentityKey(), b.IdentityKey())
	}
}

func TestConstraintIdentityKeyColumnOrder(t *testing.T) {
	a := &schema.Constraint{Name: "k", Kind: schema.Index, Columns: []string{"a", "b"}}
	b := &schema.Constraint{Name: "k", Kind: schema.Index, Columns: []string{"b", "a"}}

	if a.IdentityKey() == b.IdentityKey() {
		t.Error("column order is part of constraint identity")
	}
}

func TestConstraintIdentityKeyKind(t *testing.T) {
	unique := &schema.Constraint{Name: "k", Kind: schema.Unique, Columns: []string{"a"}}
	index := &schema.Constraint{Name: "k", Kind: schema.Index, Columns: []string{"a"}}

	if unique.IdentityKey() == index.IdentityKey() {
		t.Error("kind is part of constraint identity")
	}
}

func TestConstraintString(t *testing.T) {
	pk := &schema.Constraint{Name: "PRIMARY", Kind: schema.PrimaryKey, Columns: []string{"id", "tenant_id"}}
	if got := pk.String(); got != "PRIMARY KEY PRIMARY (id, tenant_id)" {
		t.Errorf("String() = %q", got)
	}

	fk := &schema.Constraint{
		Name: "fk_u", Kind: schema.ForeignKey, Columns: []string{"user_id"},
		ReferencedTable: "users", ReferencedColumns: []string{"id"},
	}
	if got := fk.String(); got != "FOREIGN KEY fk_u (user_id) REFERENCES users (id)" {
		t.Errorf("String() = %q", got)
	}
}

func TestTableAddColumn(t *testing.T) {
	tbl := schema.NewTable("t")
	tbl.AddColumn(&schema.Column{Name: "a", DataType: "int(11)"})
	tbl.AddColumn(&schema.Column{Name: "b", DataType: "text"})
	tbl.AddColumn(&schema.Column{Name: "a", DataType: "bigint(20)"})

	if len(tbl.ColumnOrder) != 2 || tbl.ColumnOrder[0] != "a" || tbl.ColumnOrder[1] != "b" {
		t.Errorf("ColumnOrder = %v, want [a b]", tbl.ColumnOrder)
	}
	if tbl.Columns["a"].DataType != "bigint(20)" {
		t.Errorf("duplicate column should be replaced, got %q", tbl.Columns["a"].DataType)
	}
}

func TestTableConstraintSet(t *testing.T) {
	tbl := schema.NewTable("t")
	tbl.AddConstraint(&schema.Constraint{Name: "fk_old", Kind: schema.ForeignKey, Columns: []string{"x"}})
	tbl.AddConstraint(&schema.Constraint{Name: "fk_new", Kind: schema.ForeignKey, Columns: []string{"x"}})
	tbl.AddConstraint(&schema.Constraint{Name: "idx", Kind: schema.Index, Columns: []string{"x"}})

	set := tbl.ConstraintSet()
	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2", len(set))
	}
	key := (&schema.Constraint{Kind: schema.ForeignKey, Columns: []string{"x"}}).IdentityKey()
	if set[key].Name != "fk_new" {
		t.Errorf("duplicate identity should keep the last constraint, got %q", set[key].Name)
	}
}

func TestTableEqual(t *testing.T) {
	build := func() *schema.Table {
		tbl := schema.NewTable("t")
		tbl.Charset = "utf8mb4"
		tbl.AddColumn(&schema.Column{Name: "id", DataType: "int(11)"})
		tbl.AddConstraint(&schema.Constraint{Name: "PRIMARY", Kind: schema.PrimaryKey, Columns: []string{"id"}})
		return tbl
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identical tables should be equal")
	}

	b.Charset = "latin1"
	if a.Equal(b) {
		t.Error("charset change should break equality")
	}

	c := build()
	c.AddColumn(&schema.Column{Name: "extra", DataType: "text"})
	if a.Equal(c) {
		t.Error("extra column should break equality")
	}
}

func TestTableEqualColumnOrderIgnored(t *testing.T) {
	a := schema.NewTable("t")
	a.AddColumn(&schema.Column{Name: "x", DataType: "int(11)"})
	a.AddColumn(&schema.Column{Name: "y", DataType: "int(11)"})

	b := schema.NewTable("t")
	b.AddColumn(&schema.Column{Name: "y", DataType: "int(11)"})
	b.AddColumn(&schema.Column{Name: "x", DataType: "int(11)"})

	if !a.Equal(b) {
		t.Error("column definition order should not participate in equality")
	}
}

func TestSchemaAddTableLastWins(t *testing.T) {
	s := schema.NewSchema()

	first := schema.NewTable("t")
	first.AddColumn(&schema.Column{Name: "old", DataType: "int(11)"})
	second := schema.NewTable("t")
	second.AddColumn(&schema.Column{Name: "new", DataType: "int(11)"})

	s.AddTable(first)
	s.AddTable(second)

	if len(s.Tables) != 1 {
		t.Fatalf("Tables = %d, want 1", len(s.Tables))
	}
	if s.Tables["t"].Columns["new"] == nil {
		t.Error("later table definition should win")
	}
}
