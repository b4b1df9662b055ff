package dump

import (
	"testing"

	"sql-diff/internal/schema"
)

func TestParseColumnFullRoundTrip(t *testing.T) {
	col := parseColumn("`id` int(11) NOT NULL AUTO_INCREMENT")
	if col == nil {
		t.Fatal("expected a column")
	}
	if col.Name != "id" {
		t.Errorf("Name = %q, want %q", col.Name, "id")
	}
	if col.DataType != "int(11)" {
		t.Errorf("DataType = %q, want %q", col.DataType, "int(11)")
	}
	if col.Nullable {
		t.Error("Nullable = true, want false")
	}
	if col.Default != nil {
		t.Errorf("Default = %q, want nil", *col.Default)
	}
	if col.Extra != "AUTO_INCREMENT" {
		t.Errorf("Extra = %q, want AUTO_INCREMENT", col.Extra)
	}
}

func TestParseColumnEnumKeepsPayload(t *testing.T) {
	col := parseColumn("`status` enum('a','b','c') NOT NULL DEFAULT 'a'")
	if col == nil {
		t.Fatal("expected a column")
	}
	if col.DataType != "enum('a','b','c')" {
		t.Errorf("DataType = %q, want enum('a','b','c')", col.DataType)
	}
	if col.Default == nil || *col.Default != "'a'" {
		t.Errorf("Default = %v, want 'a'", col.Default)
	}
}

func TestParseColumnSetKeepsPayload(t *testing.T) {
	col := parseColumn("`flags` set('x','y') DEFAULT NULL")
	if col == nil {
		t.Fatal("expected a column")
	}
	if col.DataType != "set('x','y')" {
		t.Errorf("DataType = %q, want set('x','y')", col.DataType)
	}
	if !col.Nullable {
		t.Error("Nullable = false, want true")
	}
	if col.Default == nil || *col.Default != "NULL" {
		t.Errorf("Default = %v, want NULL", col.Default)
	}
}

func TestParseColumnBareType(t *testing.T) {
	col := parseColumn("`note` text")
	if col == nil {
		t.Fatal("expected a column")
	}
	if col.DataType != "text" {
		t.Errorf("DataType = %q, want text", col.DataType)
	}
	if !col.Nullable || col.Default != nil || col.Extra != "" {
		t.Errorf("unexpected attributes: %+v", col)
	}
}

func TestParseColumnNoIdent(t *testing.T) {
	if col := parseColumn("not a column at all"); col != nil {
		t.Errorf("expected nil, got %+v", col)
	}
}

func TestParsePrimaryKey(t *testing.T) {
	c := parsePrimaryKey("PRIMARY KEY (`id`,`tenant_id`)")
	if c == nil {
		t.Fatal("expected a constraint")
	}
	if c.Name != "PRIMARY" {
		t.Errorf("Name = %q, want PRIMARY", c.Name)
	}
	if c.Kind != schema.PrimaryKey {
		t.Errorf("Kind = %q, want %q", c.Kind, schema.PrimaryKey)
	}
	if len(c.Columns) != 2 || c.Columns[0] != "id" || c.Columns[1] != "tenant_id" {
		t.Errorf("Columns = %v", c.Columns)
	}
}

func TestParseUniqueKey(t *testing.T) {
	c := parseUniqueKey("UNIQUE KEY `uq_email` (`email`)")
	if c == nil {
		t.Fatal("expected a constraint")
	}
	if c.Name != "uq_email" || c.Kind != schema.Unique {
		t.Errorf("got %+v", c)
	}
	if len(c.Columns) != 1 || c.Columns[0] != "email" {
		t.Errorf("Columns = %v", c.Columns)
	}
}

func TestParseIndex(t *testing.T) {
	c := parseIndex("KEY `idx_name_age` (`name`,`age`)")
	if c == nil {
		t.Fatal("expected a constraint")
	}
	if c.Name != "idx_name_age" || c.Kind != schema.Index {
		t.Errorf("got %+v", c)
	}
	if len(c.Columns) != 2 {
		t.Errorf("Columns = %v", c.Columns)
	}
}

func TestParseForeignKey(t *testing.T) {
	c := parseForeignKey("CONSTRAINT `fk_user` FOREIGN KEY (`user_id`) REFERENCES `users` (`id`)")
	if c == nil {
		t.Fatal("expected a constraint")
	}
	if c.Name != "fk_user" || c.Kind != schema.ForeignKey {
		t.Errorf("got %+v", c)
	}
	if len(c.Columns) != 1 || c.Columns[0] != "user_id" {
		t.Errorf("Columns = %v", c.Columns)
	}
	if c.ReferencedTable != "users" {
		t.Errorf("ReferencedTable = %q", c.ReferencedTable)
	}
	if len(c.ReferencedColumns) != 1 || c.ReferencedColumns[0] != "id" {
		t.Errorf("ReferencedColumns = %v", c.ReferencedColumns)
	}
}

func TestParseForeignKeyMalformed(t *testing.T) {
	cases := []string{
		"CONSTRAINT `fk` FOREIGN KEY (`a`)",                  // no REFERENCES
		"CONSTRAINT `fk` CHECK (`a` > 0)",                    // not a foreign key
		"CONSTRAINT FOREIGN KEY (`a`) REFERENCES `t` (`b`)",  // no name
		"CONSTRAINT `fk` FOREIGN KEY () REFERENCES `t` (`b`)", // empty column list
	}
	for _, clause := range cases {
		if c := parseForeignKey(clause); c != nil {
			t.Errorf("parseForeignKey(%q) = %+v, want nil", clause, c)
		}
	}
}

func TestParseClauseDropsUnknownShapes(t *testing.T) {
	tbl := schema.NewTable("t")
	parseClause("FULLTEXT KEY `ft_body` (`body`)", tbl)
	parseClause("FOREIGN KEY (`a`) REFERENCES `t2` (`b`)", tbl)
	parseClause("CHECK (`a` > 0)", tbl)

	if len(tbl.Columns) != 0 || len(tbl.Constraints) != 0 {
		t.Errorf("unknown clauses should be dropped, got %d columns, %d constraints",
			len(tbl.Columns), len(tbl.Constraints))
	}
}

func TestParseClauseRouting(t *testing.T) {
	tbl := schema.NewTable("t")
	parseClause("`id` int(11) NOT NULL", tbl)
	parseClause("PRIMARY KEY (`id`)", tbl)
	parseClause("KEY `idx_id` (`id`)", tbl)

	if len(tbl.Columns) != 1 {
		t.Fatalf("Columns = %d, want 1", len(tbl.Columns))
	}
	if len(tbl.Constraints) != 2 {
		t.Fatalf("Constraints = %d, want 2", len(tbl.Constraints))
	}
	if tbl.Constraints[0].Kind != schema.PrimaryKey || tbl.Constraints[1].Kind != schema.Index {
		t.Errorf("constraint kinds = %q, %q", tbl.Constraints[0].Kind, tbl.Constraints[1].Kind)
	}
}
