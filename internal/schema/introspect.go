package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"sql-diff/internal/dialect"
)

// Load introspects a live database into the same structural model the dump
// parser produces, so either side of a diff can be a running server.
// schemaName may be empty when the dialect can supply a default.
func Load(db *sql.DB, d dialect.Dialect, schemaName string) (*Schema, error) {
	if schemaName == "" {
		schemaName = d.DefaultSchema()
	}

	s := NewSchema()

	// --- Tables ---
	rows, err := db.Query(d.TablesQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var charset, collation sql.NullString
		if err := rows.Scan(&name, &charset, &collation); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		t := NewTable(name)
		t.Charset = charset.String
		t.Collation = collation.String
		s.AddTable(t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Columns ---
	colRows, err := db.Query(d.ColumnsQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, cType, isNull, cDefault, extra sql.NullString
		if err := colRows.Scan(&tName, &cName, &cType, &isNull, &cDefault, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}
		t, ok := s.Tables[tName.String]
		if !ok {
			continue
		}
		col := &Column{
			Name:     cName.String,
			DataType: cType.String,
			Nullable: strings.HasPrefix(strings.ToUpper(isNull.String), "Y"),
			Extra:    d.NormalizeExtra(extra.String),
		}
		if cDefault.Valid {
			v := cDefault.String
			col.Default = &v
		}
		t.AddColumn(col)
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Primary keys ---
	pkRows, err := db.Query(d.PrimaryKeysQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary keys: %w", err)
	}
	defer pkRows.Close()

	for pkRows.Next() {
		var tName, cols sql.NullString
		if err := pkRows.Scan(&tName, &cols); err != nil {
			return nil, fmt.Errorf("failed to scan primary key: %w", err)
		}
		if t, ok := s.Tables[tName.String]; ok && cols.Valid {
			t.AddConstraint(&Constraint{
				Name:    "PRIMARY",
				Kind:    PrimaryKey,
				Columns: splitJoined(cols.String),
			})
		}
	}
	if err := pkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating primary keys: %w", err)
	}

	// --- Unique keys ---
	uqRows, err := db.Query(d.UniqueKeysQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query unique keys: %w", err)
	}
	defer uqRows.Close()

	for uqRows.Next() {
		var tName, name, cols sql.NullString
		if err := uqRows.Scan(&tName, &name, &cols); err != nil {
			return nil, fmt.Errorf("failed to scan unique key: %w", err)
		}
		if t, ok := s.Tables[tName.String]; ok && cols.Valid {
			t.AddConstraint(&Constraint{
				Name:    name.String,
				Kind:    Unique,
				Columns: splitJoined(cols.String),
			})
		}
	}
	if err := uqRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unique keys: %w", err)
	}

	// --- Foreign keys ---
	fkRows, err := db.Query(d.ForeignKeysQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, name, cols, refTable, refCols sql.NullString
		if err := fkRows.Scan(&tName, &name, &cols, &refTable, &refCols); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		if t, ok := s.Tables[tName.String]; ok && cols.Valid && refTable.Valid {
			t.AddConstraint(&Constraint{
				Name:              name.String,
				Kind:              ForeignKey,
				Columns:           splitJoined(cols.String),
				ReferencedTable:   refTable.String,
				ReferencedColumns: splitJoined(refCols.String),
			})
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	// --- Plain indexes ---
	idxRows, err := db.Query(d.IndexesQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}
	defer idxRows.Close()

	for idxRows.Next() {
		var tName, name, cols sql.NullString
		if err := idxRows.Scan(&tName, &name, &cols); err != nil {
			return nil, fmt.Errorf("failed to scan index: %w", err)
		}
		if t, ok := s.Tables[tName.String]; ok && cols.Valid {
			t.AddConstraint(&Constraint{
				Name:    name.String,
				Kind:    Index,
				Columns: splitJoined(cols.String),
			})
		}
	}
	if err := idxRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating indexes: %w", err)
	}

	return s, nil
}

func splitJoined(joined string) []string {
	parts := strings.Split(joined, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}
