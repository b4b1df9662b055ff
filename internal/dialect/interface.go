package dialect

// Dialect abstracts vendor-specific schema metadata queries for live
// introspection. Every query binds exactly one parameter, the target schema
// name, with the vendor's placeholder already embedded in the text.
//
// Result column contracts (all joined column lists are comma-separated in
// ordinal position order):
//
//	TablesQuery:      table_name, charset, collation
//	ColumnsQuery:     table_name, column_name, column_type, is_nullable, column_default, extra
//	PrimaryKeysQuery: table_name, columns
//	UniqueKeysQuery:  table_name, constraint_name, columns
//	ForeignKeysQuery: table_name, constraint_name, columns, referenced_table, referenced_columns
//	IndexesQuery:     table_name, index_name, columns (non-unique indexes only)
type Dialect interface {
	TablesQuery() string
	ColumnsQuery() string
	PrimaryKeysQuery() string
	UniqueKeysQuery() string
	ForeignKeysQuery() string
	IndexesQuery() string

	// DefaultSchema is the schema to introspect when the caller gives none.
	// Empty means the dialect cannot guess and the caller must resolve it
	// (MySQL: the DSN's current database).
	DefaultSchema() string

	// NormalizeExtra maps the vendor's extra/identity marker onto the
	// model's "AUTO_INCREMENT" or empty.
	NormalizeExtra(extra string) string
}
