package dialect

type PostgresDialect struct{}

func (d *PostgresDialect) TablesQuery() string {
	// Postgres has no per-table charset/collation in the MySQL sense.
	return `SELECT table_name, NULL, NULL
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'`
}

func (d *PostgresDialect) ColumnsQuery() string {
	return `SELECT c.table_name, c.column_name,
  c.data_type || CASE WHEN c.character_maximum_length IS NOT NULL
    THEN '(' || c.character_maximum_length || ')' ELSE '' END,
  c.is_nullable, c.column_default,
  CASE WHEN c.is_identity = 'YES' OR c.column_default LIKE 'nextval(%'
    THEN 'identity' ELSE '' END
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) PrimaryKeysQuery() string {
	return `SELECT tc.table_name, string_agg(kcu.column_name, ',' ORDER BY kcu.ordinal_position)
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
WHERE tc.table_schema = $1 AND tc.constraint_type = 'PRIMARY KEY'
GROUP BY tc.table_name`
}

func (d *PostgresDialect) UniqueKeysQuery() string {
	return `SELECT tc.table_name, tc.constraint_name, string_agg(kcu.column_name, ',' ORDER BY kcu.ordinal_position)
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
WHERE tc.table_schema = $1 AND tc.constraint_type = 'UNIQUE'
GROUP BY tc.table_name, tc.constraint_name`
}

func (d *PostgresDialect) ForeignKeysQuery() string {
	return `SELECT tc.table_name, tc.constraint_name,
  string_agg(kcu.column_name, ',' ORDER BY kcu.ordinal_position),
  MIN(ccu.table_name),
  string_agg(ccu.column_name, ',' ORDER BY kcu.ordinal_position)
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage ccu
  ON tc.constraint_name = ccu.constraint_name AND tc.table_schema = ccu.table_schema
WHERE tc.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY'
GROUP BY tc.table_name, tc.constraint_name`
}

func (d *PostgresDialect) IndexesQuery() string {
	// Constraint-backed and unique indexes are excluded; they arrive via
	// the PK/unique queries.
	return `SELECT t.relname, i.relname,
  array_to_string(array_agg(a.attname ORDER BY array_position(ix.indkey, a.attnum)), ',')
FROM pg_class t
JOIN pg_namespace n ON n.oid = t.relnamespace
JOIN pg_index ix ON t.oid = ix.indrelid
JOIN pg_class i ON i.oid = ix.indexrelid
JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
LEFT JOIN pg_constraint c ON c.conindid = i.oid
WHERE n.nspname = $1 AND t.relkind = 'r' AND NOT ix.indisunique AND c.contype IS NULL
GROUP BY t.relname, i.relname`
}

func (d *PostgresDialect) DefaultSchema() string {
	return "public"
}

func (d *PostgresDialect) NormalizeExtra(extra string) string {
	return DefaultNormalizeExtra(extra)
}
