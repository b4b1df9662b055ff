package dialect

type MysqlDialect struct{}

func (d *MysqlDialect) TablesQuery() string {
	// COLUMN_TYPE is used instead of DATA_TYPE everywhere in this dialect:
	// it carries the full spelling ("int(11)", "enum('a','b')") that dump
	// files use, so live and dump schemas compare cleanly.
	return `SELECT T.TABLE_NAME, CCSA.CHARACTER_SET_NAME, T.TABLE_COLLATION
FROM information_schema.TABLES T
LEFT JOIN information_schema.COLLATION_CHARACTER_SET_APPLICABILITY CCSA
  ON T.TABLE_COLLATION = CCSA.COLLATION_NAME
WHERE T.TABLE_SCHEMA = ? AND T.TABLE_TYPE = 'BASE TABLE'`
}

func (d *MysqlDialect) ColumnsQuery() string {
	return `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_DEFAULT, EXTRA
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = ?
ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MysqlDialect) PrimaryKeysQuery() string {
	return `SELECT TABLE_NAME, GROUP_CONCAT(COLUMN_NAME ORDER BY ORDINAL_POSITION)
FROM information_schema.KEY_COLUMN_USAGE
WHERE TABLE_SCHEMA = ? AND CONSTRAINT_NAME = 'PRIMARY'
GROUP BY TABLE_NAME`
}

func (d *MysqlDialect) UniqueKeysQuery() string {
	return `SELECT kcu.TABLE_NAME, kcu.CONSTRAINT_NAME, GROUP_CONCAT(kcu.COLUMN_NAME ORDER BY kcu.ORDINAL_POSITION)
FROM information_schema.KEY_COLUMN_USAGE kcu
JOIN information_schema.TABLE_CONSTRAINTS tc
  ON kcu.CONSTRAINT_NAME = tc.CONSTRAINT_NAME
  AND kcu.TABLE_SCHEMA = tc.TABLE_SCHEMA
  AND kcu.TABLE_NAME = tc.TABLE_NAME
WHERE kcu.TABLE_SCHEMA = ? AND tc.CONSTRAINT_TYPE = 'UNIQUE'
GROUP BY kcu.TABLE_NAME, kcu.CONSTRAINT_NAME`
}

func (d *MysqlDialect) ForeignKeysQuery() string {
	return `SELECT TABLE_NAME, CONSTRAINT_NAME,
  GROUP_CONCAT(COLUMN_NAME ORDER BY ORDINAL_POSITION),
  REFERENCED_TABLE_NAME,
  GROUP_CONCAT(REFERENCED_COLUMN_NAME ORDER BY ORDINAL_POSITION)
FROM information_schema.KEY_COLUMN_USAGE
WHERE TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME IS NOT NULL
GROUP BY TABLE_NAME, CONSTRAINT_NAME, REFERENCED_TABLE_NAME`
}

func (d *MysqlDialect) IndexesQuery() string {
	// Unique indexes surface through UniqueKeysQuery; only plain KEY
	// entries belong here, matching what a dump's table body lists.
	return `SELECT TABLE_NAME, INDEX_NAME, GROUP_CONCAT(COLUMN_NAME ORDER BY SEQ_IN_INDEX)
FROM information_schema.STATISTICS
WHERE TABLE_SCHEMA = ? AND INDEX_NAME != 'PRIMARY' AND NON_UNIQUE = 1
GROUP BY TABLE_NAME, INDEX_NAME`
}

func (d *MysqlDialect) DefaultSchema() string {
	// The current database comes from the DSN; the caller resolves it
	// with SELECT DATABASE().
	return ""
}

func (d *MysqlDialect) NormalizeExtra(extra string) string {
	return DefaultNormalizeExtra(extra)
}
