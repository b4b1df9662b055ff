package dialect

type MSSQLDialect struct{}

func (d *MSSQLDialect) TablesQuery() string {
	return `SELECT t.name, NULL, NULL
FROM sys.tables t
JOIN sys.schemas s ON t.schema_id = s.schema_id
WHERE s.name = @p1`
}

func (d *MSSQLDialect) ColumnsQuery() string {
	return `SELECT c.TABLE_NAME, c.COLUMN_NAME,
  c.DATA_TYPE + CASE WHEN c.CHARACTER_MAXIMUM_LENGTH IS NOT NULL AND c.CHARACTER_MAXIMUM_LENGTH > 0
    THEN '(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS varchar(10)) + ')' ELSE '' END,
  c.IS_NULLABLE, c.COLUMN_DEFAULT,
  CASE WHEN COLUMNPROPERTY(OBJECT_ID(c.TABLE_SCHEMA + '.' + c.TABLE_NAME), c.COLUMN_NAME, 'IsIdentity') = 1
    THEN 'identity' ELSE '' END
FROM INFORMATION_SCHEMA.COLUMNS c
WHERE c.TABLE_SCHEMA = @p1
ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION`
}

func (d *MSSQLDialect) PrimaryKeysQuery() string {
	return `SELECT kcu.TABLE_NAME, STRING_AGG(kcu.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY kcu.ORDINAL_POSITION)
FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
JOIN INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
  ON kcu.CONSTRAINT_NAME = tc.CONSTRAINT_NAME AND kcu.TABLE_SCHEMA = tc.TABLE_SCHEMA
WHERE kcu.TABLE_SCHEMA = @p1 AND tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
GROUP BY kcu.TABLE_NAME`
}

func (d *MSSQLDialect) UniqueKeysQuery() string {
	return `SELECT kcu.TABLE_NAME, kcu.CONSTRAINT_NAME, STRING_AGG(kcu.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY kcu.ORDINAL_POSITION)
FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
JOIN INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
  ON kcu.CONSTRAINT_NAME = tc.CONSTRAINT_NAME AND kcu.TABLE_SCHEMA = tc.TABLE_SCHEMA
WHERE kcu.TABLE_SCHEMA = @p1 AND tc.CONSTRAINT_TYPE = 'UNIQUE'
GROUP BY kcu.TABLE_NAME, kcu.CONSTRAINT_NAME`
}

func (d *MSSQLDialect) ForeignKeysQuery() string {
	return `SELECT OBJECT_NAME(f.parent_object_id), f.name,
  STRING_AGG(COL_NAME(fc.parent_object_id, fc.parent_column_id), ',') WITHIN GROUP (ORDER BY fc.constraint_column_id),
  OBJECT_NAME(f.referenced_object_id),
  STRING_AGG(COL_NAME(fc.referenced_object_id, fc.referenced_column_id), ',') WITHIN GROUP (ORDER BY fc.constraint_column_id)
FROM sys.foreign_keys f
JOIN sys.foreign_key_columns fc ON f.object_id = fc.constraint_object_id
WHERE SCHEMA_NAME(f.schema_id) = @p1
GROUP BY f.parent_object_id, f.name, f.referenced_object_id`
}

func (d *MSSQLDialect) IndexesQuery() string {
	return `SELECT OBJECT_NAME(i.object_id), i.name,
  STRING_AGG(COL_NAME(ic.object_id, ic.column_id), ',') WITHIN GROUP (ORDER BY ic.key_ordinal)
FROM sys.indexes i
JOIN sys.index_columns ic ON i.object_id = ic.object_id AND i.index_id = ic.index_id
JOIN sys.objects o ON o.object_id = i.object_id
WHERE SCHEMA_NAME(o.schema_id) = @p1 AND o.type = 'U'
  AND i.name IS NOT NULL AND i.is_primary_key = 0 AND i.is_unique = 0 AND i.is_unique_constraint = 0
GROUP BY i.object_id, i.name`
}

func (d *MSSQLDialect) DefaultSchema() string {
	return "dbo"
}

func (d *MSSQLDialect) NormalizeExtra(extra string) string {
	return DefaultNormalizeExtra(extra)
}
