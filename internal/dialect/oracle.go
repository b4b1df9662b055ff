package dialect

type OracleDialect struct{}

// The USER_* views already scope to the connected user, so the schema bind
// is consumed with a dummy predicate for interface uniformity. DefaultSchema
// returns a non-empty placeholder so the predicate holds.

func (d *OracleDialect) TablesQuery() string {
	return `SELECT TABLE_NAME, NULL, NULL FROM USER_TABLES WHERE :1 IS NOT NULL`
}

func (d *OracleDialect) ColumnsQuery() string {
	return `SELECT TABLE_NAME, COLUMN_NAME,
  DATA_TYPE || CASE WHEN DATA_TYPE LIKE '%CHAR%' THEN '(' || CHAR_LENGTH || ')' ELSE '' END,
  NULLABLE, DATA_DEFAULT,
  CASE WHEN IDENTITY_COLUMN = 'YES' THEN 'identity' ELSE '' END
FROM USER_TAB_COLUMNS
WHERE :1 IS NOT NULL
ORDER BY TABLE_NAME, COLUMN_ID`
}

func (d *OracleDialect) PrimaryKeysQuery() string {
	return `SELECT c.TABLE_NAME, LISTAGG(cc.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY cc.POSITION)
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
WHERE c.CONSTRAINT_TYPE = 'P' AND :1 IS NOT NULL
GROUP BY c.TABLE_NAME`
}

func (d *OracleDialect) UniqueKeysQuery() string {
	return `SELECT c.TABLE_NAME, c.CONSTRAINT_NAME, LISTAGG(cc.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY cc.POSITION)
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
WHERE c.CONSTRAINT_TYPE = 'U' AND :1 IS NOT NULL
GROUP BY c.TABLE_NAME, c.CONSTRAINT_NAME`
}

func (d *OracleDialect) ForeignKeysQuery() string {
	return `SELECT c.TABLE_NAME, c.CONSTRAINT_NAME,
  LISTAGG(cc.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY cc.POSITION),
  MIN(r.TABLE_NAME),
  LISTAGG(rc.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY rc.POSITION)
FROM USER_CONSTRAINTS c
JOIN USER_CONSTRAINTS r ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME
JOIN USER_CONS_COLUMNS cc ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
JOIN USER_CONS_COLUMNS rc ON r.CONSTRAINT_NAME = rc.CONSTRAINT_NAME AND rc.POSITION = cc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R' AND :1 IS NOT NULL
GROUP BY c.TABLE_NAME, c.CONSTRAINT_NAME`
}

func (d *OracleDialect) IndexesQuery() string {
	return `SELECT i.TABLE_NAME, i.INDEX_NAME, LISTAGG(ic.COLUMN_NAME, ',') WITHIN GROUP (ORDER BY ic.COLUMN_POSITION)
FROM USER_INDEXES i
JOIN USER_IND_COLUMNS ic ON i.INDEX_NAME = ic.INDEX_NAME
WHERE i.UNIQUENESS = 'NONUNIQUE' AND :1 IS NOT NULL
GROUP BY i.TABLE_NAME, i.INDEX_NAME`
}

func (d *OracleDialect) DefaultSchema() string {
	return "current_user"
}

func (d *OracleDialect) NormalizeExtra(extra string) string {
	return DefaultNormalizeExtra(extra)
}
