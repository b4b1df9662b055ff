package dialect

// GetDialect maps a database/sql driver name onto its introspection
// dialect. Unknown names fall back to MySQL, the dump format's native
// vendor.
func GetDialect(driver string) Dialect {
	switch driver {
	case "postgres":
		return &PostgresDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	default:
		return &MysqlDialect{}
	}
}

var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
