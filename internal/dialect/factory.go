package dialect

// GetDialect returns the Dialect for a database/sql driver name.
func GetDialect(driver string) Dialect {
	switch driver {
	case "postgres":
		return &PostgresDialect{}
	case "sqlserver", "mssql":
		return &MSSQLDialect{}
	case "oracle":
		return &OracleDialect{}
	default: // mysql
		return &MysqlDialect{}
	}
}

// DefaultSchema returns the schema to introspect when none is configured.
// MySQL has no default: the caller asks the connection with SELECT DATABASE().
func DefaultSchema(driver string) string {
	switch driver {
	case "sqlserver", "mssql":
		return "dbo"
	case "postgres":
		return "public"
	default:
		return ""
	}
}

var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
