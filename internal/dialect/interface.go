package dialect

// Dialect abstracts database-specific catalog access.
type Dialect interface {
	// Metadata Queries (Schema Introspection). Each takes the schema as its only bind argument.
	GetTablesQuery(schema string) string
	GetColumnsQuery(schema string) string
	// GetTableColumnsQuery is GetColumnsQuery narrowed to one table, bound
	// as the second argument and matched case-insensitively.
	GetTableColumnsQuery(schema string) string

	// NormalizeType maps a catalog type name onto the MySQL-style tokens the
	// category tables are written in (varchar, int, text, datetime, ...).
	NormalizeType(sqlType string) string
	GetSchemaName(input string) string
}
