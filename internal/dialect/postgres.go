package dialect

import "strings"

type PostgresDialect struct{}

func (d *PostgresDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *PostgresDialect) GetColumnsQuery(schema string) string {
	// PRIMARY KEY and UNIQUE come from correlated subqueries; the comment is
	// read with col_description against the table's regclass.
	return `SELECT 
    c.table_name, 
    c.column_name, 
    c.data_type, 
    c.udt_name, 
    c.character_maximum_length, 
    c.is_nullable, 
    (SELECT 'PRI' FROM information_schema.table_constraints tc 
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name 
     WHERE tc.constraint_type = 'PRIMARY KEY' 
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS COLUMN_KEY,
    c.column_default, 
    (SELECT 'UNIQUE' FROM information_schema.table_constraints tc 
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name 
     WHERE tc.constraint_type = 'UNIQUE' 
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS IS_UNIQUE,
    col_description(format('%I.%I', c.table_schema, c.table_name)::regclass, c.ordinal_position) AS COMMENT
FROM information_schema.columns c
WHERE c.table_schema = $1 
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) GetTableColumnsQuery(schema string) string {
	return narrowColumnsQuery(d.GetColumnsQuery(schema), `UPPER(c.table_name) = UPPER($2)`)
}

func (d *PostgresDialect) NormalizeType(sqlType string) string {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	switch {
	case t == "character varying", t == "varchar", t == "citext", t == "uuid":
		return "varchar"
	case t == "character", t == "bpchar", t == "char":
		return "char"
	case t == "integer", t == "int4", t == "int", t == "serial":
		return "int"
	case t == "smallint", t == "int2", t == "smallserial":
		return "smallint"
	case t == "bigint", t == "int8", t == "bigserial":
		return "bigint"
	case t == "real", t == "float4":
		return "float"
	case t == "double precision", t == "float8":
		return "double"
	case t == "numeric", t == "money":
		return "decimal"
	case t == "boolean", t == "bool":
		return "tinyint"
	case t == "bytea":
		return "blob"
	case t == "json", t == "jsonb", t == "xml":
		return "text"
	case strings.HasPrefix(t, "timestamp"):
		return "timestamp"
	case strings.HasPrefix(t, "time"):
		return "time"
	default:
		return DefaultNormalizeType(t)
	}
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
