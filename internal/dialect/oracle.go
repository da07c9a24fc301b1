package dialect

import (
	"strings"

	_ "github.com/sijms/go-ora/v2" // Oracle Driver
)

type OracleDialect struct{}

func (d *OracleDialect) GetTablesQuery(schema string) string {
	// Oracle doesn't have a "schema" string concept in quite the same way for current user tables.
	// USER_TABLES lists tables owned by the current user.
	// We include a dummy clause to consume the schema argument if passed by standard callers.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL`
}

func (d *OracleDialect) GetColumnsQuery(schema string) string {
	// Retrieves column information for the current user's tables.
	// We join with USER_CONS_COLUMNS to identify Primary Keys (P) and Unique (U) constraints.
	// We also fetch comments from USER_COL_COMMENTS.
	return `
SELECT
    t.TABLE_NAME,
    t.COLUMN_NAME,
    CASE
        WHEN t.DATA_TYPE = 'NUMBER' AND COALESCE(t.DATA_SCALE, 0) > 0 THEN 'DECIMAL'
        WHEN t.DATA_TYPE = 'NUMBER' THEN 'INTEGER'
        ELSE t.DATA_TYPE
    END,
    t.DATA_TYPE || CASE WHEN t.DATA_LENGTH IS NOT NULL THEN '(' || t.DATA_LENGTH || ')' ELSE '' END,
    COALESCE(t.DATA_PRECISION, t.DATA_LENGTH),
    t.NULLABLE,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 'PRI' ELSE '' END,
    CASE WHEN t.IDENTITY_COLUMN = 'YES' THEN 'auto_increment' ELSE '' END,
    CASE WHEN u.CONSTRAINT_NAME IS NOT NULL THEN 'UNIQUE' ELSE '' END,
    c.COMMENTS
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'U'
) u ON t.TABLE_NAME = u.TABLE_NAME AND t.COLUMN_NAME = u.COLUMN_NAME
LEFT JOIN USER_COL_COMMENTS c ON t.TABLE_NAME = c.TABLE_NAME AND t.COLUMN_NAME = c.COLUMN_NAME
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) GetTableColumnsQuery(schema string) string {
	return narrowColumnsQuery(d.GetColumnsQuery(schema), `UPPER(t.TABLE_NAME) = UPPER(:2)`)
}

func (d *OracleDialect) NormalizeType(sqlType string) string {
	s := DefaultNormalizeType(sqlType)
	switch {
	case s == "clob" || s == "nclob" || s == "long":
		return "text"
	case s == "blob" || s == "raw":
		return "blob"
	case strings.Contains(s, "char"):
		return "varchar"
	case s == "integer" || s == "number":
		return "int"
	case strings.Contains(s, "float") || s == "binary_double":
		return "double"
	case s == "timestamp":
		return "timestamp"
	case s == "date":
		return "datetime"
	default: // DECIMAL is produced by the columns query itself
		return s
	}
}

// GetSchemaName never returns "": Oracle reads '' as NULL, which would
// empty the ":1 IS NOT NULL" guard in both queries.
func (d *OracleDialect) GetSchemaName(input string) string {
	if input == "" {
		return "USER"
	}
	return input
}
