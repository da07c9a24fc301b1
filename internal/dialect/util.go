package dialect

import (
	"strings"
)

// DefaultNormalizeType lower-cases the type and strips any length or
// modifier suffix: "VARCHAR(255)" -> "varchar", "int unsigned" -> "int".
func DefaultNormalizeType(sqlType string) string {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.IndexAny(t, "( "); i > 0 {
		t = t[:i]
	}
	return t
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}

// narrowColumnsQuery adds cond to the outer WHERE clause of a columns query,
// just before its final ORDER BY.
func narrowColumnsQuery(query, cond string) string {
	i := strings.LastIndex(query, "ORDER BY")
	if i < 0 {
		return query + " AND " + cond
	}
	return query[:i] + "AND " + cond + "\n" + query[i:]
}
