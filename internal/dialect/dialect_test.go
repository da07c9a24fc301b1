package dialect_test

import (
	"strings"
	"testing"

	"db-scaffold/internal/dialect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDialect(t *testing.T) {
	assert.IsType(t, &dialect.PostgresDialect{}, dialect.GetDialect("postgres"))
	assert.IsType(t, &dialect.MSSQLDialect{}, dialect.GetDialect("sqlserver"))
	assert.IsType(t, &dialect.MSSQLDialect{}, dialect.GetDialect("mssql"))
	assert.IsType(t, &dialect.OracleDialect{}, dialect.GetDialect("oracle"))
	assert.IsType(t, &dialect.MysqlDialect{}, dialect.GetDialect("mysql"))
	assert.IsType(t, &dialect.MysqlDialect{}, dialect.GetDialect(""))
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		driver, in, want string
	}{
		{"mysql", "VARCHAR", "varchar"},
		{"mysql", "int unsigned", "int"},
		{"mysql", "boolean", "tinyint"},
		{"mysql", "enum", "enum"},
		{"postgres", "character varying", "varchar"},
		{"postgres", "integer", "int"},
		{"postgres", "timestamp without time zone", "timestamp"},
		{"postgres", "time with time zone", "time"},
		{"postgres", "double precision", "double"},
		{"postgres", "numeric", "decimal"},
		{"postgres", "jsonb", "text"},
		{"postgres", "date", "date"},
		{"mssql", "nvarchar", "varchar"},
		{"mssql", "datetime2", "datetime"},
		{"mssql", "bit", "tinyint"},
		{"mssql", "ntext", "text"},
		{"oracle", "VARCHAR2", "varchar"},
		{"oracle", "CLOB", "text"},
		{"oracle", "INTEGER", "int"},
		{"oracle", "DECIMAL", "decimal"},
		{"oracle", "TIMESTAMP(6)", "timestamp"},
		{"oracle", "DATE", "datetime"},
	}
	for _, tt := range tests {
		d := dialect.GetDialect(tt.driver)
		assert.Equal(t, tt.want, d.NormalizeType(tt.in), "%s %s", tt.driver, tt.in)
	}
}

func TestGetSchemaName(t *testing.T) {
	assert.Equal(t, "public", dialect.GetDialect("postgres").GetSchemaName(""))
	assert.Equal(t, "dbo", dialect.GetDialect("mssql").GetSchemaName(""))
	assert.Equal(t, "USER", dialect.GetDialect("oracle").GetSchemaName(""))
	assert.Equal(t, "app", dialect.GetDialect("mysql").GetSchemaName("app"))
}

func TestDefaultSchema(t *testing.T) {
	assert.Equal(t, "dbo", dialect.DefaultSchema("sqlserver"))
	assert.Equal(t, "public", dialect.DefaultSchema("postgres"))
	assert.Equal(t, "", dialect.DefaultSchema("mysql"))
}

func TestGetTableColumnsQuery(t *testing.T) {
	tests := []struct{ driver, cond string }{
		{"mysql", "AND UPPER(TABLE_NAME) = UPPER(?)"},
		{"postgres", "AND UPPER(c.table_name) = UPPER($2)"},
		{"sqlserver", "AND UPPER(c.TABLE_NAME) = UPPER(@p2)"},
		{"oracle", "AND UPPER(t.TABLE_NAME) = UPPER(:2)"},
	}
	for _, tt := range tests {
		d := dialect.GetDialect(tt.driver)
		full := d.GetColumnsQuery("app")
		q := d.GetTableColumnsQuery("app")
		o := strings.LastIndex(full, "ORDER BY")
		require.Greater(t, o, 0, tt.driver)

		assert.True(t, strings.HasPrefix(q, full[:o]), tt.driver)
		assert.True(t, strings.HasSuffix(q, tt.cond+"\n"+full[o:]), tt.driver)
	}
}
