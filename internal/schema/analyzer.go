package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"db-scaffold/internal/dialect"
)

// Source reads table metadata from a live database.
type Source struct {
	db      *sql.DB
	dialect dialect.Dialect
	schema  string
}

func NewSource(db *sql.DB, d dialect.Dialect, schemaName string) *Source {
	return &Source{db: db, dialect: d, schema: d.GetSchemaName(schemaName)}
}

// Tables lists the base tables of the schema.
func (s *Source) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.GetTablesQuery(s.schema), s.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return names, nil
}

// Columns returns the columns of one table in ordinal order. Table names are
// matched case-insensitively (Oracle reports upper-case names). An unknown
// table yields no columns and no error.
func (s *Source) Columns(ctx context.Context, table string) ([]Column, error) {
	var cols []Column
	err := s.readColumns(ctx, s.dialect.GetTableColumnsQuery(s.schema), []any{s.schema, table},
		func(tableName string, col *Column) {
			if strings.EqualFold(tableName, table) {
				cols = append(cols, *col)
			}
		})
	if err != nil {
		return nil, err
	}
	return cols, nil
}

// Analyze reads every table of the schema with its columns.
func (s *Source) Analyze(ctx context.Context) ([]*Table, error) {
	names, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}

	// normalized keys for case-insensitive matching (Oracle support)
	tableMap := make(map[string]*Table, len(names))
	tables := make([]*Table, 0, len(names))
	for _, name := range names {
		t := &Table{Name: name}
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}

	err = s.readColumns(ctx, s.dialect.GetColumnsQuery(s.schema), []any{s.schema},
		func(tableName string, col *Column) {
			if t, ok := tableMap[strings.ToUpper(tableName)]; ok {
				t.Columns = append(t.Columns, col)
			}
		})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// readColumns runs a columns query and hands every scanned row to add.
func (s *Source) readColumns(ctx context.Context, query string, args []any, add func(table string, col *Column)) error {
	colRows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, cType, isNull, cKey, extra, isUnique, comment sql.NullString
		var cLen sql.NullString

		if err := colRows.Scan(&tName, &cName, &dType, &cType, &cLen, &isNull, &cKey, &extra, &isUnique, &comment); err != nil {
			return fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}

		if !tName.Valid || !cName.Valid {
			continue
		}

		col := &Column{
			Name:       cName.String,
			DataType:   s.dialect.NormalizeType(dType.String),
			IsNullable: isNull.String == "YES" || isNull.String == "Y",
			IsPK:       strings.Contains(cKey.String, "PRI") || strings.Contains(cKey.String, "PRIMARY"),
			IsUnique:   isUnique.Valid && strings.Contains(isUnique.String, "UNIQUE"),
			Comment:    comment.String,
			Meaning:    AnalyzeMeaning(cName.String, comment.String),
		}

		if extra.Valid {
			extraLower := strings.ToLower(extra.String)
			col.IsAutoInc = strings.Contains(extraLower, "auto_increment") ||
				strings.Contains(extraLower, "identity") ||
				strings.Contains(extraLower, "nextval")
		}

		col.Length = parseLength(cLen)
		add(tName.String, col)
	}
	if err := colRows.Err(); err != nil {
		return fmt.Errorf("error iterating columns: %w", err)
	}
	return nil
}

// parseLength reads CHARACTER_MAXIMUM_LENGTH, which some drivers report as a float.
func parseLength(cLen sql.NullString) int {
	if !cLen.Valid || cLen.String == "" {
		return 0
	}
	var length int
	if _, err := fmt.Sscanf(cLen.String, "%d", &length); err == nil {
		return length
	}
	var fLength float64
	if _, err := fmt.Sscanf(cLen.String, "%f", &fLength); err == nil {
		return int(fLength)
	}
	return 0
}
