package schema

import (
	"context"
	"strings"
)

// Snapshot serves column metadata from tables read once, so batch runs do
// not query the catalog per artifact.
type Snapshot struct {
	tables []*Table
}

func NewSnapshot(tables []*Table) *Snapshot {
	return &Snapshot{tables: tables}
}

// Tables returns the table names in catalog order.
func (s *Snapshot) Tables() []string {
	names := make([]string, len(s.tables))
	for i, t := range s.tables {
		names[i] = t.Name
	}
	return names
}

// Columns returns a copy of the named table's columns. Table names are
// matched case-insensitively (Oracle reports upper-case names). An unknown
// table yields no columns and no error.
func (s *Snapshot) Columns(_ context.Context, table string) ([]Column, error) {
	for _, t := range s.tables {
		if strings.EqualFold(t.Name, table) {
			cols := make([]Column, 0, len(t.Columns))
			for _, c := range t.Columns {
				cols = append(cols, *c)
			}
			return cols, nil
		}
	}
	return nil, nil
}
