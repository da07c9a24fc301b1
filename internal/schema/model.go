package schema

type Table struct {
	Name    string
	Columns []*Column
}

// Column is one row of table metadata as read from the catalog.
type Column struct {
	Name       string
	DataType   string // normalized, lower-case (see dialect.NormalizeType)
	Length     int
	IsNullable bool
	IsPK       bool
	IsAutoInc  bool
	IsUnique   bool
	Comment    string // DB schema comment (COLUMN_COMMENT, MS_Description, ...)
	Meaning    string // what the name or comment suggests, e.g. "phone", "email"
}
