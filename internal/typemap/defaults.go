package typemap

// DefaultType is the widget category used for types no semantic entry claims.
const DefaultType = "text"

// SemanticTypes maps column types to the widget category rendered for them.
// The trailing empty categories exist so configuration can claim types for them.
func SemanticTypes() *Table {
	return New(
		Entry{Category: "number", Types: []string{
			"int", "tinyint", "smallint", "mediumint",
			"bigint", "float", "double", "decimal",
		}},
		Entry{Category: "text", Types: []string{
			"varchar", "char", "blob", "text", "tinyblob",
			"tinytext", "mediumblob", "mediumtext", "longblob", "longtext",
		}},
		Entry{Category: "date", Types: []string{"date", "year", "datetime", "timestamp"}},
		Entry{Category: "time", Types: []string{"time"}},
		Entry{Category: "radio", Types: []string{"enum"}},
		Entry{Category: "password"},
		Entry{Category: "submit"},
		Entry{Category: "checkbox"},
		Entry{Category: "button"},
		Entry{Category: "color"},
		Entry{Category: "range"},
		Entry{Category: "month"},
		Entry{Category: "week"},
		Entry{Category: "email"},
		Entry{Category: "search"},
		Entry{Category: "tel"},
		Entry{Category: "url"},
	)
}

// FragmentFiles maps column types to the per-column stub that renders them.
func FragmentFiles() *Table {
	return New(
		Entry{Category: "input", Types: []string{
			"int", "tinyint", "smallint", "mediumint",
			"bigint", "float", "double", "decimal",
			"date", "datetime", "time", "year",
			"varchar", "char", "timestamp",
		}},
		Entry{Category: "textarea", Types: []string{
			"blob", "text", "tinyblob", "tinytext",
			"mediumblob", "mediumtext", "longblob", "longtext",
		}},
		Entry{Category: "select", Types: []string{"enum"}},
	)
}
