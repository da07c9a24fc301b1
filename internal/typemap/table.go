// Package typemap classifies raw database column types into categories.
//
// A Table is an ordered list of category entries. Lookups walk the entries
// in declaration order and the first category that claims a type wins, so
// the order in which entries are declared is part of the table's meaning.
package typemap

// Entry is one category of a Table.
type Entry struct {
	Category string
	Types    []string
	// Nested is searched with Contains when the type is not listed directly.
	Nested *Table
}

// Table is an ordered category -> type tokens mapping.
type Table struct {
	entries []Entry
}

// New returns a table holding the given entries in order.
func New(entries ...Entry) *Table {
	t := &Table{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		t.entries = append(t.entries, Entry{
			Category: e.Category,
			Types:    append([]string(nil), e.Types...),
			Nested:   e.Nested,
		})
	}
	return t
}

// Entries returns a copy of the table's entries in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Find returns the first category containing raw.
//
// A match inside a Nested table only reports that the type was found; the
// category returned is always the top-level entry that owns the nested table.
func (t *Table) Find(raw string) (string, bool) {
	if t == nil || raw == "" {
		return "", false
	}
	for _, e := range t.entries {
		if e.has(raw) {
			return e.Category, true
		}
	}
	return "", false
}

// Contains reports whether raw appears anywhere in the table, nested tables included.
func (t *Table) Contains(raw string) bool {
	_, ok := t.Find(raw)
	return ok
}

func (e Entry) has(raw string) bool {
	for _, typ := range e.Types {
		if typ == raw {
			return true
		}
	}
	return e.Nested.Contains(raw)
}

// Classify returns the category for raw, or fallback when no entry matches.
func Classify(raw string, t *Table, fallback string) string {
	if category, ok := t.Find(raw); ok {
		return category
	}
	return fallback
}
