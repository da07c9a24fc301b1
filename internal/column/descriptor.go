// Package column turns catalog rows into the descriptors fragments are rendered from.
package column

import (
	"db-scaffold/internal/naming"
	"db-scaffold/internal/schema"
	"db-scaffold/internal/tag"
	"db-scaffold/internal/typemap"

	"github.com/brianvoe/gofakeit/v6"
)

// Descriptor is the normalized, render-ready view of one column.
type Descriptor struct {
	Name     string
	Title    string
	Type     string // widget category, e.g. "number", "text", "date"
	File     string // fragment category, e.g. "input"; "" when no stub renders the type
	Required bool
	Comment  string

	DataType    string
	Meaning     string
	Placeholder string
}

// FragmentName returns the stub file for the column, or "" when it has none.
func (d Descriptor) FragmentName() string {
	if d.File == "" {
		return ""
	}
	return d.File + ".stub"
}

// Tags returns the per-column placeholder values. Required is rendered as
// "required" or "" so it can sit directly inside a form element.
func (d Descriptor) Tags() tag.Map {
	required := ""
	if d.Required {
		required = "required"
	}
	return tag.FromPairs(
		"name", d.Name,
		"title", d.Title,
		"type", d.Type,
		"comment", d.Comment,
		"required", required,
		"&file", d.FragmentName(),
		"data_type", d.DataType,
		"meaning", d.Meaning,
		"placeholder", d.Placeholder,
	)
}

// Builder builds descriptors against a pair of category tables.
type Builder struct {
	Semantic    *typemap.Table
	Files       *typemap.Table
	DefaultType string

	// Faker supplies placeholder samples; nil leaves Placeholder empty.
	Faker *gofakeit.Faker
}

// NewBuilder returns a Builder using the default category tables.
func NewBuilder() *Builder {
	return &Builder{
		Semantic:    typemap.SemanticTypes(),
		Files:       typemap.FragmentFiles(),
		DefaultType: typemap.DefaultType,
	}
}

// Build derives the descriptor for one column.
func (b *Builder) Build(col schema.Column) Descriptor {
	fallback := b.DefaultType
	if fallback == "" {
		fallback = typemap.DefaultType
	}
	file, _ := b.Files.Find(col.DataType)

	d := Descriptor{
		Name:     col.Name,
		Title:    naming.ProperName(col.Name),
		Type:     typemap.Classify(col.DataType, b.Semantic, fallback),
		File:     file,
		Required: !col.IsNullable,
		Comment:  col.Comment,
		DataType: col.DataType,
		Meaning:  col.Meaning,
	}
	if b.Faker != nil {
		d.Placeholder = Sample(b.Faker, col)
	}
	return d
}

// BuildAll builds descriptors for cols, keeping their order.
func (b *Builder) BuildAll(cols []schema.Column) []Descriptor {
	out := make([]Descriptor, 0, len(cols))
	for _, c := range cols {
		out = append(out, b.Build(c))
	}
	return out
}

// Ignore is a set of column names left out of rendering.
type Ignore map[string]bool

// NewIgnore builds an Ignore set from names.
func NewIgnore(names ...string) Ignore {
	ig := make(Ignore, len(names))
	for _, n := range names {
		ig[n] = true
	}
	return ig
}

// Filter returns the descriptors whose names are not ignored, in order.
func Filter(cols []Descriptor, ignore Ignore) []Descriptor {
	out := make([]Descriptor, 0, len(cols))
	for _, c := range cols {
		if !ignore[c.Name] {
			out = append(out, c)
		}
	}
	return out
}
