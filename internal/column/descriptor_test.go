package column_test

import (
	"net"
	"testing"

	"db-scaffold/internal/column"
	"db-scaffold/internal/schema"
	"db-scaffold/internal/typemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersColumns() []schema.Column {
	return []schema.Column{
		{Name: "id", DataType: "int", IsPK: true, IsAutoInc: true},
		{Name: "name", DataType: "varchar", Length: 255},
		{Name: "bio", DataType: "text", IsNullable: true, Comment: "About me"},
		{Name: "password", DataType: "varchar", Length: 60},
	}
}

func TestBuild_Fields(t *testing.T) {
	b := column.NewBuilder()

	d := b.Build(schema.Column{Name: "user_id", DataType: "bigint", Comment: "owner"})
	assert.Equal(t, "user_id", d.Name)
	assert.Equal(t, "User Id", d.Title)
	assert.Equal(t, "number", d.Type)
	assert.Equal(t, "input", d.File)
	assert.Equal(t, "input.stub", d.FragmentName())
	assert.True(t, d.Required)
	assert.Equal(t, "owner", d.Comment)
	assert.Empty(t, d.Placeholder)
}

func TestBuild_RequiredMirrorsNullable(t *testing.T) {
	b := column.NewBuilder()
	for _, nullable := range []bool{true, false} {
		d := b.Build(schema.Column{Name: "x", DataType: "int", IsNullable: nullable})
		assert.Equal(t, !nullable, d.Required)
	}
}

func TestBuild_UnknownTypeFallsBack(t *testing.T) {
	b := column.NewBuilder()

	d := b.Build(schema.Column{Name: "area", DataType: "geometry"})
	assert.Equal(t, "text", d.Type)
	assert.Empty(t, d.File)
	assert.Empty(t, d.FragmentName())
}

func TestBuild_CustomTables(t *testing.T) {
	b := &column.Builder{
		Semantic: typemap.New(typemap.Entry{Category: "email", Types: []string{"varchar"}}),
		Files:    typemap.New(typemap.Entry{Category: "textarea", Types: []string{"varchar"}}),
	}

	d := b.Build(schema.Column{Name: "contact", DataType: "varchar"})
	assert.Equal(t, "email", d.Type)
	assert.Equal(t, "textarea", d.File)

	d = b.Build(schema.Column{Name: "n", DataType: "int"})
	assert.Equal(t, typemap.DefaultType, d.Type)
}

func TestBuildAll_KeepsOrder(t *testing.T) {
	descs := column.NewBuilder().BuildAll(usersColumns())
	require.Len(t, descs, 4)
	assert.Equal(t, "id", descs[0].Name)
	assert.Equal(t, "name", descs[1].Name)
	assert.Equal(t, "textarea", descs[2].File)
	assert.False(t, descs[2].Required)
	assert.Equal(t, "password", descs[3].Name)
}

func TestTags(t *testing.T) {
	d := column.NewBuilder().Build(schema.Column{Name: "bio", DataType: "text", IsNullable: true})

	tags := d.Tags()
	v, _ := tags.Get("required")
	assert.Equal(t, "", v)
	v, _ = tags.Get("&file")
	assert.Equal(t, "textarea.stub", v)
	v, _ = tags.Get("title")
	assert.Equal(t, "Bio", v)

	d.Required = true
	v, _ = d.Tags().Get("required")
	assert.Equal(t, "required", v)
}

func TestFilter(t *testing.T) {
	descs := column.NewBuilder().BuildAll(usersColumns())
	kept := column.Filter(descs, column.NewIgnore("id", "password"))

	require.Len(t, kept, 2)
	assert.Equal(t, "name", kept[0].Name)
	assert.Equal(t, "bio", kept[1].Name)
}

func TestSample_Reproducible(t *testing.T) {
	cols := []schema.Column{
		{Name: "email", DataType: "varchar", Length: 100, Meaning: "email"},
		{Name: "born_on", DataType: "date"},
		{Name: "price", DataType: "decimal"},
	}

	b1 := column.NewBuilder()
	b1.Faker = column.NewFaker(7)
	b2 := column.NewBuilder()
	b2.Faker = column.NewFaker(7)

	first := b1.BuildAll(cols)
	second := b2.BuildAll(cols)
	for i := range cols {
		assert.NotEmpty(t, first[i].Placeholder, cols[i].Name)
		assert.Equal(t, first[i].Placeholder, second[i].Placeholder, cols[i].Name)
	}
	assert.Contains(t, first[0].Placeholder, "@")
}

func TestSample_SkipsKeysAndSecrets(t *testing.T) {
	f := column.NewFaker(1)

	assert.Empty(t, column.Sample(f, schema.Column{Name: "id", DataType: "int", IsPK: true}))
	assert.Empty(t, column.Sample(f, schema.Column{Name: "password", DataType: "varchar"}))
	assert.Empty(t, column.Sample(f, schema.Column{Name: "user_id", DataType: "bigint"}))
	assert.Empty(t, column.Sample(f, schema.Column{Name: "area", DataType: "geometry"}))
}

func TestSample_Truncates(t *testing.T) {
	f := column.NewFaker(3)
	got := column.Sample(f, schema.Column{Name: "code", DataType: "char", Length: 2})
	assert.LessOrEqual(t, len([]rune(got)), 2)
}

func TestSample_IPOnlyForWholeWord(t *testing.T) {
	for _, name := range []string{"description", "recipient", "shipping_method"} {
		col := schema.Column{Name: name, DataType: "varchar", Length: 255, Meaning: schema.AnalyzeMeaning(name, "")}
		got := column.Sample(column.NewFaker(1), col)
		assert.NotEmpty(t, got, name)
		assert.Nil(t, net.ParseIP(got), name)
	}

	got := column.Sample(column.NewFaker(1), schema.Column{Name: "login_ip", DataType: "varchar", Length: 45, Meaning: "ip"})
	assert.NotNil(t, net.ParseIP(got))
}
