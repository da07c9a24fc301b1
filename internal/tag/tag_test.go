package tag_test

import (
	"testing"

	"db-scaffold/internal/tag"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute_EmptyMapIsIdentity(t *testing.T) {
	for _, text := range []string{"", "plain", "{{name}} stays", "{{ $user->name }}"} {
		assert.Equal(t, text, tag.Substitute(text, tag.Map{}))
	}
}

func TestSubstitute_SinglePass(t *testing.T) {
	m := tag.FromPairs("a", "{{b}}", "b", "X")
	assert.Equal(t, "{{b}}", tag.Substitute("{{a}}", m))
}

func TestSubstitute_LeavesUnknownPlaceholders(t *testing.T) {
	m := tag.FromPairs("name", "email")
	assert.Equal(t, "email {{title}}", tag.Substitute("{{name}} {{title}}", m))
}

func TestSubstitute_StructuralKeys(t *testing.T) {
	m := tag.FromPairs("&layout_master", "layouts.master", "layout_master", "column")
	got := tag.Substitute("@extends('{{&layout_master}}') {{layout_master}}", m)
	assert.Equal(t, "@extends('layouts.master') column", got)
}

func TestSubstitute_BulkMatchesRepeatedSingle(t *testing.T) {
	text := "{{proper_name}} / {{simple_name}} / {{table_name}}"
	m := tag.FromPairs("proper_name", "User", "simple_name", "user", "table_name", "users")

	chained := text
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		chained = tag.SubstituteOne(chained, k, v)
	}
	assert.Equal(t, chained, tag.Substitute(text, m))
	assert.Equal(t, "User / user / users", chained)
}

func TestMerge_LaterWinsFirstPositionKept(t *testing.T) {
	a := tag.FromPairs("x", "1", "y", "2")
	b := tag.FromPairs("z", "3", "x", "9")

	merged := tag.Merge(a, b)
	assert.Equal(t, []string{"x", "y", "z"}, merged.Keys())
	v, ok := merged.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	// inputs untouched
	v, _ = a.Get("x")
	assert.Equal(t, "1", v)
}

func TestFromPairs_OddArgs(t *testing.T) {
	m := tag.FromPairs("a", "1", "dangling")
	assert.Equal(t, 1, m.Len())
}

func TestUnresolved(t *testing.T) {
	text := "{{name}} {{ $user->name }} {{&data_file}} {{name}} {{create-view}}"
	assert.Equal(t, []string{"name", "&data_file", "create-view"}, tag.Unresolved(text))
	assert.Empty(t, tag.Unresolved("nothing here"))
}
