package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMapDuplicateKeyKeepsPositionLastValueWins(t *testing.T) {
	m := NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 99, m.Value("a"))
}

func TestMapNilSafety(t *testing.T) {
	var m *Map

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Value("x"))
	assert.Nil(t, m.MapValue("x"))
	assert.Nil(t, m.SliceValue("x"))
	assert.Equal(t, "", m.StringValue("x"))
	assert.False(t, m.BoolValue("x"))
	assert.Equal(t, "map[]", m.String())

	// MapValue on a nil Map chains safely.
	assert.Equal(t, 0, m.MapValue("a").MapValue("b").Len())
}

func TestMapTypedAccessors(t *testing.T) {
	nested := NewMap()
	nested.Set("type", "string")

	m := NewMap()
	m.Set("schema", nested)
	m.Set("required", true)
	m.Set("tags", []any{"a", "b"})
	m.Set("name", "id")
	m.Set("count", 3)

	assert.Equal(t, nested, m.MapValue("schema"))
	assert.Nil(t, m.MapValue("name"), "non-mapping value yields nil")
	assert.True(t, m.BoolValue("required"))
	assert.Equal(t, []any{"a", "b"}, m.SliceValue("tags"))
	assert.Equal(t, "id", m.StringValue("name"))
	assert.Equal(t, "3", m.StringValue("count"), "scalars render through the deterministic form")
}

func TestMapStringDeterministicAndOrderSensitive(t *testing.T) {
	build := func(keys []string) *Map {
		m := NewMap()
		for i, k := range keys {
			m.Set(k, i)
		}
		return m
	}

	a := build([]string{"type", "format"})
	b := build([]string{"type", "format"})
	c := build([]string{"format", "type"})

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String(), "key order is part of the rendering")
}

func TestMapStringNested(t *testing.T) {
	inner := NewMap()
	inner.Set("type", "integer")

	m := NewMap()
	m.Set("schema", inner)
	m.Set("values", []any{1, "two"})

	assert.Equal(t, "map[schema:map[type:integer] values:[1 two]]", m.String())
}

func TestHasContent(t *testing.T) {
	empty := NewMap()
	filled := NewMap()
	filled.Set("k", "v")

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "2.0", true},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero float", 0.0, false},
		{"float", 3.1, true},
		{"empty slice", []any{}, false},
		{"slice", []any{1}, true},
		{"empty map", empty, false},
		{"map", filled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasContent(tt.value))
		})
	}
}

func TestMapDecodedFromYAMLKeepsDocumentOrder(t *testing.T) {
	content := `
openapi: 3.0.0
info:
  title: t
paths:
  /zebra: {}
  /apple: {}
  /mango: {}
`
	p := New()
	p.ValidateStructure = false
	result, err := p.Parse(content, SourceFormatYAML)
	require.NoError(t, err)

	paths := result.Data.MapValue("paths")
	require.NotNil(t, paths)
	assert.Equal(t, []string{"/zebra", "/apple", "/mango"}, paths.Keys())
}
