package parser

import (
	"fmt"
	"strings"
)

// Map is a string-keyed mapping that preserves the key order of the source
// document it was decoded from. It is the building block of the generic
// document tree: nested mappings are *Map values, sequences are []any, and
// scalars are plain Go values.
//
// All read methods are nil-safe and return zero values for missing keys, so
// callers can chain lookups without checking for absent structure.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in source document order.
// The returned slice is shared; callers must not modify it.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Has reports whether the key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value for key, or nil if absent.
func (m *Map) Value(key string) any {
	v, _ := m.Get(key)
	return v
}

// Set stores a value. A repeated key keeps its original position and the
// last value wins, matching how the source decoder collapses duplicates.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// MapValue returns the nested Map stored under key, or nil when the key is
// absent or its value is not a mapping.
func (m *Map) MapValue(key string) *Map {
	v, _ := m.Get(key)
	nested, _ := v.(*Map)
	return nested
}

// SliceValue returns the sequence stored under key, or nil when the key is
// absent or its value is not a sequence.
func (m *Map) SliceValue(key string) []any {
	v, _ := m.Get(key)
	items, _ := v.([]any)
	return items
}

// StringValue returns the value under key rendered as a string. Missing and
// nil values render as "". Non-string scalars and composite values render
// through the same deterministic form String uses.
func (m *Map) StringValue(key string) string {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return ""
	}
	return valueString(v)
}

// BoolValue returns the value under key if it is a bool, else false.
func (m *Map) BoolValue(key string) bool {
	v, _ := m.Get(key)
	b, _ := v.(bool)
	return b
}

// String renders the mapping in source key order. The exact shape is not a
// serialization format; it exists so that two structurally equal mappings
// render identically and two different ones render differently, which is
// what the differ's syntactic type comparison relies on.
func (m *Map) String() string {
	if m == nil {
		return "map[]"
	}
	var b strings.Builder
	b.WriteString("map[")
	for i, key := range m.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(valueString(m.values[key]))
	}
	b.WriteByte(']')
	return b.String()
}

// valueString renders any decoded value deterministically, recursing through
// Maps and sequences.
func valueString(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case *Map:
		return val.String()
	case []any:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(valueString(item))
		}
		b.WriteByte(']')
		return b.String()
	default:
		return fmt.Sprint(val)
	}
}

// hasContent reports whether a decoded value is present and non-empty. The
// shape validation relies on this permissive notion of presence: nil, empty
// strings, empty mappings, empty sequences, false, and numeric zero all
// count as absent.
func hasContent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case *Map:
		return val.Len() > 0
	default:
		return true
	}
}
