package normalizer

import "github.com/apidrift/apidrift/parser"

// Schema is a read-only view over a schema object. It exposes only the
// parts the differ compares: object properties, their declared types, and
// the required set.
type Schema struct {
	raw *parser.Map
}

// NewSchema wraps a raw schema mapping.
func NewSchema(raw *parser.Map) *Schema {
	return &Schema{raw: raw}
}

// Properties returns the property name to schema mapping in document order.
func (s *Schema) Properties() *parser.Map {
	if s == nil {
		return nil
	}
	return s.raw.MapValue("properties")
}

// Required returns the set of required property names.
func (s *Schema) Required() map[string]bool {
	if s == nil {
		return nil
	}
	required := make(map[string]bool)
	for _, v := range s.raw.SliceValue("required") {
		if name, ok := v.(string); ok {
			required[name] = true
		}
	}
	return required
}

// PropertyType returns the declared type of the named property, or "" when
// the property or its type is absent.
func (s *Schema) PropertyType(name string) string {
	if s == nil {
		return ""
	}
	return s.Properties().MapValue(name).StringValue("type")
}
