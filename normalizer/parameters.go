package normalizer

import "github.com/apidrift/apidrift/parser"

// Location identifies where a request parameter is carried.
type Location string

const (
	// LocationQuery is a query string parameter.
	LocationQuery Location = "query"
	// LocationPath is a path template parameter.
	LocationPath Location = "path"
	// LocationHeader is a request header parameter.
	LocationHeader Location = "header"
	// LocationBody holds request body entries: Swagger 2.0 body parameters
	// by name, OpenAPI 3.x request bodies by content type.
	LocationBody Location = "body"
)

// ParamInfo describes a single extracted parameter. Exactly one of Schema
// and Type is populated depending on the operation's dialect shape.
type ParamInfo struct {
	Required bool
	Schema   *parser.Map
	Type     string
}

// TypeRepr renders the parameter's type for syntactic comparison: the full
// schema rendering when a non-empty schema is present, otherwise the flat
// type name. Empty means the parameter declares no type either way.
func (p ParamInfo) TypeRepr() string {
	if p.Schema.Len() > 0 {
		return p.Schema.String()
	}
	return p.Type
}

// ParamSet holds the parameters of one location in document order.
type ParamSet struct {
	names  []string
	params map[string]ParamInfo
}

func (s *ParamSet) add(name string, info ParamInfo) {
	if s.params == nil {
		s.params = make(map[string]ParamInfo)
	}
	if _, ok := s.params[name]; !ok {
		s.names = append(s.names, name)
	}
	s.params[name] = info
}

// Len returns the number of parameters in the set.
func (s *ParamSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns parameter names in document order.
// The returned slice is shared; callers must not modify it.
func (s *ParamSet) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// Has reports whether the named parameter is present.
func (s *ParamSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.params[name]
	return ok
}

// Get returns the named parameter and whether it was present.
func (s *ParamSet) Get(name string) (ParamInfo, bool) {
	if s == nil {
		return ParamInfo{}, false
	}
	info, ok := s.params[name]
	return info, ok
}

// Parameters groups one operation's parameters by location. All four
// locations are always present, possibly empty.
type Parameters map[Location]*ParamSet

// At returns the set for a location. The result may be nil for locations
// outside the known four; ParamSet methods tolerate that.
func (p Parameters) At(loc Location) *ParamSet {
	return p[loc]
}

func newParameters() Parameters {
	return Parameters{
		LocationQuery:  {},
		LocationPath:   {},
		LocationHeader: {},
		LocationBody:   {},
	}
}

// Parameters extracts the OpenAPI 3.x parameter shape: each entry carries
// its type as a schema object, and the operation's requestBody folds into
// the body location keyed by content type. Entries without a name, and
// entries in unrecognized locations, are skipped.
func (op *OAS3Operation) Parameters() Parameters {
	params := newParameters()
	for _, entry := range op.raw.SliceValue("parameters") {
		param, ok := entry.(*parser.Map)
		if !ok {
			continue
		}
		name := param.StringValue("name")
		set, known := params[Location(param.StringValue("in"))]
		if name == "" || !known {
			continue
		}
		set.add(name, ParamInfo{
			Required: param.BoolValue("required"),
			Schema:   param.MapValue("schema"),
		})
	}
	if body := op.raw.MapValue("requestBody"); body.Len() > 0 {
		required := body.BoolValue("required")
		content := body.MapValue("content")
		for _, contentType := range content.Keys() {
			params[LocationBody].add(contentType, ParamInfo{
				Required: required,
				Schema:   content.MapValue(contentType).MapValue("schema"),
			})
		}
	}
	return params
}

// Parameters extracts the Swagger 2.0 parameter shape: flat entries with a
// type name, body parameters included under their own names. Entries
// without a name, and entries in unrecognized locations, are skipped.
func (op *Swagger2Operation) Parameters() Parameters {
	params := newParameters()
	for _, entry := range op.raw.SliceValue("parameters") {
		param, ok := entry.(*parser.Map)
		if !ok {
			continue
		}
		name := param.StringValue("name")
		set, known := params[Location(param.StringValue("in"))]
		if name == "" || !known {
			continue
		}
		set.add(name, ParamInfo{
			Required: param.BoolValue("required"),
			Type:     param.StringValue("type"),
		})
	}
	return params
}
