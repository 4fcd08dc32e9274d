package normalizer

import (
	"strings"

	"github.com/apidrift/apidrift/parser"
)

// httpMethods lists the path item keys treated as operations. Everything
// else on a path item (summary, description, servers, extensions) is
// dropped during normalization.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"delete":  true,
	"patch":   true,
	"options": true,
	"head":    true,
}

// Document is the dialect-neutral view of a specification.
type Document struct {
	// Version is the declared dialect version, e.g. "3.0.0" or "2.0".
	// Empty when the document carries no version discriminator.
	Version string
	// Dialect identifies which discriminator the document declared.
	Dialect parser.OASVersion
	// Info is the document's info object, nil when absent.
	Info *parser.Map
	// Paths maps each path to its operations. Every value is a *parser.Map
	// keyed by lowercase HTTP method; a path item that was not a mapping
	// yields an empty method map so the path still participates in
	// endpoint-level diffing.
	Paths *parser.Map
}

// Methods returns the operation map for path. The result is never nil.
func (d *Document) Methods(path string) *parser.Map {
	methods := d.Paths.MapValue(path)
	if methods == nil {
		return parser.NewMap()
	}
	return methods
}

// Normalize reduces a parsed document to its diffable core. Documents with
// no version discriminator normalize with an unknown dialect and empty
// version; their paths are still walked so structurally valid fragments
// remain comparable.
func Normalize(doc *parser.Map) *Document {
	norm := &Document{Info: doc.MapValue("info")}
	switch {
	case doc.Has("swagger"):
		norm.Dialect = parser.OASVersion2
		norm.Version = doc.StringValue("swagger")
	case doc.Has("openapi"):
		norm.Dialect = parser.OASVersion3
		norm.Version = doc.StringValue("openapi")
	}
	norm.Paths = normalizePaths(doc.MapValue("paths"))
	return norm
}

func normalizePaths(paths *parser.Map) *parser.Map {
	norm := parser.NewMap()
	for _, path := range paths.Keys() {
		methods := parser.NewMap()
		item := paths.MapValue(path)
		for _, method := range item.Keys() {
			lower := strings.ToLower(method)
			if !httpMethods[lower] {
				continue
			}
			op := item.MapValue(method)
			if op == nil {
				// An operation that is not a mapping has nothing to diff.
				continue
			}
			methods.Set(lower, op)
		}
		norm.Set(path, methods)
	}
	return norm
}
