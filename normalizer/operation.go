package normalizer

import "github.com/apidrift/apidrift/parser"

// Operation is the dialect-neutral view of a single HTTP operation. The
// differ decides which implementation to use per operation based on the
// shape of the old document's operation, so mixed-dialect comparisons
// behave consistently.
type Operation interface {
	// Parameters groups the operation's request parameters by location.
	Parameters() Parameters
	// Responses maps status codes to response objects in document order.
	Responses() *parser.Map
	// RequestBodySchema returns the schema of the operation's request body.
	// ok is false when the operation declares no request body or none of
	// its content types carries a non-empty schema.
	RequestBodySchema() (*Schema, bool)
	// Raw exposes the underlying operation mapping.
	Raw() *parser.Map
}

type operation struct {
	raw *parser.Map
}

func (op operation) Responses() *parser.Map {
	return op.raw.MapValue("responses")
}

func (op operation) Raw() *parser.Map {
	return op.raw
}

// OAS3Operation reads the OpenAPI 3.x operation shape: schema-bearing
// parameters plus a requestBody object with per-content-type schemas.
type OAS3Operation struct {
	operation
}

// NewOAS3Operation wraps a raw operation mapping in the OpenAPI 3.x view.
func NewOAS3Operation(raw *parser.Map) *OAS3Operation {
	return &OAS3Operation{operation{raw: raw}}
}

// RequestBodySchema returns the schema of the first content type that
// carries a non-empty one, in document order.
func (op *OAS3Operation) RequestBodySchema() (*Schema, bool) {
	content := op.raw.MapValue("requestBody").MapValue("content")
	for _, contentType := range content.Keys() {
		schema := content.MapValue(contentType).MapValue("schema")
		if schema.Len() > 0 {
			return NewSchema(schema), true
		}
	}
	return nil, false
}

// Swagger2Operation reads the Swagger 2.0 operation shape: flat typed
// parameters, with request bodies carried as body parameters.
type Swagger2Operation struct {
	operation
}

// NewSwagger2Operation wraps a raw operation mapping in the Swagger 2.0 view.
func NewSwagger2Operation(raw *parser.Map) *Swagger2Operation {
	return &Swagger2Operation{operation{raw: raw}}
}

// RequestBodySchema always reports no schema. Swagger 2.0 request bodies
// are body parameters and surface through Parameters instead.
func (op *Swagger2Operation) RequestBodySchema() (*Schema, bool) {
	return nil, false
}

var (
	_ Operation = (*OAS3Operation)(nil)
	_ Operation = (*Swagger2Operation)(nil)
)
