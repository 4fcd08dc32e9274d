package parser

// OASVersion represents the dialect of an API description document. The two
// dialects are treated as versions of one underlying model; documents
// carrying neither discriminator key are Unknown and flow through the
// pipeline with a dialect-neutral interpretation.
type OASVersion int

const (
	// Unknown represents a document with no recognized version discriminator
	Unknown OASVersion = iota
	// OASVersion2 OpenAPI Specification 2.0 (Swagger)
	OASVersion2
	// OASVersion3 OpenAPI Specification 3.x
	OASVersion3
)

// String returns the string representation of the dialect.
func (v OASVersion) String() string {
	switch v {
	case OASVersion2:
		return "swagger-2.0"
	case OASVersion3:
		return "openapi-3.x"
	default:
		return "unknown"
	}
}

// documentVersion extracts the raw version string and dialect from the
// top-level discriminator keys. Presence follows the same permissive rule
// the shape validation uses: an empty value does not count.
func documentVersion(doc *Map) (string, OASVersion) {
	if v := doc.Value("openapi"); hasContent(v) {
		return valueString(v), OASVersion3
	}
	if v := doc.Value("swagger"); hasContent(v) {
		return valueString(v), OASVersion2
	}
	return "", Unknown
}
