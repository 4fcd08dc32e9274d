package parser

import (
	"encoding/json"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/apidrift/apidrift/drifterrors"
)

// Parser handles API description parsing and shape validation.
type Parser struct {
	// ValidateStructure determines whether the top-level shape checks
	// (version discriminator, info, paths) run after decoding.
	// Enabled by default; disable only when feeding the result into
	// tooling that tolerates partial documents.
	ValidateStructure bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{ValidateStructure: true}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat identifies the serialization format of source content.
type SourceFormat string

const (
	// SourceFormatJSON decodes the content as JSON.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML decodes the content as YAML.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatAuto resolves the format with DetectFormat first.
	SourceFormatAuto SourceFormat = "auto"
)

// ParseResult contains the decoded API description and metadata.
// Callers should treat it as read-only after parsing.
type ParseResult struct {
	// SourceFormat is the format the content was decoded as.
	SourceFormat SourceFormat
	// Version is the raw value of the version discriminator key
	// (e.g. "3.0.3" or "2.0"), empty when validation is disabled and the
	// document carries neither key.
	Version string
	// OASVersion is the enumerated dialect.
	OASVersion OASVersion
	// SourceSize is the size of the source content in bytes.
	SourceSize int64
	// Data is the generic document tree with source key order preserved.
	Data *Map
}

// Parse decodes and shape-validates API description content.
//
// Validation runs in a fixed order, each step a distinct rejection:
// empty content, syntax, top-level object, version discriminator, info,
// paths. Every rejection is an
// [github.com/apidrift/apidrift/drifterrors.InvalidSpecificationError] and
// is terminal: no partial document is returned.
func (p *Parser) Parse(content string, format SourceFormat) (*ParseResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &drifterrors.InvalidSpecificationError{
			Reason:  drifterrors.ReasonEmptyInput,
			Message: "specification is empty",
		}
	}

	if format == SourceFormatAuto || format == "" {
		format = DetectFormat(content)
		p.log().Debug("detected source format", "format", string(format))
	}

	switch format {
	case SourceFormatJSON:
		// A JSON probe first, so syntax failures carry the JSON decoder's
		// diagnostics rather than a YAML reading of the same bytes.
		var probe any
		if err := json.Unmarshal([]byte(content), &probe); err != nil {
			return nil, &drifterrors.InvalidSpecificationError{
				Reason:  drifterrors.ReasonSyntax,
				Format:  string(SourceFormatJSON),
				Message: "invalid JSON",
				Cause:   err,
			}
		}
	case SourceFormatYAML:
	default:
		return nil, drifterrors.NewInvalidSpecification(
			drifterrors.ReasonUnsupportedFormat, "unsupported source format: %s", format)
	}

	// YAML 1.2 is a superset of JSON, so one node decode serves both
	// formats and keeps mapping key order.
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, &drifterrors.InvalidSpecificationError{
			Reason:  drifterrors.ReasonSyntax,
			Format:  string(format),
			Message: "invalid " + strings.ToUpper(string(format)),
			Cause:   err,
		}
	}

	value, err := nodeToValue(&root)
	if err != nil {
		return nil, &drifterrors.InvalidSpecificationError{
			Reason:  drifterrors.ReasonSyntax,
			Format:  string(format),
			Message: "failed to decode specification",
			Cause:   err,
		}
	}

	doc, ok := value.(*Map)
	if !ok {
		return nil, drifterrors.NewInvalidSpecification(
			drifterrors.ReasonNotAnObject, "specification must decode to an object")
	}

	if p.ValidateStructure {
		if err := validateShape(doc); err != nil {
			return nil, err
		}
	}

	result := &ParseResult{
		SourceFormat: format,
		SourceSize:   int64(len(content)),
		Data:         doc,
	}
	result.Version, result.OASVersion = documentVersion(doc)

	p.log().Debug("parsed specification",
		"format", string(format),
		"dialect", result.OASVersion.String(),
		"paths", doc.MapValue("paths").Len(),
	)
	return result, nil
}

// Parse decodes and shape-validates content with a default Parser.
func Parse(content string, format SourceFormat) (*ParseResult, error) {
	return New().Parse(content, format)
}

// validateShape performs the top-level structure checks, in order.
func validateShape(doc *Map) error {
	if !hasContent(doc.Value("openapi")) && !hasContent(doc.Value("swagger")) {
		return drifterrors.NewInvalidSpecification(
			drifterrors.ReasonMissingVersionDiscriminator,
			"specification must include %q (v3.x) or %q (v2.0) field", "openapi", "swagger")
	}
	if !hasContent(doc.Value("info")) {
		return drifterrors.NewInvalidSpecification(
			drifterrors.ReasonMissingInfo, "specification must include %q field", "info")
	}
	if !hasContent(doc.Value("paths")) {
		return drifterrors.NewInvalidSpecification(
			drifterrors.ReasonMissingPaths, "specification must include %q field", "paths")
	}
	return nil
}
