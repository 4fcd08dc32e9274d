package differ

import (
	"fmt"

	"github.com/apidrift/apidrift/internal/severity"
	"github.com/apidrift/apidrift/normalizer"
	"github.com/apidrift/apidrift/parser"
)

// Severity indicates the impact level of a change
type Severity = severity.Severity

const (
	// SeverityNonBreaking indicates purely additive changes
	SeverityNonBreaking = severity.SeverityNonBreaking
	// SeverityPotentiallyBreaking indicates changes that may break clients depending on usage
	SeverityPotentiallyBreaking = severity.SeverityPotentiallyBreaking
	// SeverityBreaking indicates changes existing clients cannot survive
	SeverityBreaking = severity.SeverityBreaking
)

// ChangeCategory indicates which level of the contract was changed
type ChangeCategory string

const (
	// CategoryEndpoint indicates a path-level change
	CategoryEndpoint ChangeCategory = "endpoint"
	// CategoryMethod indicates an HTTP method change on an existing path
	CategoryMethod ChangeCategory = "method"
	// CategoryParameter indicates a request parameter change
	CategoryParameter ChangeCategory = "parameter"
	// CategorySchema indicates a request body schema change
	CategorySchema ChangeCategory = "schema"
	// CategoryResponse indicates a response status code change
	CategoryResponse ChangeCategory = "response"
)

// comparedLocations lists the parameter locations the differ walks, in
// report order. Body entries are compared through the request body schema
// instead.
var comparedLocations = [...]normalizer.Location{
	normalizer.LocationQuery,
	normalizer.LocationPath,
	normalizer.LocationHeader,
}

// Change represents a single difference between two API descriptions
type Change struct {
	// Type is the classified severity of the change
	Type Severity `json:"type" yaml:"type"`
	// Category indicates which level of the contract was changed
	Category ChangeCategory `json:"category" yaml:"category"`
	// Path is the affected endpoint path (e.g. "/users/{id}")
	Path string `json:"path" yaml:"path"`
	// Method is the affected HTTP method in upper case, empty for
	// endpoint-level changes
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	// Field names the affected parameter, body property, or response
	// status, empty for endpoint and method level changes
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Message is a human-readable description of the change
	Message string `json:"message" yaml:"message"`
}

// String returns a formatted one-line representation of the change
func (c Change) String() string {
	var symbol string
	switch c.Type {
	case SeverityBreaking:
		symbol = "✗"
	case SeverityPotentiallyBreaking:
		symbol = "⚠"
	default:
		symbol = "ℹ"
	}

	target := c.Path
	if c.Method != "" {
		target = c.Method + " " + c.Path
	}
	if c.Field != "" {
		return fmt.Sprintf("%s %s [%s] %s: %s", symbol, target, c.Category, c.Field, c.Message)
	}
	return fmt.Sprintf("%s %s [%s]: %s", symbol, target, c.Category, c.Message)
}

// Summary counts changes by severity
type Summary struct {
	// Breaking is the number of breaking changes
	Breaking int `json:"breaking" yaml:"breaking"`
	// PotentiallyBreaking is the number of potentially breaking changes
	PotentiallyBreaking int `json:"potentially_breaking" yaml:"potentially_breaking"`
	// NonBreaking is the number of non-breaking changes
	NonBreaking int `json:"non_breaking" yaml:"non_breaking"`
}

// Total returns the number of changes across all severities
func (s Summary) Total() int {
	return s.Breaking + s.PotentiallyBreaking + s.NonBreaking
}

// Summarize counts a change list by severity. The counts partition the
// list: Total always equals len(changes).
func Summarize(changes []Change) Summary {
	var s Summary
	for _, c := range changes {
		switch c.Type {
		case SeverityBreaking:
			s.Breaking++
		case SeverityPotentiallyBreaking:
			s.PotentiallyBreaking++
		default:
			s.NonBreaking++
		}
	}
	return s
}

// DiffResult contains the results of comparing two API descriptions
type DiffResult struct {
	// OldVersion is the old document's declared dialect version
	OldVersion string `json:"old_version" yaml:"old_version"`
	// OldDialect is the old document's enumerated dialect
	OldDialect parser.OASVersion `json:"-" yaml:"-"`
	// NewVersion is the new document's declared dialect version
	NewVersion string `json:"new_version" yaml:"new_version"`
	// NewDialect is the new document's enumerated dialect
	NewDialect parser.OASVersion `json:"-" yaml:"-"`
	// Summary counts the changes by severity
	Summary Summary `json:"summary" yaml:"summary"`
	// Changes contains all detected changes in walk order
	Changes []Change `json:"changes" yaml:"changes"`
	// HasBreakingChanges is true if any breaking changes were detected
	HasBreakingChanges bool `json:"has_breaking_changes" yaml:"has_breaking_changes"`
}

// Differ compares normalized API descriptions. The zero value is ready to
// use; a Differ is stateless and safe for concurrent use.
type Differ struct{}

// New creates a new Differ instance
func New() *Differ {
	return &Differ{}
}

// Diff compares two normalized documents and returns the detected changes
// in walk order: endpoint-level changes first, then per-path method and
// operation changes, removals before additions at every level. The same
// pair of documents always yields the same changes in the same order.
func (d *Differ) Diff(oldDoc, newDoc *normalizer.Document) []Change {
	changes := make([]Change, 0)
	d.diffEndpoints(oldDoc, newDoc, &changes)
	d.diffOperations(oldDoc, newDoc, &changes)
	return changes
}

// Diff compares two normalized documents with a default Differ.
func Diff(oldDoc, newDoc *normalizer.Document) []Change {
	return New().Diff(oldDoc, newDoc)
}

func (d *Differ) diffEndpoints(oldDoc, newDoc *normalizer.Document, changes *[]Change) {
	for _, path := range oldDoc.Paths.Keys() {
		if !newDoc.Paths.Has(path) {
			*changes = append(*changes, classifyEndpointRemoval(path))
		}
	}
	for _, path := range newDoc.Paths.Keys() {
		if !oldDoc.Paths.Has(path) {
			*changes = append(*changes, classifyEndpointAddition(path))
		}
	}
}

func (d *Differ) diffOperations(oldDoc, newDoc *normalizer.Document, changes *[]Change) {
	for _, path := range oldDoc.Paths.Keys() {
		if !newDoc.Paths.Has(path) {
			continue
		}

		oldMethods := oldDoc.Methods(path)
		newMethods := newDoc.Methods(path)

		for _, method := range oldMethods.Keys() {
			if !newMethods.Has(method) {
				*changes = append(*changes, classifyMethodRemoval(path, method))
			}
		}
		for _, method := range newMethods.Keys() {
			if !oldMethods.Has(method) {
				*changes = append(*changes, classifyMethodAddition(path, method))
			}
		}
		for _, method := range oldMethods.Keys() {
			if newMethods.Has(method) {
				d.diffOperation(path, method, oldMethods.MapValue(method), newMethods.MapValue(method), changes)
			}
		}
	}
}

// diffOperation compares a single operation present in both documents. The
// old operation's shape decides which dialect view applies to both sides:
// an operation carrying "parameters" or "requestBody" keys reads as
// OpenAPI 3.x, anything else as Swagger 2.0. Deciding per operation keeps
// mixed and unversioned documents comparable.
func (d *Differ) diffOperation(path, method string, oldRaw, newRaw *parser.Map, changes *[]Change) {
	oas3 := oldRaw.Has("parameters") || oldRaw.Has("requestBody")

	var oldOp, newOp normalizer.Operation
	if oas3 {
		oldOp = normalizer.NewOAS3Operation(oldRaw)
		newOp = normalizer.NewOAS3Operation(newRaw)
	} else {
		oldOp = normalizer.NewSwagger2Operation(oldRaw)
		newOp = normalizer.NewSwagger2Operation(newRaw)
	}

	d.diffParameters(path, method, oldOp, newOp, changes)
	if oas3 {
		d.diffRequestBody(path, method, oldOp, newOp, changes)
	}
	d.diffResponses(path, method, oldOp, newOp, changes)
}

func (d *Differ) diffParameters(path, method string, oldOp, newOp normalizer.Operation, changes *[]Change) {
	oldParams := oldOp.Parameters()
	newParams := newOp.Parameters()

	for _, loc := range comparedLocations {
		oldSet := oldParams.At(loc)
		newSet := newParams.At(loc)

		for _, name := range oldSet.Names() {
			if !newSet.Has(name) {
				*changes = append(*changes, classifyParameterChange(path, method, name, kindRemoved, false))
			}
		}

		for _, name := range newSet.Names() {
			if !oldSet.Has(name) {
				info, _ := newSet.Get(name)
				*changes = append(*changes, classifyParameterChange(path, method, name, kindAdded, info.Required))
			}
		}

		for _, name := range oldSet.Names() {
			newInfo, ok := newSet.Get(name)
			if !ok {
				continue
			}
			oldInfo, _ := oldSet.Get(name)

			// Syntactic comparison: a parameter only counts as changed
			// when both sides declare a type and the declarations differ.
			oldType := oldInfo.TypeRepr()
			newType := newInfo.TypeRepr()
			if oldType != newType && oldType != "" && newType != "" {
				*changes = append(*changes, classifyParameterChange(path, method, name, kindTypeChanged, false))
			}
		}
	}
}

func (d *Differ) diffRequestBody(path, method string, oldOp, newOp normalizer.Operation, changes *[]Change) {
	oldSchema, oldOK := oldOp.RequestBodySchema()
	newSchema, newOK := newOp.RequestBodySchema()
	if !oldOK || !newOK {
		// A body appearing or disappearing outright is not reported;
		// only property-level drift within a body present on both sides is.
		return
	}
	d.diffSchema(path, method, oldSchema, newSchema, changes)
}

func (d *Differ) diffSchema(path, method string, oldSchema, newSchema *normalizer.Schema, changes *[]Change) {
	oldProps := oldSchema.Properties()
	newProps := newSchema.Properties()
	newRequired := newSchema.Required()

	for _, name := range oldProps.Keys() {
		if !newProps.Has(name) {
			*changes = append(*changes, classifySchemaChange(path, method, name, kindRemoved, false))
		}
	}

	for _, name := range newProps.Keys() {
		if !oldProps.Has(name) {
			*changes = append(*changes, classifySchemaChange(path, method, name, kindAdded, newRequired[name]))
		}
	}

	for _, name := range oldProps.Keys() {
		if !newProps.Has(name) {
			continue
		}
		oldType := oldSchema.PropertyType(name)
		newType := newSchema.PropertyType(name)
		if oldType != newType && oldType != "" && newType != "" {
			*changes = append(*changes, classifySchemaChange(path, method, name, kindTypeChanged, false))
		}
	}
}

func (d *Differ) diffResponses(path, method string, oldOp, newOp normalizer.Operation, changes *[]Change) {
	oldResponses := oldOp.Responses()
	newResponses := newOp.Responses()

	for _, statusCode := range oldResponses.Keys() {
		if !newResponses.Has(statusCode) {
			*changes = append(*changes, classifyResponseChange(path, method, statusCode, kindRemoved))
		}
	}
	for _, statusCode := range newResponses.Keys() {
		if !oldResponses.Has(statusCode) {
			*changes = append(*changes, classifyResponseChange(path, method, statusCode, kindAdded))
		}
	}
}
