// Package drifterrors provides structured error types for apidrift.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between rejected input
// documents and genuine internal failures.
//
// # Error Categories
//
//   - InvalidSpecificationError: an input document was rejected before
//     comparison (empty, malformed, or missing required top-level shape)
//   - ErrUnexpected: a failure inside normalization or diffing that should
//     not occur for a shape-validated document
//
// # Usage with errors.As
//
//	result, err := apidrift.Compare(oldContent, newContent)
//	if err != nil {
//	    var specErr *drifterrors.InvalidSpecificationError
//	    if errors.As(err, &specErr) {
//	        // Map to a client error; specErr.Reason says which check failed.
//	    }
//	}
package drifterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidSpecification indicates an input document was rejected.
	ErrInvalidSpecification = errors.New("invalid specification")

	// ErrUnexpected indicates a failure inside normalization or diffing.
	// Comparison is deterministic, so retrying the same inputs will fail again.
	ErrUnexpected = errors.New("unexpected comparison error")
)

// Reason identifies which validation step rejected an input document.
type Reason string

const (
	// ReasonEmptyInput means the content was empty or whitespace-only.
	ReasonEmptyInput Reason = "empty_input"
	// ReasonSyntax means the content could not be decoded as JSON or YAML.
	ReasonSyntax Reason = "syntax_error"
	// ReasonNotAnObject means the decoded top-level value was not a mapping.
	ReasonNotAnObject Reason = "not_an_object"
	// ReasonMissingVersionDiscriminator means neither an "openapi" nor a
	// "swagger" top-level key was present.
	ReasonMissingVersionDiscriminator Reason = "missing_version_discriminator"
	// ReasonMissingInfo means the document has no "info" key.
	ReasonMissingInfo Reason = "missing_info"
	// ReasonMissingPaths means the document has no "paths" key.
	ReasonMissingPaths Reason = "missing_paths"
	// ReasonUnsupportedFormat means the requested source format was not
	// one of json, yaml, or auto.
	ReasonUnsupportedFormat Reason = "unsupported_format"
)

// InvalidSpecificationError represents an input document rejected by the
// parser. All rejections are terminal for that input: no partial document
// is ever returned alongside one.
type InvalidSpecificationError struct {
	// Reason identifies the validation step that rejected the input.
	Reason Reason
	// Format is the source format being decoded when the rejection happened
	// ("json" or "yaml"), set for syntax errors.
	Format string
	// Message describes the rejection.
	Message string
	// Cause is the underlying decoder error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidSpecificationError) Error() string {
	msg := "invalid specification"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidSpecificationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidSpecificationError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

// NewInvalidSpecification creates an InvalidSpecificationError with a
// formatted message.
func NewInvalidSpecification(reason Reason, format string, args ...any) *InvalidSpecificationError {
	return &InvalidSpecificationError{
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}
