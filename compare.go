package apidrift

import (
	"fmt"

	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/drifterrors"
	"github.com/apidrift/apidrift/normalizer"
	"github.com/apidrift/apidrift/parser"
)

// CompareOption configures a single Compare call.
type CompareOption func(*compareConfig)

type compareConfig struct {
	oldFormat parser.SourceFormat
	newFormat parser.SourceFormat
	logger    parser.Logger
}

// WithOldFormat sets the source format of the old document.
// Default: auto-detection.
func WithOldFormat(format parser.SourceFormat) CompareOption {
	return func(cfg *compareConfig) {
		cfg.oldFormat = format
	}
}

// WithNewFormat sets the source format of the new document.
// Default: auto-detection.
func WithNewFormat(format parser.SourceFormat) CompareOption {
	return func(cfg *compareConfig) {
		cfg.newFormat = format
	}
}

// WithLogger sets the logger used while parsing both documents.
// Default: no logging.
func WithLogger(logger parser.Logger) CompareOption {
	return func(cfg *compareConfig) {
		cfg.logger = logger
	}
}

// Compare parses, normalizes, and diffs two API descriptions and returns
// the classified changes with a severity summary.
//
// Both inputs are validated before comparison; a rejected input surfaces
// as a drifterrors.InvalidSpecificationError wrapped with which side was
// at fault. Any panic escaping normalization or diffing is recovered here
// and returned as an error wrapping drifterrors.ErrUnexpected, so Compare
// never panics on caller input.
func Compare(oldContent, newContent string, opts ...CompareOption) (result *differ.DiffResult, err error) {
	cfg := &compareConfig{
		oldFormat: parser.SourceFormatAuto,
		newFormat: parser.SourceFormatAuto,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: comparison failed: %v", drifterrors.ErrUnexpected, r)
		}
	}()

	p := parser.New()
	if cfg.logger != nil {
		p.Logger = cfg.logger
	}

	oldParsed, err := p.Parse(oldContent, cfg.oldFormat)
	if err != nil {
		return nil, fmt.Errorf("old specification: %w", err)
	}
	newParsed, err := p.Parse(newContent, cfg.newFormat)
	if err != nil {
		return nil, fmt.Errorf("new specification: %w", err)
	}

	oldDoc := normalizer.Normalize(oldParsed.Data)
	newDoc := normalizer.Normalize(newParsed.Data)

	changes := differ.Diff(oldDoc, newDoc)
	summary := differ.Summarize(changes)

	return &differ.DiffResult{
		OldVersion:         oldDoc.Version,
		OldDialect:         oldDoc.Dialect,
		NewVersion:         newDoc.Version,
		NewDialect:         newDoc.Dialect,
		Summary:            summary,
		Changes:            changes,
		HasBreakingChanges: summary.Breaking > 0,
	}, nil
}
