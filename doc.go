// Package apidrift detects contract drift between two versions of an HTTP API
// description (OpenAPI 3.x or Swagger 2.0, JSON or YAML encoded) and
// classifies every structural difference as breaking, potentially breaking,
// or non-breaking.
//
// # Overview
//
// The library consists of four packages plus this orchestration package:
//
//   - parser: Decode and shape-validate API descriptions into an
//     order-preserving generic document tree
//   - normalizer: Map both dialects onto one dialect-neutral model of
//     paths, methods, parameters, request bodies, and responses
//   - differ: Walk two normalized documents and classify every structural
//     delta against a closed rules table
//   - drifterrors: Structured error types for programmatic handling
//
// The root package exposes the single entry point the outside world calls:
//
//	result, err := apidrift.Compare(oldContent, newContent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("breaking changes: %d\n", result.Summary.Breaking)
//	for _, change := range result.Changes {
//	    fmt.Println(change)
//	}
//
// Formats are auto-detected by default; use WithOldFormat and WithNewFormat
// to pin them:
//
//	result, err := apidrift.Compare(oldJSON, newYAML,
//	    apidrift.WithOldFormat(parser.SourceFormatJSON),
//	    apidrift.WithNewFormat(parser.SourceFormatYAML),
//	)
//
// # Determinism
//
// Comparison is a pure, deterministic transformation: the change list order
// follows the fixed walk order of the differ and the key order of the source
// documents, never map iteration order. Comparing the same two documents
// twice yields byte-identical results.
//
// # Concurrency
//
// A comparison touches no shared mutable state; independent Compare calls
// are safe to run concurrently.
package apidrift
