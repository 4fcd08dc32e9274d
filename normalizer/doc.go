// Package normalizer reshapes parsed OpenAPI 3.x and Swagger 2.0 documents
// into a dialect-neutral form the differ can walk without caring which
// dialect it came from.
//
// Normalization keeps the generic ordered-map tree produced by the parser
// package and narrows it: path items are reduced to their recognized HTTP
// methods with lowercase keys, and operation-level structure (parameters,
// request bodies, response maps, schemas) is exposed through typed accessors
// instead of raw key lookups. Dialect-specific shapes are handled by the two
// Operation implementations, OAS3Operation and Swagger2Operation.
//
// Normalization is lossy on purpose. Anything the differ does not compare,
// such as servers, tags, security, and vendor extensions, is dropped.
package normalizer
