// Package differ compares two normalized API descriptions and reports each
// difference as a classified Change.
//
// The walk is structural and order-preserving: endpoints, methods,
// parameters, request body fields, and responses are compared in the key
// order of the source documents, removals before additions at each level.
// Comparing the same pair of documents always yields the same changes in
// the same order.
//
// Classification is rule-driven. Every change carries one of three
// severities: breaking (clients will fail), potentially breaking (clients
// may fail depending on usage), or non-breaking (purely additive). A
// change that matches no rule is reported as potentially breaking rather
// than dropped.
//
//	oldDoc := normalizer.Normalize(oldParsed.Data)
//	newDoc := normalizer.Normalize(newParsed.Data)
//	changes := differ.Diff(oldDoc, newDoc)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
package differ
