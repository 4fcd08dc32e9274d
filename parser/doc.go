/*
Package parser decodes OpenAPI 3.x and Swagger 2.0 descriptions from JSON or
YAML content into a generic, order-preserving document tree and performs
minimal shape validation.

# Overview

Parsing is deliberately shallow: the parser checks that the content decodes,
that the top level is an object, and that the three keys every description
must carry (a version discriminator, "info", and "paths") are present and
non-empty. Everything deeper is left opaque for the normalizer and differ.

All rejections are terminal and carry a distinguishing reason; see
[github.com/apidrift/apidrift/drifterrors].

# Ordering

Mappings decode into [Map], which records source key order. This is what
makes downstream diffing deterministic: change lists follow the key order of
the input documents rather than Go map iteration order.

# Usage

	p := parser.New()
	result, err := p.Parse(content, parser.SourceFormatAuto)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("dialect: %s\n", result.OASVersion)
*/
package parser
