package parser

import "strings"

// DetectFormat guesses the serialization format from the content itself.
// Content whose first non-whitespace byte is '{' is treated as JSON;
// anything else is treated as YAML. This is a best-effort heuristic, not a
// content-type check.
func DetectFormat(content string) SourceFormat {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if strings.HasPrefix(trimmed, "{") {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
