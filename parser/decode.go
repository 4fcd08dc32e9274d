package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// nodeToValue converts a decoded yaml.Node into plain Go values, using *Map
// for mappings so that source key order survives the conversion. YAML 1.2 is
// a superset of JSON, so the same conversion serves both source formats.
func nodeToValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		// Comment-only or empty documents leave the node unset; they decode
		// to nil the same way an explicit null document does.
		return nil, nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0])

	case yaml.AliasNode:
		return nodeToValue(n.Alias)

	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				// Non-string mapping keys fall back to their raw scalar text.
				key = n.Content[i].Value
			}
			value, err := nodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, value)
		}
		return m, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding scalar at line %d: %w", n.Line, err)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}
