package severity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"non-breaking tier", SeverityNonBreaking, "non_breaking"},
		{"potentially breaking tier", SeverityPotentiallyBreaking, "potentially_breaking"},
		{"breaking tier", SeverityBreaking, "breaking"},

		// Edge cases: invalid severity values
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverityMarshalJSON(t *testing.T) {
	data, err := json.Marshal(SeverityPotentiallyBreaking)
	require.NoError(t, err)
	assert.Equal(t, `"potentially_breaking"`, string(data))
}

func TestSeverityMarshalYAML(t *testing.T) {
	v, err := SeverityBreaking.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "breaking", v)
}
