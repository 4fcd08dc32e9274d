// Package severity provides the severity tiers used to classify contract
// drift between two API descriptions.
//
// The three tiers form a closed partition: every detected change belongs to
// exactly one tier, and summary counts over the tiers always total the
// number of changes.
//
// The tiers are ordered from least to most severe:
// NonBreaking < PotentiallyBreaking < Breaking
package severity

import "encoding/json"

// Severity indicates the client impact of a detected change.
type Severity int

const (
	// SeverityNonBreaking indicates a strictly additive, backward-compatible
	// change.
	SeverityNonBreaking Severity = iota

	// SeverityPotentiallyBreaking indicates a change whose effect on clients
	// is ambiguous or depends on their tolerance, such as removal of a
	// non-2xx response. This is also the fail-safe tier: changes that cannot
	// be classified are never treated as safe.
	SeverityPotentiallyBreaking

	// SeverityBreaking indicates a change that can cause a conforming
	// existing client to fail.
	SeverityBreaking
)

// String returns the string representation of the severity tier.
func (s Severity) String() string {
	switch s {
	case SeverityNonBreaking:
		return "non_breaking"
	case SeverityPotentiallyBreaking:
		return "potentially_breaking"
	case SeverityBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its string form so serialized change
// lists carry "breaking" rather than an enum ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML encodes the severity as its string form.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}
