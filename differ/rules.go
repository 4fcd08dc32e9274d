package differ

// Reason identifies the classification rule a change matched. Reasons are
// stable identifiers; the human-readable text lives in the rule tables.
type Reason string

// Reasons for breaking changes.
const (
	ReasonEndpointRemoved        Reason = "endpoint_removed"
	ReasonMethodRemoved          Reason = "method_removed"
	ReasonRequiredParameterAdded Reason = "required_parameter_added"
	ReasonParameterRemoved       Reason = "parameter_removed"
	ReasonParameterTypeChanged   Reason = "parameter_type_changed"
	ReasonRequiredFieldAdded     Reason = "required_field_added"
	ReasonFieldRemoved           Reason = "field_removed"
	ReasonFieldTypeChanged       Reason = "field_type_changed"
	ReasonEnumValueRemoved       Reason = "enum_value_removed"
	ReasonSuccessResponseRemoved Reason = "success_response_removed"
)

// Reasons for potentially breaking changes.
const (
	ReasonNon2xxResponseRemoved Reason = "non_2xx_response_removed"
	ReasonEnumValueAdded        Reason = "enum_value_added"
	ReasonDefaultValueRemoved   Reason = "default_value_removed"
)

// Reasons for non-breaking changes.
const (
	ReasonEndpointAdded          Reason = "endpoint_added"
	ReasonMethodAdded            Reason = "method_added"
	ReasonOptionalParameterAdded Reason = "optional_parameter_added"
	ReasonOptionalFieldAdded     Reason = "optional_field_added"
	ReasonResponseFieldAdded     Reason = "response_field_added"
	ReasonMetadataChanged        Reason = "metadata_changed"
)

var breakingRules = map[Reason]string{
	ReasonEndpointRemoved:        "Endpoint removed",
	ReasonMethodRemoved:          "HTTP method removed",
	ReasonRequiredParameterAdded: "Required request parameter added",
	ReasonParameterRemoved:       "Parameter removed",
	ReasonParameterTypeChanged:   "Parameter type changed",
	ReasonRequiredFieldAdded:     "Required request body field added",
	ReasonFieldRemoved:           "Request/response field removed",
	ReasonFieldTypeChanged:       "Field type changed",
	ReasonEnumValueRemoved:       "Enum value removed",
	ReasonSuccessResponseRemoved: "Success response (2xx) removed",
}

var potentiallyBreakingRules = map[Reason]string{
	ReasonNon2xxResponseRemoved: "Non-2xx response removed",
	ReasonEnumValueAdded:        "Enum value added",
	ReasonDefaultValueRemoved:   "Default value removed",
}

var nonBreakingRules = map[Reason]string{
	ReasonEndpointAdded:          "New endpoint",
	ReasonMethodAdded:            "New HTTP method",
	ReasonOptionalParameterAdded: "New optional parameter",
	ReasonOptionalFieldAdded:     "New optional request field",
	ReasonResponseFieldAdded:     "New response field",
	ReasonMetadataChanged:        "Metadata-only changes",
}

// SeverityFor returns the severity bucket a reason belongs to. A reason
// outside every table defaults to potentially breaking so that unmodeled
// changes fail toward caution rather than silence.
func SeverityFor(reason Reason) Severity {
	if _, ok := breakingRules[reason]; ok {
		return SeverityBreaking
	}
	if _, ok := potentiallyBreakingRules[reason]; ok {
		return SeverityPotentiallyBreaking
	}
	if _, ok := nonBreakingRules[reason]; ok {
		return SeverityNonBreaking
	}
	return SeverityPotentiallyBreaking
}

// MessageFor returns the human-readable text for a reason, or "Unknown
// change" when the reason matches no rule.
func MessageFor(reason Reason) string {
	if msg, ok := breakingRules[reason]; ok {
		return msg
	}
	if msg, ok := potentiallyBreakingRules[reason]; ok {
		return msg
	}
	if msg, ok := nonBreakingRules[reason]; ok {
		return msg
	}
	return "Unknown change"
}
