package differ

import "strings"

// ReasonUnclassified marks a change whose structural kind matched no rule.
// It is deliberately absent from every rule table so it takes the
// fail-safe defaults: potentially breaking severity and the generic
// message. Unrecognized changes must never read as safe.
const ReasonUnclassified Reason = "unclassified_change"

// changeKind is the structural shape of a difference before a rule is
// assigned.
type changeKind int

const (
	kindAdded changeKind = iota
	kindRemoved
	kindTypeChanged
)

func newChange(reason Reason, category ChangeCategory, path, method, field string) Change {
	return Change{
		Type:     SeverityFor(reason),
		Category: category,
		Path:     path,
		Method:   method,
		Field:    field,
		Message:  MessageFor(reason),
	}
}

func classifyEndpointRemoval(path string) Change {
	return newChange(ReasonEndpointRemoved, CategoryEndpoint, path, "", "")
}

func classifyEndpointAddition(path string) Change {
	return newChange(ReasonEndpointAdded, CategoryEndpoint, path, "", "")
}

func classifyMethodRemoval(path, method string) Change {
	return newChange(ReasonMethodRemoved, CategoryMethod, path, strings.ToUpper(method), "")
}

func classifyMethodAddition(path, method string) Change {
	return newChange(ReasonMethodAdded, CategoryMethod, path, strings.ToUpper(method), "")
}

// classifyParameterChange classifies a single parameter difference. The
// required flag only matters for additions, where it decides between the
// breaking and non-breaking rule.
func classifyParameterChange(path, method, name string, kind changeKind, required bool) Change {
	method = strings.ToUpper(method)
	switch kind {
	case kindRemoved:
		return newChange(ReasonParameterRemoved, CategoryParameter, path, method, name)
	case kindAdded:
		if required {
			return newChange(ReasonRequiredParameterAdded, CategoryParameter, path, method, name)
		}
		return newChange(ReasonOptionalParameterAdded, CategoryParameter, path, method, name)
	case kindTypeChanged:
		return newChange(ReasonParameterTypeChanged, CategoryParameter, path, method, name)
	default:
		return newChange(ReasonUnclassified, CategoryParameter, path, method, name)
	}
}

// classifySchemaChange classifies a request body property difference.
func classifySchemaChange(path, method, field string, kind changeKind, required bool) Change {
	method = strings.ToUpper(method)
	switch kind {
	case kindRemoved:
		return newChange(ReasonFieldRemoved, CategorySchema, path, method, field)
	case kindAdded:
		if required {
			return newChange(ReasonRequiredFieldAdded, CategorySchema, path, method, field)
		}
		return newChange(ReasonOptionalFieldAdded, CategorySchema, path, method, field)
	case kindTypeChanged:
		return newChange(ReasonFieldTypeChanged, CategorySchema, path, method, field)
	default:
		return newChange(ReasonUnclassified, CategorySchema, path, method, field)
	}
}

// classifyResponseChange classifies a response status code difference.
// Losing a 2xx status breaks success handling outright; losing any other
// status may still break clients that branch on it.
func classifyResponseChange(path, method, statusCode string, kind changeKind) Change {
	method = strings.ToUpper(method)
	field := "Response " + statusCode
	switch kind {
	case kindRemoved:
		if strings.HasPrefix(statusCode, "2") {
			return newChange(ReasonSuccessResponseRemoved, CategoryResponse, path, method, field)
		}
		return newChange(ReasonNon2xxResponseRemoved, CategoryResponse, path, method, field)
	case kindAdded:
		return Change{
			Type:     SeverityNonBreaking,
			Category: CategoryResponse,
			Path:     path,
			Method:   method,
			Field:    field,
			Message:  "New response status",
		}
	default:
		return newChange(ReasonUnclassified, CategoryResponse, path, method, field)
	}
}
