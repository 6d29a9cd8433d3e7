package sanitizer

import "strings"

// SanitizeFormData applies kind-appropriate sanitization to the string values
// of a mixed-type form payload, choosing the kind by field-name heuristic:
// fields named like "email" get email normalisation, "phone" gets phone
// normalisation, "url"/"link"/"website" get URL cleanup, everything else is
// treated as plain text. String slices are mapped element-wise (one level);
// numbers, booleans and nested objects pass through unchanged.
func SanitizeFormData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for name, value := range data {
		out[name] = sanitizeFormValue(name, value)
	}
	return out
}

func sanitizeFormValue(name string, value any) any {
	kind := kindForField(name)

	switch v := value.(type) {
	case string:
		return sanitizeFieldValue(kind, v)
	case []string:
		mapped := make([]string, len(v))
		for i, item := range v {
			mapped[i] = sanitizeFieldValue(kind, item)
		}
		return mapped
	case []any:
		mapped := make([]any, len(v))
		for i, item := range v {
			if s, ok := item.(string); ok {
				mapped[i] = sanitizeFieldValue(kind, s)
			} else {
				mapped[i] = item
			}
		}
		return mapped
	default:
		return value
	}
}

// sanitizeFieldValue uses the rejecting helpers so an unsanitizable value
// becomes "" instead of passing through half-cleaned.
func sanitizeFieldValue(kind Kind, value string) string {
	switch kind {
	case KindEmail:
		return SanitizeEmail(value)
	case KindPhone:
		return SanitizePhone(value)
	case KindURL:
		return SanitizeURL(value)
	default:
		return SanitizeText(value, 0)
	}
}

// kindForField guesses the content kind from the field name.
func kindForField(name string) Kind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "email"):
		return KindEmail
	case strings.Contains(lower, "phone") || strings.Contains(lower, "tel"):
		return KindPhone
	case strings.Contains(lower, "url") || strings.Contains(lower, "link") || strings.Contains(lower, "website"):
		return KindURL
	default:
		return KindText
	}
}
