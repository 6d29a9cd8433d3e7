package sanitizer

import "encoding/json"

// SanitizeJSON parses input as JSON and returns the decoded structure with
// plain-text sanitization applied recursively to every string leaf. Returns
// nil when the input cannot be parsed.
func SanitizeJSON(input string) any {
	var value any
	if err := json.Unmarshal([]byte(input), &value); err != nil {
		return nil
	}
	return cleanJSONValue(value)
}

func cleanJSONValue(value any) any {
	switch v := value.(type) {
	case string:
		return SanitizeText(v, 0)
	case []any:
		for i := range v {
			v[i] = cleanJSONValue(v[i])
		}
		return v
	case map[string]any:
		for key, item := range v {
			v[key] = cleanJSONValue(item)
		}
		return v
	default:
		return value
	}
}
