package validator

// ValidateForm applies Validate across every field named in the schema.
// Absent data fields are treated as empty strings; data fields not in the
// schema are ignored. Every schema field is evaluated - a failing field never
// prevents the remaining fields from being checked and reported.
func ValidateForm(data map[string]string, schema Schema) FormResult {
	result := FormResult{
		Valid:     true,
		Errors:    make(map[string]string),
		Sanitized: make(map[string]string, len(schema)),
	}

	for name, field := range schema {
		res := Validate(data[name], field.Kind, field.Rule)
		result.Sanitized[name] = res.Sanitized
		if !res.Valid {
			result.Valid = false
			result.Errors[name] = res.Error
		}
	}

	return result
}
