// Package validator composes the sanitizer package with structural rule
// checks and reports every failure as data rather than an error.
//
// Validate runs a single value through its content-kind sanitizer (unless the
// rule opts out), then applies rules in a fixed order: required, minimum
// length, maximum length, pattern (explicit or implicit per kind) and
// kind-specific semantic checks. The first violated rule wins and its
// human-readable message is returned in the Result alongside the sanitized
// value, so callers can render inline field errors directly:
//
//	res := validator.Validate(input, sanitizer.KindEmail, validator.Rule{
//	    Required: true,
//	})
//	if !res.Valid {
//	    // res.Error is display-ready, res.Sanitized holds the cleaned value
//	}
//
// ValidateForm applies Validate across a named field schema and aggregates
// per-field errors plus the map of sanitized values. Every schema field is
// always evaluated - there is no cross-field short-circuiting.
//
// # Ordering
//
// Sanitization happens before the length checks, and the sanitizer truncates
// to Rule.MaxLength. A MaxLength violation is therefore self-correcting and
// can only surface when sanitization is skipped; only MinLength can
// meaningfully fail on sanitized input.
//
// Nothing in this package returns a Go error or panics for bad input; all
// failure modes are represented in the returned Result.
package validator
