package validator

import (
	"regexp"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Rule holds the structural constraints applied to a single value. The zero
// value sanitizes the input and accepts anything.
type Rule struct {
	// Required fails validation when the (sanitized) value is empty.
	Required bool

	// MinLength is the minimum accepted length in runes. Zero disables the
	// check.
	MinLength int

	// MaxLength is both the sanitizer's truncation ceiling and the maximum
	// accepted length in runes. Because truncation runs first, this check can
	// only fail when SkipSanitize is set.
	MaxLength int

	// Pattern overrides the implicit kind-specific format check.
	Pattern *regexp.Regexp

	// SkipSanitize validates the raw value as-is. The default (false) runs
	// the kind-appropriate sanitizer first.
	SkipSanitize bool
}

// Result is the outcome of validating a single value. Sanitized reflects the
// sanitized (possibly truncated) input whenever sanitization ran, even on
// failure; with SkipSanitize it echoes the raw value.
type Result struct {
	Valid     bool
	Error     string
	Sanitized string
}

// Field binds a content kind and a rule to one form field.
type Field struct {
	Kind sanitizer.Kind
	Rule Rule
}

// Schema maps field names to their validation configuration. Order does not
// matter.
type Schema map[string]Field

// FormResult aggregates per-field validation outcomes. Errors contains only
// failing fields; Sanitized contains every schema field.
type FormResult struct {
	Valid     bool
	Errors    map[string]string
	Sanitized map[string]string
}
