package sanitizer

import "strings"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15 // E.164 upper bound
)

// SanitizePhone strips everything except digits and a single leading '+'.
// Returns "" when the resulting digit count falls outside the plausible
// 7-15 digit range.
func SanitizePhone(input string) string {
	normalized := sanitizePhoneKind(input, Options{})
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return ""
	}
	return normalized
}

// sanitizePhoneKind normalises a phone value for validation without length
// rejection: formatting characters are dropped, a single leading '+' is
// preserved.
func sanitizePhoneKind(input string, opts Options) string {
	trimmed := strings.TrimSpace(input)
	plus := strings.HasPrefix(trimmed, "+")

	digits := nonPhoneCharRegex.ReplaceAllString(trimmed, "")
	digits = strings.ReplaceAll(digits, "+", "")

	if plus {
		digits = "+" + digits
	}
	return truncateRunes(digits, opts.MaxLength)
}
