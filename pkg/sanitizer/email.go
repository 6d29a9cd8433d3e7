package sanitizer

import "strings"

// SanitizeEmail trims and lowercases an email address, then validates it
// against a conservative shape (local part, @, domain, TLD of at least two
// letters). Returns the normalised address or "" when the shape is invalid.
func SanitizeEmail(input string) string {
	email := strings.ToLower(strings.TrimSpace(input))
	if email == "" {
		return ""
	}
	if !emailRegex.MatchString(email) {
		return ""
	}
	return email
}

// sanitizeEmailKind normalises an email value for validation without
// rejecting it: trim and lowercase only, leaving shape judgement to the
// validator's format check.
func sanitizeEmailKind(input string, opts Options) string {
	email := strings.ToLower(strings.TrimSpace(input))
	return truncateRunes(email, opts.MaxLength)
}
