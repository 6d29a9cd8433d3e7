package sanitizer

import (
	"html"
	"strings"
)

// SanitizeText strips all tags unconditionally, decodes HTML entities back to
// literal characters, trims surrounding whitespace and truncates to maxLength
// runes when maxLength is positive. Empty input yields "".
func SanitizeText(input string, maxLength int) string {
	if input == "" {
		return ""
	}

	result := scriptBlockRegex.ReplaceAllString(input, "")
	result = styleBlockRegex.ReplaceAllString(result, "")
	result = htmlTagRegex.ReplaceAllString(result, "")
	result = html.UnescapeString(result)
	result = strings.TrimSpace(result)

	return truncateRunes(result, maxLength)
}

// sanitizeAlphanumericKind keeps only ASCII letters and digits.
func sanitizeAlphanumericKind(input string, opts Options) string {
	result := nonAlphanumericRegex.ReplaceAllString(input, "")
	return truncateRunes(result, opts.MaxLength)
}

// EscapeHTML entity-encodes every character with meaning in HTML markup or
// attribute context: & < > " ' ` = and /. It is an output-encoding primitive,
// not a sanitizer - it does not attempt to understand existing markup and is
// deliberately not idempotent (already escaped text is escaped again).
func EscapeHTML(input string) string {
	return htmlEscaper.Replace(input)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"`", "&#x60;",
	"=", "&#x3D;",
	"/", "&#x2F;",
)
