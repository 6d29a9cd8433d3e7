package sanitizer

import "regexp"

// Patterns compiled once and shared across the sanitization routines.
var (
	// Script and iframe blocks are removed together with their content.
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	iframeBlockRegex = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)

	// Dangling opening script/iframe tags without a matching close.
	danglingTagRegex = regexp.MustCompile(`(?i)</?(?:script|iframe)\b[^>]*>`)

	// Inline event handler attributes (onclick, onerror, onload, ...).
	eventAttrRegex = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)

	// href/src attributes carrying executable URL schemes.
	dangerousURLAttrRegex = regexp.MustCompile(`(?i)\s+(?:href|src)\s*=\s*(?:"\s*(?:javascript:|vbscript:|data:text/html)[^"]*"|'\s*(?:javascript:|vbscript:|data:text/html)[^']*'|(?:javascript:|vbscript:|data:text/html)[^\s>]*)`)

	// Generic tag matcher for allow-list filtering and full stripping.
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	tagNameRegex = regexp.MustCompile(`^</?\s*([a-zA-Z][a-zA-Z0-9]*)`)

	// Conservative email shape: local part, @, domain, TLD of 2+ letters.
	// Deliberately permissive about dots inside the domain; the boundary is
	// part of the contract and must not be tightened.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// ASCII control characters stripped from URLs before validation.
	controlCharRegex = regexp.MustCompile(`[\x00-\x1f]`)

	// Phone input: everything except digits and '+' is dropped.
	nonPhoneCharRegex = regexp.MustCompile(`[^0-9+]`)

	// SQL defanging.
	sqlLineCommentRegex  = regexp.MustCompile(`--[^\n]*`)
	sqlBlockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
	sqlKeywordRegex      = regexp.MustCompile(`(?i)\b(?:UNION|SELECT|INSERT|UPDATE|DELETE|DROP|ALTER|CREATE|TRUNCATE|EXEC|EXECUTE)\b`)

	// Alphanumeric filtering.
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)
