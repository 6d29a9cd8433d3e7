package sanitizer

import (
	"html"
	"strings"
)

// allowedTags is the allow-list of structural and inline formatting tags that
// survive HTML sanitization. Everything else is stripped.
var allowedTags = map[string]bool{
	"p": true, "br": true, "b": true, "i": true, "u": true,
	"strong": true, "em": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "a": true, "code": true, "pre": true,
}

// SanitizeHTML neutralises script injection vectors in HTML fragments while
// retaining allow-listed structural tags. Script, iframe and style blocks are
// removed together with their content, inline event handler attributes and
// executable URL schemes in href/src are dropped, and any tag outside the
// allow-list is stripped. With opts.StripAll every tag is removed and HTML
// entities are decoded to their literal characters. opts.MaxLength truncates
// the final sanitized string. Empty input yields "".
func SanitizeHTML(input string, opts Options) string {
	if input == "" {
		return ""
	}

	result := scriptBlockRegex.ReplaceAllString(input, "")
	result = iframeBlockRegex.ReplaceAllString(result, "")
	result = styleBlockRegex.ReplaceAllString(result, "")
	result = danglingTagRegex.ReplaceAllString(result, "")

	if opts.StripAll {
		result = htmlTagRegex.ReplaceAllString(result, "")
		result = html.UnescapeString(result)
		return truncateRunes(strings.TrimSpace(result), opts.MaxLength)
	}

	result = eventAttrRegex.ReplaceAllString(result, "")
	result = dangerousURLAttrRegex.ReplaceAllString(result, "")
	result = filterTags(result)

	return truncateRunes(result, opts.MaxLength)
}

// filterTags strips every tag whose name is not in the allow-list. Attribute
// content of allowed tags is kept as-is; dangerous attributes were already
// removed by the caller.
func filterTags(s string) string {
	return htmlTagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagNameRegex.FindStringSubmatch(tag)
		if m == nil {
			return ""
		}
		if allowedTags[strings.ToLower(m[1])] {
			return tag
		}
		return ""
	})
}

// truncateRunes clamps s to at most max runes. Zero or negative max means no
// limit.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
