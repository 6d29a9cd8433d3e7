package sanitizer

import "strings"

// SanitizeSQL strips SQL metacharacters and statement keywords commonly used
// in injection payloads: comments, semicolons, quotes and keywords such as
// UNION, SELECT or DROP in any casing. This is a defense-in-depth layer only
// and never a substitute for parameterized queries.
func SanitizeSQL(input string) string {
	result := sqlBlockCommentRegex.ReplaceAllString(input, "")
	result = sqlLineCommentRegex.ReplaceAllString(result, "")
	result = sqlKeywordRegex.ReplaceAllString(result, "")

	result = strings.ReplaceAll(result, ";", "")
	result = strings.ReplaceAll(result, "'", "")
	result = strings.ReplaceAll(result, `"`, "")

	return strings.TrimSpace(result)
}
