package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

const (
	msgRequired      = "This field is required"
	msgInvalidFormat = "Invalid format"

	msgPasswordLength    = "Password must be at least 8 characters long"
	msgPasswordUppercase = "Password must contain at least one uppercase letter"
	msgPasswordLowercase = "Password must contain at least one lowercase letter"
	msgPasswordDigit     = "Password must contain at least one number"
)

const minPasswordLength = 8

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// Validate checks a single value against its content kind and rule. The value
// is sanitized first unless the rule opts out, so Result.Sanitized is always
// safe to store or render. Checks run in a fixed order and the first failure
// wins: required, minimum length, maximum length, pattern (explicit, or the
// implicit format check for email/phone/url kinds), then the password policy
// for the password kind.
func Validate(value string, kind sanitizer.Kind, rule Rule) Result {
	sanitized := value
	if !rule.SkipSanitize {
		sanitized = sanitizer.Sanitize(value, kind, sanitizer.Options{MaxLength: rule.MaxLength})
	}

	if sanitized == "" {
		if rule.Required {
			return Result{Valid: false, Error: msgRequired, Sanitized: ""}
		}
		return Result{Valid: true, Sanitized: ""}
	}

	length := utf8.RuneCountInString(sanitized)

	if rule.MinLength > 0 && length < rule.MinLength {
		return Result{
			Valid:     false,
			Error:     fmt.Sprintf("Must be at least %d characters", rule.MinLength),
			Sanitized: sanitized,
		}
	}

	// Truncation already enforced the ceiling when sanitization ran; this
	// only fires on raw values.
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return Result{
			Valid:     false,
			Error:     fmt.Sprintf("Must be no more than %d characters", rule.MaxLength),
			Sanitized: sanitized,
		}
	}

	if rule.Pattern != nil {
		if !rule.Pattern.MatchString(sanitized) {
			return Result{Valid: false, Error: msgInvalidFormat, Sanitized: sanitized}
		}
	} else if !matchesKindFormat(sanitized, kind) {
		return Result{Valid: false, Error: msgInvalidFormat, Sanitized: sanitized}
	}

	if kind == sanitizer.KindPassword {
		if msg := checkPassword(sanitized); msg != "" {
			return Result{Valid: false, Error: msg, Sanitized: sanitized}
		}
	}

	return Result{Valid: true, Sanitized: sanitized}
}

// matchesKindFormat applies the implicit format check for kinds that have
// one. The accept/reject boundary is delegated to the sanitizer package's
// rejecting helpers so that both layers agree exactly.
func matchesKindFormat(value string, kind sanitizer.Kind) bool {
	switch kind {
	case sanitizer.KindEmail:
		return sanitizer.SanitizeEmail(value) != ""
	case sanitizer.KindPhone:
		return sanitizer.SanitizePhone(value) != ""
	case sanitizer.KindURL:
		return sanitizer.SanitizeURL(value) != ""
	default:
		return true
	}
}

// checkPassword enforces the password policy in a fixed order: length,
// uppercase, lowercase, digit. The first missing requirement surfaces its own
// message; "" means the policy is satisfied.
func checkPassword(value string) string {
	if utf8.RuneCountInString(value) < minPasswordLength {
		return msgPasswordLength
	}
	if !uppercaseRegex.MatchString(value) {
		return msgPasswordUppercase
	}
	if !lowercaseRegex.MatchString(value) {
		return msgPasswordLowercase
	}
	if !digitRegex.MatchString(value) {
		return msgPasswordDigit
	}
	return ""
}
