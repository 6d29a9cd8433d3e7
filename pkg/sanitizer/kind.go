package sanitizer

// Kind is the declared semantic type of a string value. It selects the
// sanitization routine applied by Sanitize and the implicit validation rules
// used by the validator package.
type Kind string

const (
	KindText         Kind = "text"
	KindEmail        Kind = "email"
	KindPhone        Kind = "phone"
	KindURL          Kind = "url"
	KindHTML         Kind = "html"
	KindAlphanumeric Kind = "alphanumeric"
	KindPassword     Kind = "password"
)

// Options carries per-call sanitization overrides. The zero value applies no
// length limit and default tag handling.
type Options struct {
	// MaxLength truncates the final sanitized string to at most this many
	// runes. Zero means unlimited.
	MaxLength int

	// AllowHTML routes text-kind values through the HTML sanitizer so
	// allow-listed structural tags survive instead of being stripped.
	AllowHTML bool

	// StripAll removes every tag when sanitizing HTML, leaving only text
	// content with entities decoded.
	StripAll bool
}

// byKind maps each content kind to its sanitization routine. Unknown kinds
// fall back to plain-text sanitization, the safest default.
var byKind = map[Kind]func(string, Options) string{
	KindText: func(s string, o Options) string {
		if o.AllowHTML {
			return SanitizeHTML(s, o)
		}
		return SanitizeText(s, o.MaxLength)
	},
	KindHTML:         SanitizeHTML,
	KindEmail:        sanitizeEmailKind,
	KindPhone:        sanitizePhoneKind,
	KindURL:          sanitizeURLKind,
	KindAlphanumeric: sanitizeAlphanumericKind,
	KindPassword:     func(s string, o Options) string { return SanitizeText(s, o.MaxLength) },
}

// Sanitize cleans value according to its declared content kind. It never
// rejects input outright: kinds with a reject-capable helper (email, phone,
// url) are normalised here and left for the validator to judge, so that an
// invalid value survives sanitization and can produce a format error instead
// of silently vanishing.
func Sanitize(value string, kind Kind, opts Options) string {
	fn, ok := byKind[kind]
	if !ok {
		fn = byKind[KindText]
	}
	return fn(value, opts)
}
