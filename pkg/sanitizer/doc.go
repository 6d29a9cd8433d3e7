// Package sanitizer provides content-kind aware sanitization routines for
// untrusted user input: HTML tag allow-listing, plain-text stripping, URL
// scheme filtering, e-mail and phone normalisation, SQL defanging, JSON
// deep-cleaning and output entity encoding.
//
// Every value carries a declared content Kind (text, email, phone, url, html,
// alphanumeric, password) which selects the sanitization routine through an
// enum-keyed dispatch table:
//
//	clean := sanitizer.Sanitize(userInput, sanitizer.KindHTML, sanitizer.Options{
//	    MaxLength: 500,
//	})
//
// The kind-specific helpers are also exported directly (SanitizeHTML,
// SanitizeText, SanitizeURL, SanitizeEmail, SanitizePhone, SanitizeSQL,
// SanitizeJSON, SanitizeFormData, EscapeHTML) for callers that know the
// content type statically.
//
// # Semantics
//
// Sanitizers neutralise injection vectors while preserving benign content.
// Rejecting sanitizers (SanitizeURL, SanitizeEmail, SanitizePhone) signal
// unsanitizable input by returning an empty string rather than an error;
// SanitizeJSON returns nil on unparseable input. Kind sanitizers are
// idempotent: feeding an already sanitized value back through the same kind
// yields the same value. EscapeHTML is the exception - it is an
// output-encoding primitive and re-encodes already escaped text.
//
// # Error handling
//
// None of the helpers returns an error or panics - they always fall back to a
// safe result (empty string or nil) when sanitization fails.
//
// The package is completely stateless and safe for concurrent use.
package sanitizer
