package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// maxKeyLength caps derived keys to keep storage keys short in backends like
// Redis.
const maxKeyLength = 64

// KeyFunc extracts a throttling key from an HTTP request. An empty key skips
// rate limiting for that request.
type KeyFunc func(*http.Request) string

// KeyByIP derives the key from the client IP in RemoteAddr.
func KeyByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// KeyByPath derives the key from the request path, throttling an endpoint as
// a whole.
func KeyByPath(r *http.Request) string {
	return r.URL.Path
}

// Composite joins several key functions into one key. Empty parts are
// dropped; keys longer than 64 characters are hashed to 32 hex characters to
// keep storage keys bounded without losing uniqueness.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			hash := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(hash[:16])
		}

		return combined
	}
}
