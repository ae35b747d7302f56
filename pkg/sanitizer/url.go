package sanitizer

import (
	"html"
	"net/url"
	"strings"
)

// SanitizeURL validates a link or resource URL against the http/https
// scheme whitelist and returns its canonical form. Any other scheme
// (javascript:, data:, file:), a missing scheme, or unparseable syntax
// yields an empty string; the function never returns an error.
//
// The candidate is entity-decoded and stripped of control characters
// before the scheme is inspected, so encoded smuggling attempts like
// &#106;avascript: are rejected rather than passed through.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	decoded := html.UnescapeString(raw)
	decoded = controlCharRegex.ReplaceAllString(decoded, "")
	decoded = strings.TrimSpace(decoded)

	u, err := url.Parse(decoded)
	if err != nil {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ""
	}
	if u.Host == "" {
		return ""
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	return u.String()
}
