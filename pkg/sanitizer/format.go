package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/sanitize/pkg/slug"
)

// searchQueryLimit is the hard cap applied by SanitizeSearchQuery.
const searchQueryLimit = 200

// SanitizeEmail lower-cases and trims the address, strips every character
// outside [a-zA-Z0-9@._-], then validates the residue against a simple
// local@domain.tld shape. It returns an empty string when the shape check
// fails.
//
// Validation runs after stripping, so a hostile value can be reduced to a
// residue that passes structurally (e.g. a trailing <script> collapses
// into the domain). That ordering is deliberate and documented rather
// than silently corrected; callers needing strict RFC validation should
// verify the result separately.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = emailCharRegex.ReplaceAllString(email, "")
	if !emailShapeRegex.MatchString(email) {
		return ""
	}
	return email
}

// SanitizePhone keeps digits and a single leading +; every other
// character, including interior + signs, is dropped.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	b.Grow(len(phone))
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeFilename replaces every character outside [a-zA-Z0-9.-] with an
// underscore, collapses underscore runs, trims leading and trailing
// underscores, and lower-cases the result.
func SanitizeFilename(filename string) string {
	safe := filenameUnsafeRegex.ReplaceAllString(filename, "_")
	safe = underscoreRunRegex.ReplaceAllString(safe, "_")
	safe = strings.Trim(safe, "_")
	return strings.ToLower(safe)
}

// SanitizeSearchQuery strips the characters < > ' " & \ /, collapses
// whitespace runs to single spaces, trims, and truncates to 200 runes.
// Truncation is a hard cap, not an error.
func SanitizeSearchQuery(query string) string {
	return searchQuery(query, searchQueryLimit)
}

func searchQuery(query string, limit int) string {
	query = searchStripRegex.ReplaceAllString(query, "")
	query = whitespaceRegex.ReplaceAllString(query, " ")
	query = strings.TrimSpace(query)
	return TruncateRunes(query, limit)
}

// SanitizeSlug canonicalizes free text into a URL-safe slug (lowercase,
// hyphen-separated, diacritics folded to ASCII).
func SanitizeSlug(s string) string {
	return slug.Make(s, slug.MaxLength(80))
}

// TruncateRunes truncates a string to at most maxLen runes. Non-positive
// limits yield an empty string.
func TruncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// NormalizeWhitespace collapses consecutive whitespace characters into a
// single space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// MaskEmail hides the local part of an address while preserving the full
// domain for user recognition. Values without a single @ are returned
// unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return email
	}
	if len(parts[0]) == 1 {
		return "*@" + parts[1]
	}
	return string(parts[0][0]) + strings.Repeat("*", len(parts[0])-1) + "@" + parts[1]
}

// MaskPhone shows only the last four digits of a phone number.
func MaskPhone(phone string) string {
	digits := SanitizePhone(phone)
	digits = strings.TrimPrefix(digits, "+")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
