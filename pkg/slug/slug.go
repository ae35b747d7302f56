package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes characters and drops combining marks, turning
// é into e, ñ into n, and so on. Chained transformers carry internal
// state, so a fresh chain is built per call to keep Make safe for
// concurrent use.
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		maxLength: 0, // no limit
		separator: "-",
		lowercase: true,
	}
}

// MaxLength caps the slug at n runes; longer output is truncated at the
// nearest separator boundary.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// Make canonicalizes free text into a URL-safe slug: diacritics are
// folded to ASCII, every run of non-alphanumeric characters collapses
// into a single separator, and leading/trailing separators are trimmed.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if folded, _, err := transform.String(asciiFold(), s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // suppresses a leading separator
	count := 0

	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}

		if r > unicode.MaxASCII {
			// Anything the fold could not reduce becomes a separator.
			r = ' '
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}

		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && count+len(cfg.separator) > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			count += len([]rune(cfg.separator))
		}
	}

	return strings.TrimSuffix(b.String(), cfg.separator)
}
