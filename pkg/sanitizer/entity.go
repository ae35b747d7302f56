package sanitizer

import "strings"

// entityTable is the fixed bidirectional mapping between the five
// HTML-significant characters and their entities. It is the single source
// of truth for both EscapeEntities and UnescapeEntities and is never
// mutated after initialization.
var entityTable = []struct {
	char   string
	entity string
}{
	{"&", "&amp;"}, // must stay first so escaping never double-encodes
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#39;"},
}

var (
	entityEscaper   *strings.Replacer
	entityUnescaper *strings.Replacer
)

func init() {
	escape := make([]string, 0, len(entityTable)*2)
	unescape := make([]string, 0, len(entityTable)*2)
	for _, e := range entityTable {
		escape = append(escape, e.char, e.entity)
		unescape = append(unescape, e.entity, e.char)
	}
	entityEscaper = strings.NewReplacer(escape...)
	entityUnescaper = strings.NewReplacer(unescape...)
}

// EscapeEntities replaces each of the five HTML-significant characters
// (& < > " ') with its named entity in a single left-to-right pass.
func EscapeEntities(s string) string {
	if s == "" {
		return ""
	}
	return entityEscaper.Replace(s)
}

// UnescapeEntities reverses EscapeEntities for the five entities in the
// table and no others; unknown entities such as &nbsp; pass through
// unchanged.
//
// UnescapeEntities(EscapeEntities(s)) == s for any s. The reverse does not
// hold for input that already contains literal entity sequences, which is
// an accepted limitation of the fixed five-entry table.
func UnescapeEntities(s string) string {
	if s == "" {
		return ""
	}
	return entityUnescaper.Replace(s)
}
