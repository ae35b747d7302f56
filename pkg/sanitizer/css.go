package sanitizer

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// filterStyle parses an inline style attribute and keeps only the
// declarations whose property is allowed by the policy and whose value
// matches the property's validation rule. Disallowed declarations are
// dropped individually, not the whole attribute. An empty string means
// nothing survived (the caller drops the attribute); unparseable CSS is
// dropped entirely.
func filterStyle(value string, p Policy) string {
	decls, err := parser.ParseDeclarations(value)
	if err != nil {
		return ""
	}

	kept := make([]string, 0, len(decls))
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		val := strings.TrimSpace(d.Value)
		rule, ok := p.StyleRule(prop)
		if !ok || !rule.MatchString(val) {
			continue
		}
		kept = append(kept, prop+": "+val)
	}

	return strings.Join(kept, "; ")
}
