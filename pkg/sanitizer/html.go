package sanitizer

import (
	"strings"

	"golang.org/x/net/html"
)

// voidElements have no closing tag and are serialized self-closed.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// FilterHTML walks the input as a token stream and re-serializes only
// what the policy allows. It is tolerant of malformed and unbalanced
// markup and never fails; the worst input yields an empty string.
//
// Disallowed tags are dropped while their text content is kept, except
// for script and style whose content is dropped along with the tag.
// Attributes survive only when whitelisted for their tag; style values
// are filtered declaration-by-declaration, and href/src values must pass
// SanitizeURL or the attribute is dropped (the tag itself is kept — a
// deterministic choice over dropping the whole element). All text nodes
// and attribute values are entity-escaped on output, and tag/attribute
// matching is case-insensitive, so no markup smuggled through text
// content or mixed-case names survives filtering.
//
// Filtering is idempotent: running output through the same policy again
// changes nothing.
func FilterHTML(input string, p Policy) string {
	if input == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(input))
	var b strings.Builder
	b.Grow(len(input))

	// Depth inside script/style whose content must not be emitted.
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or unrecoverable garbage; either way we are done.
			return b.String()

		case html.TextToken:
			if skip == 0 {
				b.WriteString(EscapeEntities(z.Token().Data))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			tag := strings.ToLower(tok.Data)
			if bodyStrippedTags[tag] {
				if tok.Type == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip > 0 || !p.AllowsTag(tag) {
				continue
			}
			writeTag(&b, tag, tok, p)

		case html.EndTagToken:
			tag := strings.ToLower(z.Token().Data)
			if bodyStrippedTags[tag] {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip > 0 || !p.AllowsTag(tag) || voidElements[tag] {
				continue
			}
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')

		case html.CommentToken, html.DoctypeToken:
			// Comments and doctypes never survive.
		}
	}
}

func writeTag(b *strings.Builder, tag string, tok html.Token, p Policy) {
	b.WriteByte('<')
	b.WriteString(tag)

	for _, attr := range tok.Attr {
		key := strings.ToLower(attr.Key)
		if !p.AllowsAttr(tag, key) {
			continue
		}

		val := attr.Val
		switch key {
		case "style":
			if val = filterStyle(val, p); val == "" {
				continue
			}
		case "href", "src":
			if val = SanitizeURL(val); val == "" {
				continue
			}
		}

		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(EscapeEntities(val))
		b.WriteByte('"')
	}

	if voidElements[tag] || tok.Type == html.SelfClosingTagToken {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
}
