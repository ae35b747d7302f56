package sanitizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy is an immutable whitelist consumed by FilterHTML: a mapping from
// tag name to the attribute names allowed on it, plus a mapping from CSS
// property name to a value-validation rule for style attributes.
//
// Event-handler attributes (on*) are denied globally; no policy can
// whitelist them, and NewPolicy rejects any attempt to do so.
type Policy struct {
	name   string
	tags   map[string]map[string]bool
	styles map[string]*regexp.Regexp
}

// bodyStrippedTags lose their content along with the tag, unlike ordinary
// disallowed tags whose text is retained.
var bodyStrippedTags = map[string]bool{
	"script": true,
	"style":  true,
}

// NewPolicy builds a Policy from a tag→attributes map and a CSS
// property→value-rule map. Rules are regular expressions matched against
// individual declaration values. Construction fails for an empty tag map,
// a whitelisted event-handler attribute, or an uncompilable style rule;
// a policy that fails to build must prevent the engine from serving.
func NewPolicy(name string, tags map[string][]string, styles map[string]string) (Policy, error) {
	if len(tags) == 0 {
		return Policy{}, ErrEmptyPolicy
	}

	p := Policy{
		name:   name,
		tags:   make(map[string]map[string]bool, len(tags)),
		styles: make(map[string]*regexp.Regexp, len(styles)),
	}

	for tag, attrs := range tags {
		tag = strings.ToLower(tag)
		set := make(map[string]bool, len(attrs))
		for _, attr := range attrs {
			attr = strings.ToLower(attr)
			if deniedAttrRegex.MatchString(attr) {
				return Policy{}, fmt.Errorf("%w: %s on <%s>", ErrDeniedAttribute, attr, tag)
			}
			set[attr] = true
		}
		p.tags[tag] = set
	}

	for prop, rule := range styles {
		re, err := regexp.Compile(rule)
		if err != nil {
			return Policy{}, errors.Join(fmt.Errorf("%w: %s", ErrInvalidStyleRule, prop), err)
		}
		p.styles[strings.ToLower(prop)] = re
	}

	return p, nil
}

// Name returns the policy's identifier.
func (p Policy) Name() string { return p.name }

// AllowsTag reports whether the tag survives filtering under this policy.
func (p Policy) AllowsTag(tag string) bool {
	_, ok := p.tags[strings.ToLower(tag)]
	return ok
}

// AllowsAttr reports whether the attribute is whitelisted for the tag.
// Event-handler attributes are always denied, whatever the policy says.
func (p Policy) AllowsAttr(tag, attr string) bool {
	attr = strings.ToLower(attr)
	if deniedAttrRegex.MatchString(attr) {
		return false
	}
	attrs, ok := p.tags[strings.ToLower(tag)]
	return ok && attrs[attr]
}

// StyleRule returns the value-validation rule for a CSS property, if the
// policy allows that property at all.
func (p Policy) StyleRule(property string) (*regexp.Regexp, bool) {
	re, ok := p.styles[strings.ToLower(property)]
	return re, ok
}

func (p Policy) valid() bool { return len(p.tags) > 0 }

// policyDocument is the YAML shape accepted by PolicyFromYAML.
type policyDocument struct {
	Name   string              `yaml:"name"`
	Tags   map[string][]string `yaml:"tags"`
	Styles map[string]string   `yaml:"styles"`
}

// PolicyFromYAML builds a custom Policy from a YAML document:
//
//	name: docs
//	tags:
//	  p: []
//	  a: [href, title]
//	styles:
//	  color: "^[a-zA-Z]+$"
//
// Parsing or validation failures return an error; this is the
// configuration-time failure path and should abort startup.
func PolicyFromYAML(data []byte) (Policy, error) {
	var doc policyDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Policy{}, errors.Join(ErrInvalidPolicyDocument, err)
	}
	return NewPolicy(doc.Name, doc.Tags, doc.Styles)
}

// cssColorRule accepts named colors, hex values, and rgb()/rgba() forms.
const cssColorRule = `^(?:[a-zA-Z]+|#[0-9a-fA-F]{3,8}|rgba?\(\s*[\d.,\s%]+\s*\))$`

var (
	articlePolicy = mustPolicy("article", map[string][]string{
		"h1": nil, "h2": nil, "h3": nil, "h4": nil, "h5": nil, "h6": nil,
		"p":  {"style"},
		"br": nil, "hr": nil,
		"b": nil, "strong": nil, "i": nil, "em": nil, "u": nil, "s": nil,
		"sup": nil, "sub": nil,
		"a":   {"href", "title"},
		"img": {"src", "alt", "title", "width", "height"},
		"ul":  nil, "ol": nil, "li": nil,
		"table": nil, "thead": nil, "tbody": nil, "tr": nil,
		"th": {"colspan", "rowspan"},
		"td": {"colspan", "rowspan"},
		"blockquote": {"cite"},
		"code":       nil, "pre": nil,
		"span": {"style"},
	}, map[string]string{
		"color":            cssColorRule,
		"background-color": cssColorRule,
		"text-align":       `^(?:left|right|center|justify)$`,
		"font-weight":      `^(?:normal|bold|bolder|lighter|[1-9]00)$`,
		"font-style":       `^(?:normal|italic|oblique)$`,
		"text-decoration":  `^(?:none|underline|line-through)$`,
	})

	commentPolicy = mustPolicy("comment", map[string][]string{
		"p":  nil,
		"br": nil,
		"b":  nil, "strong": nil,
		"i": nil, "em": nil,
		"u": nil,
		"a": {"href"},
	}, nil)
)

// ArticlePolicy returns the permissive built-in policy for rendered
// article bodies: headings, lists, tables, links, images, and limited
// inline styling.
func ArticlePolicy() Policy { return articlePolicy }

// CommentPolicy returns the restrictive built-in policy for user
// comments: paragraphs, line breaks, basic formatting, and links.
func CommentPolicy() Policy { return commentPolicy }

func mustPolicy(name string, tags map[string][]string, styles map[string]string) Policy {
	p, err := NewPolicy(name, tags, styles)
	if err != nil {
		panic(fmt.Sprintf("built-in policy %q: %v", name, err))
	}
	return p
}
