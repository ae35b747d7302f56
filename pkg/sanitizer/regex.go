package sanitizer

import "regexp"

// Pre-compiled regular expressions, built once at package initialization
// and read-only thereafter.
var (
	// Script and event-handler stripping
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	scriptOpenRegex  = regexp.MustCompile(`(?i)<script\b[^>]*>`)
	eventAttrRegex   = regexp.MustCompile(`(?i)\son\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsProtocolRegex  = regexp.MustCompile(`(?i)javascript\s*:`)

	// Plain-text tag removal
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// SQL injection mitigation
	sqlUnionSelectRegex = regexp.MustCompile(`(?is)\bunion\b.*?\bselect\b`)
	sqlKeywordRegex     = regexp.MustCompile(`(?i)\b(?:select|insert|update|delete|drop|create|alter|exec|union|script)\b`)
	sqlBooleanRegex     = regexp.MustCompile(`(?i)\b(?:or|and)\s+'?\w+'?\s*=\s*'?\w+'?`)
	sqlCommentRegex     = regexp.MustCompile(`(?s)/\*.*?\*/|--|#`)

	// Field normalization
	emailCharRegex      = regexp.MustCompile(`[^a-zA-Z0-9@._-]`)
	emailShapeRegex     = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)
	filenameUnsafeRegex = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	underscoreRunRegex  = regexp.MustCompile(`_+`)
	searchStripRegex    = regexp.MustCompile("[<>'\"&\\\\/]")
	whitespaceRegex     = regexp.MustCompile(`\s+`)
	controlCharRegex    = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

	// Attribute names that no policy may allow (inline event handlers)
	deniedAttrRegex = regexp.MustCompile(`^on\w+$`)
)
