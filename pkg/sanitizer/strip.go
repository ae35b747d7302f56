package sanitizer

// StripScriptTags removes complete <script>...</script> blocks
// (non-greedy, case-insensitive) and any dangling <script> opener left
// without a closing tag.
func StripScriptTags(s string) string {
	s = scriptBlockRegex.ReplaceAllString(s, "")
	return scriptOpenRegex.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes inline event-handler attributes
// (onclick, onload, and every other on* form) and literal javascript:
// protocol references.
func RemoveJavaScriptEvents(s string) string {
	s = eventAttrRegex.ReplaceAllString(s, "")
	return jsProtocolRegex.ReplaceAllString(s, "")
}

// StripTags removes every HTML-like tag, keeping only text content. It is
// the lightweight pass used by the plain-text pipeline; markup destined
// for rendering goes through FilterHTML instead.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// StripSQLPatterns removes common SQL injection fragments: the keyword
// set (SELECT, INSERT, UPDATE, DELETE, DROP, CREATE, ALTER, EXEC, UNION,
// SCRIPT), UNION...SELECT sequences, boolean idioms such as OR 1=1 and
// AND 'x'='x', and comment markers (--, #, /* */).
//
// This is a best-effort mitigation for text that ends up inside SQL
// fragments. It is not a substitute for parameterized queries; the
// persistence layer must bind parameters regardless.
func StripSQLPatterns(s string) string {
	s = sqlUnionSelectRegex.ReplaceAllString(s, "")
	s = sqlKeywordRegex.ReplaceAllString(s, "")
	s = sqlBooleanRegex.ReplaceAllString(s, "")
	return sqlCommentRegex.ReplaceAllString(s, "")
}
