// Package sanitizer is a multi-context content-sanitization engine:
// given untrusted text destined for a particular sink, it transforms the
// input into a form safe for that sink while preserving as much
// legitimate content as possible.
//
// The package is organised around a handful of composable pieces:
//
//   - Entity codec – EscapeEntities/UnescapeEntities over the fixed
//     five-character table (& < > " ').
//
//   - URI validation – SanitizeURL enforces the http/https scheme
//     whitelist and canonicalizes structurally valid URLs.
//
//   - Markup whitelist filtering – FilterHTML walks HTML-like input as a
//     token stream and re-serializes only what a Policy allows. Two
//     built-in policies exist (ArticlePolicy, CommentPolicy); custom ones
//     can be built with NewPolicy or loaded with PolicyFromYAML.
//
//   - Pattern stripping – StripScriptTags, RemoveJavaScriptEvents and
//     StripSQLPatterns provide regex-driven defense-in-depth passes.
//
//   - Field normalizers – SanitizeEmail, SanitizePhone, SanitizeFilename,
//     SanitizeSearchQuery and SanitizeSlug canonicalize individual form
//     fields.
//
//   - Dispatch – Engine maps a ContentType to the correct pipeline.
//
// # Usage
//
//	engine, err := sanitizer.New()
//	if err != nil {
//		// invalid configuration; do not serve
//	}
//
//	safe := engine.Sanitize(userHTML, sanitizer.ContentTypeComment)
//	query := engine.Sanitize(rawQuery, sanitizer.ContentTypeSearch)
//
// Pipelines can also be composed directly:
//
//	clean := sanitizer.Compose(
//		sanitizer.StripTags,
//		sanitizer.NormalizeWhitespace,
//	)
//
// # Error handling
//
// Sanitization is total: every call yields a string, malformed or empty
// input yields an empty or neutral result, and nothing panics. The only
// failure path is configuration-time — building an invalid policy or
// engine returns an error and the engine must not serve.
//
// # Security notes
//
// FilterHTML guarantees that no output interpretable as an executable
// script or disallowed element survives, for any input, including
// adversarial nesting, entity-encoding tricks and mixed-case names.
// StripSQLPatterns, by contrast, is advisory only: it reduces the attack
// surface of text embedded in SQL fragments but is no substitute for
// parameterized queries, which the persistence layer must use regardless.
//
// # Concurrency
//
// All state (policies, the entity table, compiled patterns) is built once
// and never mutated, so every function and a shared Engine are safe for
// concurrent use without locking. Each call completes in time
// proportional to the input length; the engine truncates input beyond a
// configurable cap (1 MiB by default) to bound regex cost.
package sanitizer
