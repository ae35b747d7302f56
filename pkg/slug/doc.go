// Package slug canonicalizes free text into URL-safe slugs.
//
// Diacritics are folded to their ASCII equivalents via Unicode
// decomposition, every other non-alphanumeric run collapses into a single
// separator, and the result is lowercased by default:
//
//	slug.Make("Crème Brûlée Recipe!")              // "creme-brulee-recipe"
//	slug.Make("Hello World", slug.Separator("_")) // "hello_world"
//	slug.Make("a very long title", slug.MaxLength(10))
//
// The package is stateless and safe for concurrent use.
package slug
