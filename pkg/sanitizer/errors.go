package sanitizer

import "errors"

// Package-specific errors. Sanitization itself is total and never fails;
// only policy and engine construction can return errors.
var (
	// ErrEmptyPolicy is returned when a policy is built without any allowed tags.
	ErrEmptyPolicy = errors.New("policy has no allowed tags")

	// ErrDeniedAttribute is returned when a policy tries to whitelist an event-handler attribute.
	ErrDeniedAttribute = errors.New("policy whitelists a denied attribute")

	// ErrInvalidStyleRule is returned when a CSS value rule is not a valid regular expression.
	ErrInvalidStyleRule = errors.New("invalid CSS value rule")

	// ErrInvalidPolicyDocument is returned when a YAML policy document cannot be parsed.
	ErrInvalidPolicyDocument = errors.New("invalid policy document")
)
