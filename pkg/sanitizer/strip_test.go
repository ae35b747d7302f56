package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sanitize/pkg/sanitizer"
)

func TestStripScriptTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes complete script block",
			input:    "<script>alert('xss')</script>Hello",
			expected: "Hello",
		},
		{
			name:     "removes script with attributes",
			input:    `before<script type="text/javascript" src="x.js">bad()</script>after`,
			expected: "beforeafter",
		},
		{
			name:     "removes multiple blocks non-greedily",
			input:    "a<script>x()</script>b<script>y()</script>c",
			expected: "abc",
		},
		{
			name:     "is case-insensitive",
			input:    "<SCRIPT>alert(1)</ScRiPt>",
			expected: "",
		},
		{
			name:     "removes dangling opener without closing tag",
			input:    "<script>alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "spans newlines",
			input:    "<script>\nalert(1)\n</script>x",
			expected: "x",
		},
		{
			name:     "leaves other markup alone",
			input:    "<p>Normal content</p>",
			expected: "<p>Normal content</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripScriptTags(tt.input))
		})
	}
}

func TestRemoveJavaScriptEvents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes double-quoted handler",
			input:    `<div onclick="alert('xss')">content</div>`,
			expected: "<div>content</div>",
		},
		{
			name:     "removes single-quoted handler",
			input:    `<img onerror='steal()'>`,
			expected: "<img>",
		},
		{
			name:     "removes multiple handlers",
			input:    `<div onclick="a()" onmouseover="b()">x</div>`,
			expected: "<div>x</div>",
		},
		{
			name:     "removes javascript protocol substring",
			input:    `<a href="javascript:alert(1)">link</a>`,
			expected: `<a href="alert(1)">link</a>`,
		},
		{
			name:     "is case-insensitive",
			input:    `<div ONCLICK="x()">y</div>`,
			expected: "<div>y</div>",
		},
		{
			name:     "leaves clean markup alone",
			input:    `<a href="https://example.com">ok</a>`,
			expected: `<a href="https://example.com">ok</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveJavaScriptEvents(tt.input))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes tags keeping text",
			input:    "<p>hello <b>world</b></p>",
			expected: "hello world",
		},
		{
			name:     "removes self-closing and broken tags",
			input:    "a<br/>b<img src=x>c",
			expected: "abc",
		},
		{
			name:     "plain text unchanged",
			input:    "no markup here",
			expected: "no markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestStripSQLPatterns(t *testing.T) {
	t.Run("removes boolean idiom and comment marker", func(t *testing.T) {
		result := sanitizer.StripSQLPatterns("1 OR 1=1 -- ")
		assert.NotContains(t, result, "1=1")
		assert.NotContains(t, result, "OR")
		assert.NotContains(t, result, "--")
	})

	t.Run("removes quoted boolean idiom", func(t *testing.T) {
		result := sanitizer.StripSQLPatterns("x' AND 'a'='a")
		assert.NotContains(t, result, "'a'='a")
		assert.NotContains(t, result, "AND")
	})

	t.Run("removes union select sequence", func(t *testing.T) {
		result := sanitizer.StripSQLPatterns("1 UNION ALL SELECT password FROM users")
		assert.NotContains(t, strings.ToUpper(result), "UNION")
		assert.NotContains(t, strings.ToUpper(result), "SELECT")
	})

	t.Run("removes keywords case-insensitively", func(t *testing.T) {
		result := sanitizer.StripSQLPatterns("DrOp table; eXeC xp_cmdshell; create alter insert update delete")
		for _, kw := range []string{"drop", "exec", "create", "alter", "insert", "update", "delete"} {
			assert.NotContains(t, strings.ToLower(result), kw)
		}
	})

	t.Run("removes block comments", func(t *testing.T) {
		result := sanitizer.StripSQLPatterns("id /* hidden */ = 5 # trailing")
		assert.NotContains(t, result, "/*")
		assert.NotContains(t, result, "*/")
		assert.NotContains(t, result, "#")
	})

	t.Run("leaves ordinary prose alone", func(t *testing.T) {
		assert.Equal(t, "the quick brown fox", sanitizer.StripSQLPatterns("the quick brown fox"))
	})
}
