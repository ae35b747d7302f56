package sanitizer_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sanitize/pkg/sanitizer"
)

func TestFilterHTML(t *testing.T) {
	article := sanitizer.ArticlePolicy()
	comment := sanitizer.CommentPolicy()

	tests := []struct {
		name     string
		input    string
		policy   sanitizer.Policy
		expected string
	}{
		{
			name:     "keeps allowed markup",
			input:    "<p>hello <b>world</b></p>",
			policy:   comment,
			expected: "<p>hello <b>world</b></p>",
		},
		{
			name:     "drops script tag and its content",
			input:    "<p>hi<script>alert(1)</script>there</p>",
			policy:   comment,
			expected: "<p>hithere</p>",
		},
		{
			name:     "drops style tag and its content",
			input:    "<style>body{display:none}</style><p>ok</p>",
			policy:   comment,
			expected: "<p>ok</p>",
		},
		{
			name:     "drops disallowed tag but keeps its text",
			input:    "<div>hello <blink>world</blink></div>",
			policy:   comment,
			expected: "hello world",
		},
		{
			name:     "mixed-case script does not survive",
			input:    "<ScRiPt>alert(1)</sCrIpT>visible",
			policy:   comment,
			expected: "visible",
		},
		{
			name:     "drops event-handler attributes",
			input:    `<p onclick="alert(1)" ONMOUSEOVER="x()">hi</p>`,
			policy:   comment,
			expected: "<p>hi</p>",
		},
		{
			name:     "drops javascript src but keeps the img",
			input:    `<img src="javascript:alert(1)">`,
			policy:   article,
			expected: "<img />",
		},
		{
			name:     "keeps validated http src",
			input:    `<img src="https://cdn.example.com/a.png" alt="pic">`,
			policy:   article,
			expected: `<img src="https://cdn.example.com/a.png" alt="pic" />`,
		},
		{
			name:     "drops entity-encoded javascript href",
			input:    `<a href="java&#115;cript:alert(1)">x</a>`,
			policy:   comment,
			expected: "<a>x</a>",
		},
		{
			name:     "keeps whitelisted link",
			input:    `<a href="https://example.com" target="_blank">x</a>`,
			policy:   comment,
			expected: `<a href="https://example.com">x</a>`,
		},
		{
			name:     "escapes text content",
			input:    "a < b & c",
			policy:   comment,
			expected: "a &lt; b &amp; c",
		},
		{
			name:     "strips comments and doctype",
			input:    "<!DOCTYPE html><!-- sneaky --><p>x</p>",
			policy:   comment,
			expected: "<p>x</p>",
		},
		{
			name:     "filters style declarations individually",
			input:    `<span style="color: red; position: absolute">x</span>`,
			policy:   article,
			expected: `<span style="color: red">x</span>`,
		},
		{
			name:     "drops style attribute when nothing survives",
			input:    `<span style="position: absolute">x</span>`,
			policy:   article,
			expected: "<span>x</span>",
		},
		{
			name:     "rejects expression-style values",
			input:    `<span style="color: expression(alert(1))">x</span>`,
			policy:   article,
			expected: "<span>x</span>",
		},
		{
			name:     "tolerates unbalanced markup",
			input:    "<b>bold<i>both</b>",
			policy:   comment,
			expected: "<b>bold<i>both</b>",
		},
		{
			name:     "handles empty input",
			input:    "",
			policy:   comment,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FilterHTML(tt.input, tt.policy))
		})
	}
}

var eventAttrPattern = regexp.MustCompile(`(?i)on\w+\s*=`)

func TestFilterHTMLSecurityInvariant(t *testing.T) {
	// No output may contain an executable script or a surviving event
	// handler, whatever the input shape.
	inputs := []string{
		`<script>alert(1)</script>`,
		`<SCRIPT SRC="https://evil.example/x.js"></SCRIPT>`,
		`<scr<script>ipt>alert(1)</script>`,
		`<img src=x onerror=alert(1)>`,
		`<a href="javascript:alert(1)" onclick="alert(2)">x</a>`,
		`<p onmouseover="steal()">hover</p>`,
		`<<script>script>alert(1)<</script>/script>`,
		`<svg/onload=alert(1)>`,
		`<iframe srcdoc="<script>alert(1)</script>"></iframe>`,
		"<style>@import 'https://evil.example/x.css';</style>",
		`<a href="&#106;&#97;vascript:alert(1)">x</a>`,
	}

	for _, policy := range []sanitizer.Policy{sanitizer.ArticlePolicy(), sanitizer.CommentPolicy()} {
		for _, input := range inputs {
			out := sanitizer.FilterHTML(input, policy)
			lower := strings.ToLower(out)
			assert.NotContains(t, lower, "<script", "input: %s", input)
			assert.False(t, eventAttrPattern.MatchString(out), "input: %s, output: %s", input, out)
		}
	}
}

func TestFilterHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"<p>hello <b>world</b></p>",
		`<img src="https://cdn.example.com/a.png" alt="a < b">`,
		`<span style="color: red; text-align: center">x</span>`,
		"<div>text <script>alert(1)</script> more</div>",
		"a < b & \"c\" 'd'",
		"<b>unbalanced<i>markup</b>",
	}

	for _, policy := range []sanitizer.Policy{sanitizer.ArticlePolicy(), sanitizer.CommentPolicy()} {
		for _, input := range inputs {
			once := sanitizer.FilterHTML(input, policy)
			twice := sanitizer.FilterHTML(once, policy)
			assert.Equal(t, once, twice, "input: %s", input)
		}
	}
}

func TestFilterHTMLWithCustomPolicy(t *testing.T) {
	p, err := sanitizer.NewPolicy("code-only", map[string][]string{
		"code": nil,
		"pre":  nil,
	}, nil)
	require.NoError(t, err)

	out := sanitizer.FilterHTML(`<pre><code class="go">x := 1</code></pre><p>prose</p>`, p)
	assert.Equal(t, "<pre><code>x := 1</code></pre>prose", out)
}
