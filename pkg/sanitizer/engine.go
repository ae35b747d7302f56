package sanitizer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sanitize/pkg/config"
)

// ContentType declares the sink a piece of untrusted text is destined
// for; it selects the sanitization pipeline applied by Engine.Sanitize.
type ContentType string

const (
	ContentTypeArticle   ContentType = "article"
	ContentTypeComment   ContentType = "comment"
	ContentTypeSearch    ContentType = "search"
	ContentTypeUserInput ContentType = "user_input"
	ContentTypeSQL       ContentType = "sql"
	ContentTypeEmail     ContentType = "email"
	ContentTypePhone     ContentType = "phone"
	ContentTypeFilename  ContentType = "filename"
	ContentTypeURL       ContentType = "url"
)

// defaultMaxInputSize bounds worst-case regex cost on hostile input.
const defaultMaxInputSize = 1 << 20 // 1 MiB

// Config carries the engine limits loadable from the environment via
// pkg/config.
type Config struct {
	// MaxInputSize is the byte cap applied before any pipeline runs;
	// longer input is truncated, never rejected.
	MaxInputSize int `env:"SANITIZER_MAX_INPUT_SIZE" envDefault:"1048576"`
	// SearchQueryLimit is the rune cap for the search pipeline.
	SearchQueryLimit int `env:"SANITIZER_SEARCH_QUERY_LIMIT" envDefault:"200"`
}

// Engine is the dispatch façade: it maps a ContentType to an ordered
// pipeline of the package's transformations. All state is immutable
// after New, so a single Engine is safe for concurrent use without
// locking.
type Engine struct {
	article     Policy
	comment     Policy
	maxInput    int
	searchLimit int
	log         *slog.Logger
	userInput   func(string) string
}

// Option configures engine construction.
type Option func(*Engine)

// WithArticlePolicy replaces the built-in article policy.
func WithArticlePolicy(p Policy) Option {
	return func(e *Engine) { e.article = p }
}

// WithCommentPolicy replaces the built-in comment policy.
func WithCommentPolicy(p Policy) Option {
	return func(e *Engine) { e.comment = p }
}

// WithMaxInputSize sets the input byte cap. Non-positive values are
// ignored in favor of the default.
func WithMaxInputSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxInput = n
		}
	}
}

// WithSearchQueryLimit sets the rune cap for the search pipeline.
func WithSearchQueryLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.searchLimit = n
		}
	}
}

// WithConfig applies environment-derived limits.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		if cfg.MaxInputSize > 0 {
			e.maxInput = cfg.MaxInputSize
		}
		if cfg.SearchQueryLimit > 0 {
			e.searchLimit = cfg.SearchQueryLimit
		}
	}
}

// WithLogger enables debug logging of fallback dispatch and input
// truncation. Sanitization itself stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an Engine. It fails only for invalid configuration (an
// empty policy); that failure must prevent the engine from serving any
// request.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		article:     ArticlePolicy(),
		comment:     CommentPolicy(),
		maxInput:    defaultMaxInputSize,
		searchLimit: searchQueryLimit,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.article.valid() || !e.comment.valid() {
		return nil, ErrEmptyPolicy
	}

	// The plain-text pipeline: strip tags, drop the remaining
	// HTML-significant characters, trim. Shared by user_input and the
	// unknown-type fallback.
	e.userInput = Compose(
		StripScriptTags,
		StripTags,
		func(s string) string {
			return strings.Map(func(r rune) rune {
				switch r {
				case '<', '>', '\'', '"', '&':
					return -1
				}
				return r
			}, s)
		},
		strings.TrimSpace,
	)

	return e, nil
}

// NewFromEnv builds an Engine with limits loaded from environment
// variables (and a .env file when present). Explicit options are applied
// on top of the environment.
func NewFromEnv(opts ...Option) (*Engine, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Sanitize transforms content for the declared sink and always returns a
// string: empty input yields an empty result, an unrecognized content
// type falls back to the user_input pipeline, and no input can cause a
// panic or an error. Treat an empty result as "nothing safe could be
// extracted", not as a failure.
func (e *Engine) Sanitize(content string, ct ContentType) string {
	if content == "" {
		return ""
	}
	if len(content) > e.maxInput {
		content = content[:e.maxInput]
		e.debug("input truncated", slog.Int("limit", e.maxInput))
	}

	switch ct {
	case ContentTypeArticle:
		return FilterHTML(content, e.article)
	case ContentTypeComment:
		return FilterHTML(content, e.comment)
	case ContentTypeSearch:
		return searchQuery(content, e.searchLimit)
	case ContentTypeUserInput:
		return e.userInput(content)
	case ContentTypeSQL:
		return StripSQLPatterns(content)
	case ContentTypeEmail:
		return SanitizeEmail(content)
	case ContentTypePhone:
		return SanitizePhone(content)
	case ContentTypeFilename:
		return SanitizeFilename(content)
	case ContentTypeURL:
		return SanitizeURL(content)
	default:
		e.debug("unknown content type, using user_input pipeline", slog.String("content_type", string(ct)))
		return e.userInput(content)
	}
}

func (e *Engine) debug(msg string, attrs ...slog.Attr) {
	if e.log != nil {
		e.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
