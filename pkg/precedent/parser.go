package precedent

import "context"

// Parser recovers the ordered logical-element sequence from a precedent
// document. Conditional selections are not needed at parse time; visibility is
// evaluated later against the recorded block tags.
type Parser interface {
	Parse(ctx context.Context, doc Document) ([]Element, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// StrictTags rejects unknown bracket tags instead of treating them as
	// ordinary text. Defaults to false: the tag pattern only matches the
	// enumerated set, so unknown tags flow through as content.
	StrictTags bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithStrictTags toggles rejection of unrecognised bracket tags.
func WithStrictTags(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.StrictTags = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level letter package to avoid import cycles.
