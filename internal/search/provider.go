// Package search ranks roster entries against a keyword set.
// Scoring strategies (any keyword, all keywords) sit behind a common
// Provider interface so the CLI and the TUI share one ranking pass.
package search

import (
	"strings"
)

// Keywords is a set of lowercase, non-empty search tokens.
// Repeated tokens are kept; each occurrence scores on its own.
type Keywords []string

// ParseKeywords splits text on whitespace and lowercases every token.
func ParseKeywords(text string) Keywords {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	kw := make(Keywords, 0, len(fields))
	for _, f := range fields {
		kw = append(kw, strings.ToLower(f))
	}
	return kw
}

// IsEmpty reports whether there are no tokens.
func (k Keywords) IsEmpty() bool {
	return len(k) == 0
}

// String joins the tokens back with single spaces.
func (k Keywords) String() string {
	return strings.Join(k, " ")
}

// Provider scores a display name against keywords.
// A score of zero excludes the entry from the ranked view.
type Provider interface {
	// Score returns how strongly name matches kw.
	Score(name string, kw Keywords) int

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, names are lowercased before matching
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Mode names a scoring strategy.
const (
	ModeAny = "any"
	ModeAll = "all"
)

// NewProvider returns the provider for mode, falling back to ModeAny.
func NewProvider(mode string, opts ...Option) Provider {
	if strings.EqualFold(mode, ModeAll) {
		return NewAllTokensProvider(opts...)
	}
	return NewSubstringProvider(opts...)
}
