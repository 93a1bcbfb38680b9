package search

import (
	"strings"
)

// SubstringProvider scores a name by the number of keywords it contains.
// Each keyword adds at most one point no matter how often it occurs.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Score counts the keywords found in name.
func (p *SubstringProvider) Score(name string, kw Keywords) int {
	if p.opts.CaseInsensitive {
		name = strings.ToLower(name)
	}
	score := 0
	for _, token := range kw {
		if token == "" {
			continue
		}
		if strings.Contains(name, token) {
			score++
		}
	}
	return score
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}

// AllTokensProvider only scores names that contain every keyword.
// Matching names score like SubstringProvider, others score zero.
type AllTokensProvider struct {
	inner SubstringProvider
}

// NewAllTokensProvider creates a provider with AND semantics.
func NewAllTokensProvider(opts ...Option) Provider {
	return &AllTokensProvider{
		inner: SubstringProvider{opts: applyOptions(opts)},
	}
}

// Score returns len(kw) when every token matches, zero otherwise.
func (p *AllTokensProvider) Score(name string, kw Keywords) int {
	score := p.inner.Score(name, kw)
	if score < len(kw) {
		return 0
	}
	return score
}

// Name returns the provider name.
func (p *AllTokensProvider) Name() string {
	return "token"
}
