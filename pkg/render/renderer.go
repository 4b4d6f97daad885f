// Package render exposes the substitution renderer contract. The renderer is
// pure: given identical content and mapping it produces identical segment
// sequences, with no I/O and no side effects.
package render

import (
	"context"
	"regexp"

	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Renderer decomposes template content into styled line segments, replacing
// placeholder tokens with mapped values. One model.Line is produced per
// template line, in template order.
type Renderer interface {
	Render(ctx context.Context, content string, mapping model.Mapping) ([]model.Line, error)
}

// RendererOptions configures token recognition for the renderer. The pattern
// must match the one used during scanning or positional form lookups will
// miss.
type RendererOptions struct {
	Pattern *regexp.Regexp
}

// RendererOption mutates RendererOptions prior to construction.
type RendererOption func(*RendererOptions)

// WithTokenPattern overrides the placeholder pattern. Passing nil keeps the
// default.
func WithTokenPattern(pattern *regexp.Regexp) RendererOption {
	return func(opts *RendererOptions) {
		opts.Pattern = pattern
	}
}

// NewRendererOptions applies a set of RendererOption values and returns the
// resulting configuration.
func NewRendererOptions(options ...RendererOption) RendererOptions {
	cfg := RendererOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
