package template

import (
	"context"
	"regexp"

	"github.com/goliatone/go-tmplfill/pkg/model"
)

// DefaultTokenPattern matches `$NAME$` placeholders: a dollar sign, one or
// more word characters, and a closing dollar sign.
const DefaultTokenPattern = `\$\w+\$`

// Scanner extracts the ordered set of unique placeholder tokens from a
// template document. Scanning the same document twice yields identical
// sequences.
type Scanner interface {
	Scan(ctx context.Context, doc Document) (model.TokenSet, error)
}

// ScannerOptions configures token recognition.
type ScannerOptions struct {
	// Pattern overrides the placeholder expression. Nil keeps the default
	// `$NAME$` form.
	Pattern *regexp.Regexp
}

// ScannerOption mutates ScannerOptions prior to construction.
type ScannerOption func(*ScannerOptions)

// WithTokenPattern overrides the placeholder pattern. Passing nil keeps the
// default.
func WithTokenPattern(pattern *regexp.Regexp) ScannerOption {
	return func(opts *ScannerOptions) {
		opts.Pattern = pattern
	}
}

// NewScannerOptions applies a set of ScannerOption values and returns the
// resulting configuration.
func NewScannerOptions(options ...ScannerOption) ScannerOptions {
	cfg := ScannerOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
