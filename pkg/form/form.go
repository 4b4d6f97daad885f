// Package form exposes the value-form contracts: generating the blank
// spreadsheet users fill in, and reading the filled instances back as token
// mappings. The spreadsheet implementation lives under internal/form/xlsx.
package form

import (
	"context"

	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Generator writes a blank value form listing the tokens as row labels and
// returns the path to the artifact. Row i, column 0 of the first sheet holds
// tokens[i]; every later column is reserved for one fill-in instance.
type Generator interface {
	Generate(ctx context.Context, tokens model.TokenSet) (string, error)
}

// Reader consumes a filled value form and returns one Mapping per instance
// column, in increasing column order. Trailing columns with no non-blank
// value are not instances.
type Reader interface {
	Read(ctx context.Context, path string) ([]model.Mapping, error)
}

// Options configures form generation and reading.
type Options struct {
	// SheetName is the worksheet holding labels and values. Defaults to
	// "Variables".
	SheetName string

	// GridRows and GridCols pre-size the blank grid so spreadsheet editors
	// show room for extra instance columns. The sizing is a usability
	// affordance only; the label column contract holds regardless.
	GridRows int
	GridCols int

	// Dir is where generated forms are created. Empty means the OS temp
	// directory.
	Dir string
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithSheetName overrides the worksheet name.
func WithSheetName(name string) Option {
	return func(opts *Options) {
		if name != "" {
			opts.SheetName = name
		}
	}
}

// WithGridSize overrides the blank grid dimensions. Non-positive values keep
// the defaults.
func WithGridSize(rows, cols int) Option {
	return func(opts *Options) {
		if rows > 0 {
			opts.GridRows = rows
		}
		if cols > 0 {
			opts.GridCols = cols
		}
	}
}

// WithDir sets the directory generated forms are written into.
func WithDir(dir string) Option {
	return func(opts *Options) {
		opts.Dir = dir
	}
}

// NewOptions applies a set of Option values over the defaults and returns the
// resulting configuration.
func NewOptions(options ...Option) Options {
	cfg := Options{
		SheetName: "Variables",
		GridRows:  500,
		GridCols:  50,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
