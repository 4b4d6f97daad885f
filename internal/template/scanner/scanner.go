package scanner

import (
	"context"
	"regexp"

	"github.com/goliatone/go-tmplfill/pkg/model"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
)

var defaultPattern = regexp.MustCompile(pkgtemplate.DefaultTokenPattern)

// Scanner extracts placeholder tokens left to right, keeping the first
// occurrence of each distinct token string.
type Scanner struct {
	pattern *regexp.Regexp
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Scanner = (*Scanner)(nil)

// New constructs a Scanner from pre-resolved options.
func New(options pkgtemplate.ScannerOptions) pkgtemplate.Scanner {
	pattern := options.Pattern
	if pattern == nil {
		pattern = defaultPattern
	}
	return &Scanner{pattern: pattern}
}

// Scan returns the deduplicated, ordered token set for the document. Zero
// matches and empty content are valid and yield an empty set.
func (s *Scanner) Scan(ctx context.Context, doc pkgtemplate.Document) (model.TokenSet, error) {
	if err := ctx.Err(); err != nil {
		return model.TokenSet{}, err
	}

	var set model.TokenSet
	for _, token := range s.pattern.FindAllString(doc.Content(), -1) {
		set.Add(token)
	}
	return set, nil
}
