// Package html writes the output report as a standalone HTML preview: one
// table cell per fill-in instance, one span per segment. Template and form
// content is caller-supplied, so every segment text passes through a strict
// bluemonday policy before it is embedded.
package html

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-tmplfill/pkg/model"
	"github.com/goliatone/go-tmplfill/pkg/report"
)

const defaultTitle = "Template fill preview"

// Option configures the writer before construction.
type Option func(*Writer)

// WithTitle overrides the page title.
func WithTitle(title string) Option {
	return func(w *Writer) {
		if title != "" {
			w.title = title
		}
	}
}

// Writer implements report.Writer for HTML preview artifacts.
type Writer struct {
	title  string
	policy *bluemonday.Policy
}

// Ensure the implementation satisfies the public interface.
var _ report.Writer = (*Writer)(nil)

// New constructs an HTML preview writer.
func New(options ...Option) (report.Writer, error) {
	w := &Writer{
		title:  defaultTitle,
		policy: bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// Name reports the writer identifier.
func (w *Writer) Name() string {
	return "html"
}

// Extension reports the artifact file extension.
func (w *Writer) Extension() string {
	return ".html"
}

// Write renders all instance columns into one HTML document and writes it in
// a single pass.
func (w *Writer) Write(ctx context.Context, path string, columns [][]model.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", w.policy.Sanitize(w.title))
	b.WriteString("<style>\n")
	b.WriteString("pre { font: 10pt/1.4 monospace; margin: 0; }\n")
	b.WriteString("td { vertical-align: top; padding: 0 1.5em 0 0; }\n")
	b.WriteString(".body { color: #000; }\n")
	b.WriteString(".highlight { color: #1f7a1f; font-weight: 600; }\n")
	b.WriteString(".error { color: #c00000; font-weight: 600; }\n")
	b.WriteString("</style>\n</head>\n<body>\n<table>\n<tr>\n")

	for _, lines := range columns {
		b.WriteString("<td><pre>")
		for _, line := range lines {
			w.writeLine(&b, line)
			b.WriteString("\n")
		}
		b.WriteString("</pre></td>\n")
	}

	b.WriteString("</tr>\n</table>\n</body>\n</html>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("report: write preview %q: %w", path, err)
	}
	return nil
}

func (w *Writer) writeLine(b *strings.Builder, line model.Line) {
	for _, seg := range line {
		fmt.Fprintf(b, "<span class=%q>%s</span>", string(report.StyleFor(seg.Kind)), w.policy.Sanitize(seg.Text))
	}
}
