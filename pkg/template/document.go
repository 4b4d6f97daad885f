package template

import (
	"errors"
	"strings"
)

// Document wraps a loaded template and its origin. Content is immutable once
// loaded; an empty template is valid and simply yields no tokens.
type Document struct {
	source  Source
	content string
}

// NewDocument constructs a Document wrapper while validating the origin.
func NewDocument(src Source, content string) (Document, error) {
	if src == nil {
		return Document{}, errors.New("template: source is required")
	}
	return Document{source: src, content: content}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, content string) Document {
	doc, err := NewDocument(src, content)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Content returns the raw template text.
func (d Document) Content() string {
	return d.content
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Lines splits the content into template lines. Windows line endings are
// normalised first so line counts stay stable across platforms. Empty content
// yields a single empty line.
func (d Document) Lines() []string {
	return SplitLines(d.content)
}

// SplitLines applies the document line-splitting rule to arbitrary content so
// renderers and documents agree on line boundaries.
func SplitLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
