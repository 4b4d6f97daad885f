package template

import "path/filepath"

// Source identifies where a configuration template originated so loaders can
// operate on files, fs.FS entries, or in-memory strings without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindFS      SourceKind = "fs"
	SourceKindLiteral SourceKind = "literal"
)

// fileSource identifies on-disk templates.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// ContentSource is implemented by sources that carry their template content
// inline. Loaders short-circuit I/O for these.
type ContentSource interface {
	Source
	Content() string
}

// literalSource carries template content directly, bypassing I/O. Useful for
// tests and for callers that already hold the template text.
type literalSource struct {
	content string
}

func (s literalSource) Location() string {
	return "<literal>"
}

func (s literalSource) Kind() SourceKind {
	return SourceKindLiteral
}

// Content returns the embedded template text.
func (s literalSource) Content() string {
	return s.content
}

// SourceFromString returns a Source wrapping in-memory template content.
func SourceFromString(content string) Source {
	return literalSource{content: content}
}
