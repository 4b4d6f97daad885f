package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
)

// Loader implements pkgtemplate.Loader by delegating to file, fs.FS, or
// literal strategies. Construction helpers live in the top-level tmplfill
// package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgtemplate.LoaderOptions) pkgtemplate.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a template from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgtemplate.Source) (pkgtemplate.Document, error) {
	if src == nil {
		return pkgtemplate.Document{}, errors.New("template loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgtemplate.Document{}, err
	}

	if content, ok := src.(pkgtemplate.ContentSource); ok {
		return pkgtemplate.NewDocument(src, content.Content())
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgtemplate.SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case pkgtemplate.SourceKindFS:
		if l.fs == nil {
			return pkgtemplate.Document{}, errors.New("template loader: no filesystem configured for fs source")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	default:
		err = fmt.Errorf("template loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgtemplate.Document{}, err
	}

	return pkgtemplate.NewDocument(src, string(data))
}
