// Package report exposes the output-writer contract and the registry used to
// discover writers by name. Writers turn rendered line columns into a
// write-once artifact; styling is derived from segment kinds so the rendering
// logic stays independent of any output medium.
package report

import (
	"context"

	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Style identifies one of the three visual treatments writers apply.
type Style string

const (
	// StyleBody is the treatment for literal template text.
	StyleBody Style = "body"
	// StyleHighlight marks substituted values.
	StyleHighlight Style = "highlight"
	// StyleError marks unresolved tokens.
	StyleError Style = "error"
)

// StyleFor maps a segment kind to its visual treatment.
func StyleFor(kind model.SegmentKind) Style {
	switch kind {
	case model.SegmentFilled:
		return StyleHighlight
	case model.SegmentUnresolved:
		return StyleError
	default:
		return StyleBody
	}
}

// Writer assembles rendered instance columns into one output artifact.
// Columns arrive in instance order and must appear in the artifact in that
// same order; the artifact is finalised exactly once, and a failed write
// leaves no guarantee about its completeness.
type Writer interface {
	Name() string
	Extension() string
	Write(ctx context.Context, path string, columns [][]model.Line) error
}
