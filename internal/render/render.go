package render

import (
	"context"
	"regexp"

	"github.com/goliatone/go-tmplfill/pkg/model"
	pkgrender "github.com/goliatone/go-tmplfill/pkg/render"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
)

var defaultPattern = regexp.MustCompile(pkgtemplate.DefaultTokenPattern)

// Renderer substitutes placeholder tokens line by line, tagging each emitted
// fragment as literal, filled, or unresolved.
type Renderer struct {
	pattern *regexp.Regexp
}

// Ensure the implementation satisfies the public interface.
var _ pkgrender.Renderer = (*Renderer)(nil)

// New constructs a Renderer from pre-resolved options.
func New(options pkgrender.RendererOptions) pkgrender.Renderer {
	pattern := options.Pattern
	if pattern == nil {
		pattern = defaultPattern
	}
	return &Renderer{pattern: pattern}
}

// Render decomposes every template line into an ordered segment sequence.
// Tokens with a non-blank mapped value become filled segments carrying the
// value; missing or blank values leave the original token text in place as an
// unresolved segment. Blank literal fragments are dropped, so a line that is
// all whitespace yields an empty sequence.
func (r *Renderer) Render(ctx context.Context, content string, mapping model.Mapping) ([]model.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := pkgtemplate.SplitLines(content)
	out := make([]model.Line, 0, len(lines))
	for _, line := range lines {
		out = append(out, r.renderLine(line, mapping))
	}
	return out, nil
}

// renderLine walks the line as literal_0, token_0, literal_1, ... literal_k,
// emitting each non-blank literal before its following token's segment. The
// same token occurring twice resolves independently each time.
func (r *Renderer) renderLine(line string, mapping model.Mapping) model.Line {
	var segments model.Line

	prev := 0
	for _, match := range r.pattern.FindAllStringIndex(line, -1) {
		if literal := line[prev:match[0]]; !model.IsBlank(literal) {
			segments = append(segments, model.Segment{Kind: model.SegmentLiteral, Text: literal})
		}

		token := line[match[0]:match[1]]
		if value, ok := mapping[token]; ok && !model.IsBlank(value) {
			segments = append(segments, model.Segment{Kind: model.SegmentFilled, Text: value})
		} else {
			segments = append(segments, model.Segment{Kind: model.SegmentUnresolved, Text: token})
		}
		prev = match[1]
	}

	if trailing := line[prev:]; !model.IsBlank(trailing) {
		segments = append(segments, model.Segment{Kind: model.SegmentLiteral, Text: trailing})
	}
	return segments
}
