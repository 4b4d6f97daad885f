package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tmplfill/internal/render"
	"github.com/goliatone/go-tmplfill/pkg/model"
	pkgrender "github.com/goliatone/go-tmplfill/pkg/render"
)

func renderLines(t *testing.T, content string, mapping model.Mapping) []model.Line {
	t.Helper()

	r := render.New(pkgrender.NewRendererOptions())
	lines, err := r.Render(context.Background(), content, mapping)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return lines
}

func TestRenderer_FilledAndUnresolved(t *testing.T) {
	lines := renderLines(t, "host=$HOST$\nport=$PORT$", model.Mapping{
		"$HOST$": "db01",
		"$PORT$": "",
	})

	want := []model.Line{
		{
			{Kind: model.SegmentLiteral, Text: "host="},
			{Kind: model.SegmentFilled, Text: "db01"},
		},
		{
			{Kind: model.SegmentLiteral, Text: "port="},
			{Kind: model.SegmentUnresolved, Text: "$PORT$"},
		},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_AdjacentTokensDropBlankLiterals(t *testing.T) {
	lines := renderLines(t, "$A$$A$", model.Mapping{"$A$": "x"})

	want := []model.Line{
		{
			{Kind: model.SegmentFilled, Text: "x"},
			{Kind: model.SegmentFilled, Text: "x"},
		},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EmptyTemplate(t *testing.T) {
	lines := renderLines(t, "", model.Mapping{})

	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	if len(lines[0]) != 0 {
		t.Fatalf("segments = %v, want none", lines[0])
	}
}

func TestRenderer_PlainTextLine(t *testing.T) {
	lines := renderLines(t, "plain text, no vars", nil)

	want := []model.Line{
		{{Kind: model.SegmentLiteral, Text: "plain text, no vars"}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WhitespaceOnlyLine(t *testing.T) {
	lines := renderLines(t, "   \t  ", nil)

	if len(lines) != 1 || len(lines[0]) != 0 {
		t.Fatalf("lines = %v, want one empty sequence", lines)
	}
}

func TestRenderer_MissingTokenEqualsBlankValue(t *testing.T) {
	missing := renderLines(t, "x $GONE$ y", model.Mapping{})
	blank := renderLines(t, "x $GONE$ y", model.Mapping{"$GONE$": "  "})

	if diff := cmp.Diff(missing, blank); diff != "" {
		t.Fatalf("missing and blank mappings should render identically (-missing +blank):\n%s", diff)
	}
	want := model.Line{
		{Kind: model.SegmentLiteral, Text: "x "},
		{Kind: model.SegmentUnresolved, Text: "$GONE$"},
		{Kind: model.SegmentLiteral, Text: " y"},
	}
	if diff := cmp.Diff(want, missing[0]); diff != "" {
		t.Fatalf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RepeatedTokenOnOneLine(t *testing.T) {
	lines := renderLines(t, "$A$ and $A$", model.Mapping{"$A$": "v"})

	want := model.Line{
		{Kind: model.SegmentFilled, Text: "v"},
		{Kind: model.SegmentLiteral, Text: " and "},
		{Kind: model.SegmentFilled, Text: "v"},
	}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RoundTripWithFullMapping(t *testing.T) {
	content := "interface $IFACE$\n description link to $PEER$\n mtu $MTU$"
	mapping := model.Mapping{
		"$IFACE$": "ge-0/0/1",
		"$PEER$":  "core-2",
		"$MTU$":   "9000",
	}

	lines := renderLines(t, content, mapping)

	for i, line := range lines {
		if line.Has(model.SegmentUnresolved) {
			t.Fatalf("line %d has unresolved segments: %v", i, line)
		}
	}

	want := []string{
		"interface ge-0/0/1",
		" description link to core-2",
		" mtu 9000",
	}
	for i, line := range lines {
		if got := line.Text(); got != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	content := "a $X$ b $Y$ c"
	mapping := model.Mapping{"$X$": "1"}

	first := renderLines(t, content, mapping)
	second := renderLines(t, content, mapping)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("render not idempotent (-first +second):\n%s", diff)
	}
}

func TestRenderer_CRLFNormalised(t *testing.T) {
	lines := renderLines(t, "a\r\nb", nil)

	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0].Text() != "a" || lines[1].Text() != "b" {
		t.Fatalf("lines = %q, %q", lines[0].Text(), lines[1].Text())
	}
}
