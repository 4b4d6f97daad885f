// Package xlsx writes the output report as an excelize workbook: one column
// per fill-in instance, one row per template line, with literal text,
// substituted values, and unresolved tokens styled distinctly.
package xlsx

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-tmplfill/pkg/model"
	"github.com/goliatone/go-tmplfill/pkg/report"
)

const (
	defaultSheetName   = "Output"
	defaultColumnWidth = 95

	fontFamily     = "Consolas"
	fontSize       = 10
	highlightColor = "1F7A1F"
	errorColor     = "C00000"
)

// Option configures the writer before construction.
type Option func(*Writer)

// WithSheetName overrides the output worksheet name.
func WithSheetName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.sheet = name
		}
	}
}

// WithColumnWidth overrides the fixed visual width applied to every instance
// column. The width is independent of content.
func WithColumnWidth(width float64) Option {
	return func(w *Writer) {
		if width > 0 {
			w.colWidth = width
		}
	}
}

// Writer implements report.Writer for .xlsx artifacts.
type Writer struct {
	sheet    string
	colWidth float64
}

// Ensure the implementation satisfies the public interface.
var _ report.Writer = (*Writer)(nil)

// New constructs an xlsx report writer with defaults (sheet "Output", column
// width 95).
func New(options ...Option) (report.Writer, error) {
	w := &Writer{
		sheet:    defaultSheetName,
		colWidth: defaultColumnWidth,
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
	return "xlsx"
}

// Extension reports the artifact file extension.
func (w *Writer) Extension() string {
	return ".xlsx"
}

// Write assembles all instance columns into one workbook and finalises it
// exactly once. Columns are written strictly in the order given; a failure
// aborts the whole write and may leave no artifact behind.
func (w *Writer) Write(ctx context.Context, path string, columns [][]model.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(w.sheet)
	if err != nil {
		return fmt.Errorf("report: create sheet %q: %w", w.sheet, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("report: drop default sheet: %w", err)
	}

	styles, err := newStyleTable(f)
	if err != nil {
		return err
	}

	for col, lines := range columns {
		if err := w.writeColumn(f, styles, col, lines); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save workbook %q: %w", path, err)
	}
	return nil
}

// writeColumn writes one instance's rendered lines into one sheet column.
// The row index advances once per template line no matter how many segments
// the line produced.
func (w *Writer) writeColumn(f *excelize.File, styles styleTable, col int, lines []model.Line) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Errorf("report: column name for %d: %w", col, err)
	}
	if err := f.SetColWidth(w.sheet, name, name, w.colWidth); err != nil {
		return fmt.Errorf("report: set width of column %s: %w", name, err)
	}

	for row, line := range lines {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return fmt.Errorf("report: cell for row %d: %w", row, err)
		}
		if err := writeCell(f, w.sheet, cell, styles, line); err != nil {
			return err
		}
	}
	return nil
}

// writeCell applies the per-line styling rule. The cases are evaluated in
// priority order and are mutually exclusive; an empty segment sequence leaves
// the cell blank.
func writeCell(f *excelize.File, sheet, cell string, styles styleTable, line model.Line) error {
	hasLiteral := line.Has(model.SegmentLiteral)
	hasFilled := line.Has(model.SegmentFilled)
	hasUnresolved := line.Has(model.SegmentUnresolved)

	last, ok := line.Last()
	if !ok {
		return nil
	}

	switch {
	case hasLiteral && (hasFilled || hasUnresolved):
		runs := make([]excelize.RichTextRun, 0, len(line))
		for _, seg := range line {
			runs = append(runs, excelize.RichTextRun{
				Text: seg.Text,
				Font: styles.fontFor(report.StyleFor(seg.Kind)),
			})
		}
		if err := f.SetCellRichText(sheet, cell, runs); err != nil {
			return fmt.Errorf("report: write rich cell %s: %w", cell, err)
		}
		return styles.apply(f, sheet, cell, report.StyleBody)
	case hasUnresolved && !hasFilled:
		return writeStyled(f, sheet, cell, styles, report.StyleError, trimRight(last.Text))
	case hasFilled:
		return writeStyled(f, sheet, cell, styles, report.StyleHighlight, trimRight(last.Text))
	default:
		return writeStyled(f, sheet, cell, styles, report.StyleBody, last.Text)
	}
}

func writeStyled(f *excelize.File, sheet, cell string, styles styleTable, style report.Style, text string) error {
	if err := f.SetCellStr(sheet, cell, text); err != nil {
		return fmt.Errorf("report: write cell %s: %w", cell, err)
	}
	return styles.apply(f, sheet, cell, style)
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// styleTable holds the workbook style IDs and the matching rich-text fonts
// for each visual treatment.
type styleTable struct {
	ids   map[report.Style]int
	fonts map[report.Style]*excelize.Font
}

func newStyleTable(f *excelize.File) (styleTable, error) {
	fonts := map[report.Style]*excelize.Font{
		report.StyleBody:      {Family: fontFamily, Size: fontSize},
		report.StyleHighlight: {Family: fontFamily, Size: fontSize, Bold: true, Color: highlightColor},
		report.StyleError:     {Family: fontFamily, Size: fontSize, Bold: true, Color: errorColor},
	}

	ids := make(map[report.Style]int, len(fonts))
	for style, font := range fonts {
		id, err := f.NewStyle(&excelize.Style{Font: font})
		if err != nil {
			return styleTable{}, fmt.Errorf("report: build %s style: %w", style, err)
		}
		ids[style] = id
	}
	return styleTable{ids: ids, fonts: fonts}, nil
}

func (t styleTable) apply(f *excelize.File, sheet, cell string, style report.Style) error {
	if err := f.SetCellStyle(sheet, cell, cell, t.ids[style]); err != nil {
		return fmt.Errorf("report: style cell %s: %w", cell, err)
	}
	return nil
}

func (t styleTable) fontFor(style report.Style) *excelize.Font {
	return t.fonts[style]
}
