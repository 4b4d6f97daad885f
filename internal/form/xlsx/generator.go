// Package xlsx implements the value-form generator and reader on top of
// excelize workbooks.
package xlsx

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Generator writes blank value forms as .xlsx workbooks.
type Generator struct {
	opts pkgform.Options
}

// Ensure the implementation satisfies the public interface.
var _ pkgform.Generator = (*Generator)(nil)

// NewGenerator constructs a Generator from pre-resolved options.
func NewGenerator(options pkgform.Options) pkgform.Generator {
	return &Generator{opts: options}
}

// Generate creates the workbook in the configured directory and returns its
// path. The grid is pre-styled so editors show a working area; column A
// carries the token labels in set order.
func (g *Generator) Generate(ctx context.Context, tokens model.TokenSet) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(g.opts.Dir, "varform-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("form: create workbook file: %w", err)
	}
	path := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("form: close workbook file: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := g.opts.SheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("form: create sheet %q: %w", sheet, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("form: drop default sheet: %w", err)
	}

	if err := g.styleGrid(f, sheet); err != nil {
		return "", err
	}

	for i, token := range tokens.Tokens() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("form: label cell for row %d: %w", i, err)
		}
		if err := f.SetCellStr(sheet, cell, token); err != nil {
			return "", fmt.Errorf("form: write label %q: %w", token, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("form: save workbook: %w", err)
	}
	return path, nil
}

// styleGrid applies the body style across the pre-sized working area.
func (g *Generator) styleGrid(f *excelize.File, sheet string) error {
	if g.opts.GridRows <= 0 || g.opts.GridCols <= 0 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: bodyFontFamily, Size: bodyFontSize},
	})
	if err != nil {
		return fmt.Errorf("form: grid style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(g.opts.GridCols, g.opts.GridRows)
	if err != nil {
		return fmt.Errorf("form: grid extent: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
		return fmt.Errorf("form: apply grid style: %w", err)
	}
	return nil
}

const (
	bodyFontFamily = "Consolas"
	bodyFontSize   = 10
)
