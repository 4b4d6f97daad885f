// Package testsupport provides shared helpers for the package-level test
// suites: a canonical context, diff helpers, and spreadsheet fixture
// builders.
package testsupport

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

// Context returns the context used across contract tests.
func Context() context.Context {
	return context.Background()
}

// Diff wraps go-cmp so test suites format mismatches consistently.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// WriteWorkbook builds an .xlsx fixture with the given sheet name and cell
// grid, row by row starting at A1. Useful for form reader and pipeline
// tests.
func WriteWorkbook(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		t.Fatalf("testsupport: new sheet: %v", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("testsupport: delete default sheet: %v", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("testsupport: cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				t.Fatalf("testsupport: set %s: %v", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("testsupport: save workbook: %v", err)
	}
}

// ReadColumn returns the values of one zero-based column from a sheet, one
// entry per row, padding missing cells with empty strings.
func ReadColumn(t *testing.T, path, sheet string, col int) []string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("testsupport: open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("testsupport: read sheet: %v", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			out = append(out, row[col])
		} else {
			out = append(out, "")
		}
	}
	return out
}
