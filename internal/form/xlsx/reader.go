package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/model"
)

// Reader loads filled value forms and derives per-instance mappings.
type Reader struct {
	opts pkgform.Options
}

// Ensure the implementation satisfies the public interface.
var _ pkgform.Reader = (*Reader)(nil)

// NewReader constructs a Reader from pre-resolved options.
func NewReader(options pkgform.Options) pkgform.Reader {
	return &Reader{opts: options}
}

// Read opens the workbook and builds one Mapping per instance column from the
// first sheet. Lookups are positional: whatever sits in column A of a row is
// the token that row's values belong to.
func (r *Reader) Read(ctx context.Context, path string) ([]model.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("form: workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("form: read sheet %q: %w", sheet, err)
	}

	last := lastInstanceColumn(rows)
	mappings := make([]model.Mapping, 0, last)
	for col := 1; col <= last; col++ {
		mapping := model.Mapping{}
		for _, row := range rows {
			if len(row) == 0 || row[0] == "" {
				continue
			}
			value := ""
			if col < len(row) {
				value = row[col]
			}
			mapping[row[0]] = value
		}
		mappings = append(mappings, mapping)
	}
	return mappings, nil
}

// lastInstanceColumn returns the highest zero-based column index past the
// label column that holds at least one non-blank value. Trailing all-blank
// columns are editor residue, not instances.
func lastInstanceColumn(rows [][]string) int {
	last := 0
	for _, row := range rows {
		for col := len(row) - 1; col >= 1; col-- {
			if !model.IsBlank(row[col]) {
				if col > last {
					last = col
				}
				break
			}
		}
	}
	return last
}
