package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/statement-parser/internal/models"
)

// ExcelWriter writes a parsed result to an .xlsx workbook, the format the
// statement tooling downstream expects.
type ExcelWriter struct {
	// SheetName overrides the default "Transactions" sheet name.
	SheetName string
}

func (w *ExcelWriter) sheet() string {
	if w.SheetName != "" {
		return w.SheetName
	}
	return "Transactions"
}

// WriteToFile writes the result to an .xlsx file at the given path.
func (w *ExcelWriter) WriteToFile(path string, res *models.Result) error {
	f, err := w.build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// Write streams the workbook to the given writer.
func (w *ExcelWriter) Write(out io.Writer, res *models.Result) error {
	f, err := w.build(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *ExcelWriter) build(res *models.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := w.sheet()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(res.Table.Columns))
	for i, col := range res.Table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range res.Table.Rows {
		cells := res.Table.Cells(row)
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = c
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, ref, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}
