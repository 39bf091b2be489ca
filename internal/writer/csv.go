package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/statement-parser/internal/models"
)

// CSVWriter writes a parsed result in CSV format.
type CSVWriter struct {
	// IncludeBankRow prepends a "# Bank" comment row naming the detected
	// bank before the column headers.
	IncludeBankRow bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, res *models.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, res)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, res *models.Result) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeBankRow && res.BankName != "" {
		if err := writer.Write([]string{"# Bank", res.BankName}); err != nil {
			return fmt.Errorf("failed to write bank row: %w", err)
		}
	}

	if err := writer.Write(res.Table.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range res.Table.Rows {
		if err := writer.Write(res.Table.Cells(row)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}
